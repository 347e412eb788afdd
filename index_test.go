package hangulgen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecordString(t *testing.T) {
	r := Record{Path: "out/hangul_1.jpeg", Label: "가"}
	if got := r.String(); got != "out/hangul_1.jpeg,가" {
		t.Errorf("String() = %q", got)
	}
}

func TestIndexWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), LabelsFileName)

	iw, err := CreateIndex(path)
	if err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}

	if err := iw.Append(Record{Path: "a.jpeg", Label: "가"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Rows are on disk as soon as Append returns.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a.jpeg,가\n" {
		t.Errorf("after one Append file = %q", data)
	}

	if err := iw.Append(Record{Path: "b.jpeg", Label: "a,b"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if iw.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", iw.Rows())
	}
	if err := iw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, _ = os.ReadFile(path)
	if string(data) != "a.jpeg,가\nb.jpeg,a,b\n" {
		t.Errorf("file = %q", data)
	}
}

func TestCreateIndexTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), LabelsFileName)
	if err := os.WriteFile(path, []byte("old,row\nold,row\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	iw, err := CreateIndex(path)
	if err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}
	if err := iw.Close(); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("file = %q, want empty after truncation", data)
	}
}

func TestCreateIndexBadPath(t *testing.T) {
	if _, err := CreateIndex(filepath.Join(t.TempDir(), "missing", "x.csv")); err == nil {
		t.Error("expected error for missing parent directory")
	}
}
