package text

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads the embedded Go font.
func loadTestFont(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })

	return source
}

func TestNewFontSource(t *testing.T) {
	source := loadTestFont(t)

	if source.Name() == "" {
		t.Error("expected non-empty font name")
	}
	if source.NumGlyphs() == 0 {
		t.Error("expected glyphs in parsed font")
	}
	if source.Name() != source.Family() {
		t.Errorf("Name() = %q, want the family name %q", source.Name(), source.Family())
	}
	t.Logf("Font name: %s", source.Name())
}

func TestNewFontSourceEmpty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceInvalid(t *testing.T) {
	_, err := NewFontSource([]byte("definitely not a font"))
	if err == nil {
		t.Fatal("expected error for invalid font data")
	}
	if !strings.Contains(err.Error(), "failed to parse font") {
		t.Errorf("error = %q, want parse failure", err)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	defer func() { _ = source.Close() }()

	if source.Name() != path {
		t.Errorf("Name() = %q, want %q", source.Name(), path)
	}
}

func TestNewFontSourceFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewFontSourceFromFile(filepath.Join(dir, "missing.ttf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := NewFontSourceFromFile(bad)
	if err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("bad font error = %v, want it to name %s", err, bad)
	}
}

func TestWithName(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithName("custom"))
	if err != nil {
		t.Fatal(err)
	}
	if source.Name() != "custom" {
		t.Errorf("Name() = %q, want custom", source.Name())
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	source := loadTestFont(t)
	copied := *source

	defer func() {
		if recover() == nil {
			t.Error("expected panic on copied FontSource")
		}
	}()
	_ = copied.Name()
}

func TestFontSourceFamily(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithName("go.ttf"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = source.Close() }()

	if got := source.Family(); !strings.HasPrefix(got, "Go") {
		t.Errorf("Family() = %q, want the Go font family", got)
	}
	if source.Name() != "go.ttf" {
		t.Errorf("Name() = %q, want go.ttf", source.Name())
	}
}

func TestFontSourceClosed(t *testing.T) {
	source := loadTestFont(t)
	_ = source.Close()

	if source.Family() != "" || source.NumGlyphs() != 0 {
		t.Errorf("closed source: Family() = %q, NumGlyphs() = %d", source.Family(), source.NumGlyphs())
	}
	if b := source.Face(48).Bounds("H"); b != (Rect{}) {
		t.Errorf("closed source Bounds = %+v, want zero", b)
	}
}
