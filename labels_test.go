package hangulgen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLabels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single no newline", "가", []string{"가"}},
		{"trailing newline", "가\n나\n", []string{"가", "나"}},
		{"crlf", "가\r\n나\r\n", []string{"가", "나"}},
		{"blank line kept", "가\n\n나", []string{"가", "", "나"}},
		{"duplicates kept", "가\n가\n", []string{"가", "가"}},
		{"no trimming", " 가 \n", []string{" 가 "}},
		{"utf8 bom dropped", "\ufeff가\n나\n", []string{"가", "나"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLabels(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadLabels failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLabels(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadLabelsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"truncated sequence", "\xea\xb0\n\xff\n", "line 1"},
		{"later line", "가\n나\n\xff\n", "line 3"},
		{"after bom", "\ufeff가\n\xea\xb0", "line 2"},
		{"utf16 bom", string([]byte{0xFF, 0xFE, 0x00, 0xAC, 0x0A, 0x00}), "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLabels(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidLabelEncoding) {
				t.Fatalf("ReadLabels(%q) = %q, %v, want ErrInvalidLabelEncoding", tt.input, got, err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error %q does not name %s", err, tt.line)
			}
		})
	}
}

func TestReadLabelsLiteralReplacementChar(t *testing.T) {
	got, err := ReadLabels(strings.NewReader("\ufffd\n가\n"))
	if err != nil {
		t.Fatalf("ReadLabels failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"\ufffd", "가"}) {
		t.Errorf("ReadLabels = %q, want [\ufffd 가]", got)
	}
}

func TestLoadLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	if err := os.WriteFile(path, []byte("가\n나\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadLabels(path)
	if err != nil {
		t.Fatalf("LoadLabels failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"가", "나"}) {
		t.Errorf("LoadLabels = %q, want [가 나]", got)
	}
}

func TestLoadLabelsMissing(t *testing.T) {
	_, err := LoadLabels(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadLabels error = %v, want fs.ErrNotExist", err)
	}
}

func TestDiscoverFonts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.ttf", "a.TTF", "c.otf", "notes.txt", ".hidden.ttf"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.ttf"), 0o750); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		exts []string
		want []string
	}{
		{"default", nil, []string{"a.TTF", "b.ttf"}},
		{"ttf and otf", []string{".ttf", "otf"}, []string{"a.TTF", "b.ttf", "c.otf"}},
		{"otf only", []string{".OTF"}, []string{"c.otf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiscoverFonts(dir, tt.exts...)
			if err != nil {
				t.Fatalf("DiscoverFonts failed: %v", err)
			}
			want := make([]string, len(tt.want))
			for i, name := range tt.want {
				want[i] = filepath.Join(dir, name)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("DiscoverFonts = %q, want %q", got, want)
			}
		})
	}
}

func TestDiscoverFontsEmptyDir(t *testing.T) {
	got, err := DiscoverFonts(t.TempDir())
	if err != nil {
		t.Fatalf("DiscoverFonts failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("DiscoverFonts = %q, want none", got)
	}
}

func TestDiscoverFontsMissingDir(t *testing.T) {
	_, err := DiscoverFonts(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("DiscoverFonts error = %v, want fs.ErrNotExist", err)
	}
}
