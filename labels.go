package hangulgen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLabelLine bounds a single line of the label file.
const maxLabelLine = 1 << 20

// LoadLabels reads a newline-delimited label file.
// See ReadLabels for the line rules.
func LoadLabels(path string) ([]string, error) {
	// #nosec G304 -- Label file path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hangulgen: open label file: %w", err)
	}
	defer func() { _ = f.Close() }()

	labels, err := ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("hangulgen: read label file %s: %w", path, err)
	}
	return labels, nil
}

// ReadLabels splits r into labels, one per line, in order.
// Lines end at "\n" or "\r\n". Nothing else is trimmed: blank lines become
// empty labels and duplicates are kept. A final line break does not start
// another label. The input must be UTF-8; a leading byte-order mark is
// dropped. Invalid UTF-8 fails with ErrInvalidLabelEncoding naming the
// first bad line.
func ReadLabels(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if n := invalidUTF8Line(raw); n > 0 {
		return nil, fmt.Errorf("%w: line %d", ErrInvalidLabelEncoding, n)
	}

	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(bytes.NewReader(decoded))
	sc.Buffer(make([]byte, 0, 4096), maxLabelLine)

	var labels []string
	for sc.Scan() {
		labels = append(labels, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

// invalidUTF8Line returns the 1-based number of the first line of b that
// is not valid UTF-8, or 0 when all of b is.
func invalidUTF8Line(b []byte) int {
	if utf8.Valid(b) {
		return 0
	}
	for n := 1; ; n++ {
		line, rest, _ := bytes.Cut(b, []byte{'\n'})
		if !utf8.Valid(line) {
			return n
		}
		b = rest
	}
}

// DiscoverFonts lists the font files directly inside dir whose extension
// is one of exts, sorted by name. Subdirectories and hidden files are
// skipped. With no exts, DefaultFontExtensions is used.
//
// Extensions match case-insensitively on every platform, so "Font.TTF" is
// found even on case-sensitive file systems where a "*.ttf" shell glob
// would miss it.
//
// An empty result is not an error.
func DiscoverFonts(dir string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultFontExtensions
	}
	exts = normalizeExtensions(exts)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("hangulgen: read font directory: %w", err)
	}

	var fonts []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !slices.Contains(exts, strings.ToLower(filepath.Ext(name))) {
			continue
		}
		fonts = append(fonts, filepath.Join(dir, name))
	}

	// os.ReadDir already sorts by name; keep the guarantee explicit.
	slices.Sort(fonts)
	return fonts, nil
}
