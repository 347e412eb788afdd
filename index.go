package hangulgen

import (
	"bufio"
	"fmt"
	"os"
)

// Record maps one generated image to the label it shows.
type Record struct {
	Path  string
	Label string
}

// String returns the index line for r without the trailing newline.
// Fields are written verbatim; no CSV quoting is applied.
func (r Record) String() string {
	return r.Path + "," + r.Label
}

// IndexWriter appends Records to a label index file, one line each.
// Every Append is flushed to the file before it returns.
type IndexWriter struct {
	f    *os.File
	w    *bufio.Writer
	rows int
}

// CreateIndex creates or truncates the index file at path.
func CreateIndex(path string) (*IndexWriter, error) {
	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("hangulgen: create label index: %w", err)
	}
	return &IndexWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// Append writes r as "<path>,<label>\n".
func (iw *IndexWriter) Append(r Record) error {
	if _, err := iw.w.WriteString(r.String() + "\n"); err != nil {
		return fmt.Errorf("hangulgen: write label index: %w", err)
	}
	if err := iw.w.Flush(); err != nil {
		return fmt.Errorf("hangulgen: flush label index: %w", err)
	}
	iw.rows++
	return nil
}

// Rows returns the number of records appended so far.
func (iw *IndexWriter) Rows() int {
	return iw.rows
}

// Close flushes and closes the index file.
func (iw *IndexWriter) Close() error {
	flushErr := iw.w.Flush()
	closeErr := iw.f.Close()
	if flushErr != nil {
		return fmt.Errorf("hangulgen: flush label index: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("hangulgen: close label index: %w", closeErr)
	}
	return nil
}
