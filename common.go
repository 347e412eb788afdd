package hangulgen

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/korean"
)

// CommonHangulCount is the number of precomposed syllables in the
// KS X 1001 Hangul block.
const CommonHangulCount = 2350

// KS X 1001 places its Hangul syllables in rows 0xB0-0xC8, cells 0xA1-0xFE.
const (
	ksxHangulFirstRow = 0xB0
	ksxHangulLastRow  = 0xC8
	ksxFirstCell      = 0xA1
	ksxLastCell       = 0xFE
)

// CommonHangul returns the 2350 Hangul syllables of KS X 1001 in code
// order, the usual label set for Korean OCR datasets.
func CommonHangul() ([]string, error) {
	raw := make([]byte, 0, CommonHangulCount*2)
	for row := ksxHangulFirstRow; row <= ksxHangulLastRow; row++ {
		for cell := ksxFirstCell; cell <= ksxLastCell; cell++ {
			raw = append(raw, byte(row), byte(cell))
		}
	}

	decoded, err := korean.EUCKR.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("hangulgen: decode KS X 1001: %w", err)
	}

	labels := make([]string, 0, CommonHangulCount)
	for _, r := range string(decoded) {
		labels = append(labels, string(r))
	}
	if len(labels) != CommonHangulCount {
		return nil, fmt.Errorf("hangulgen: decoded %d syllables, want %d", len(labels), CommonHangulCount)
	}
	return labels, nil
}

// WriteLabels writes labels one per line, each terminated by "\n".
// ReadLabels reads the output back unchanged.
func WriteLabels(w io.Writer, labels []string) error {
	var sb strings.Builder
	for _, l := range labels {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("hangulgen: write labels: %w", err)
	}
	return nil
}
