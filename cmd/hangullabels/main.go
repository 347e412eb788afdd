// Command hangullabels writes the 2350 common Hangul syllables of
// KS X 1001, one per line, for use as a hangulgen label file.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/hangulgen"
)

func main() {
	output := flag.String("output", "labels/2350-common-hangul.txt", "label file to write")
	flag.Parse()

	labels, err := hangulgen.CommonHangul()
	if err != nil {
		log.Fatalf("Failed to build labels: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0o750); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := hangulgen.WriteLabels(f, labels); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to write labels: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *output, err)
	}

	log.Printf("Wrote %d labels to %s\n", len(labels), *output)
}
