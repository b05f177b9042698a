//go:build ignore

// Regenerate the testdata fixture pair (cept table + words file) from the
// embedded aligned sample. The sample is a tiny cs-en slice shaped like the
// real pipeline outputs: the table carries frequency tails that extraction
// ignores, and the words file carries sentence/position annotation ahead of
// the (cept, word) fields.
// Usage: go run ./scripts/make-testdata.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tableEntries are (cept, target, frequency) triples, deliberately unsorted
// and with one duplicate pair, to keep the fixtures exercising keyed
// accumulation rather than adjacency grouping.
var tableEntries = [][3]string{
	{"action NN", "akce", "12"},
	{"action NN", "akcí", "3"},
	{"measure NN", "opatření", "9"},
	{"action NN", "opatření", "7"},
	{"measure NN", "opatřením", "2"},
	{"action NN", "akce", "1"},
}

// occurrences are (sentence, position, cept, word) records. The last one is
// OOV for its cept on purpose.
var occurrences = [][4]string{
	{"7", "3", "action NN", "akce"},
	{"12", "9", "measure NN", "opatřením"},
	{"14", "2", "action NN", "dohodě"},
}

func main() {
	outDir := "testdata"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	var table strings.Builder
	for _, e := range tableEntries {
		fmt.Fprintf(&table, "%s ||| %s ||| %s\n", e[0], e[1], e[2])
	}
	writeFile(filepath.Join(outDir, "cept_table.txt"), table.String())

	var words strings.Builder
	for _, o := range occurrences {
		fmt.Fprintf(&words, "%s\t%s\t%s\t%s\n", o[0], o[1], o[2], o[3])
	}
	writeFile(filepath.Join(outDir, "words.tsv"), words.String())

	fmt.Println("Done! Fixture files written to testdata/")
}

func writeFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("  -> %s (%d bytes)\n", path, len(content))
}
