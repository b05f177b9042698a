package main

import (
	"flag"
	"fmt"
	"os"

	dlm "github.com/jamesainslie/go-dlm"
	"github.com/jamesainslie/go-dlm/internal/config"
	"github.com/jamesainslie/go-dlm/internal/report"
	"github.com/jamesainslie/go-dlm/phrasetable"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	normalize := flag.Bool("normalize", cfg.Extract.Normalize,
		"Apply NFKC normalization to cept and word text on both inputs")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}
	wordsPath := flag.Arg(0)
	tablePath := flag.Arg(1)

	var tableOpts []phrasetable.Option
	var runOpts []report.Option
	if *normalize {
		tableOpts = append(tableOpts, phrasetable.WithNormalizer(dlm.Normalize))
		runOpts = append(runOpts, report.WithNormalizer(dlm.Normalize))
	}
	table, err := phrasetable.LoadFile(tablePath, tableOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cept table: %v\n", err)
		os.Exit(1)
	}

	wordsFile, err := os.Open(wordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening words file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = wordsFile.Close() }()

	rep, err := report.Run(table, wordsFile, runOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Records:         %d\n", rep.Records)
	fmt.Printf("Distinct cepts:  %d (table has %d)\n", rep.Cepts, table.Len())
	fmt.Printf("Resolved:        %d\n", rep.Resolved)
	fmt.Printf("OOV rate:        %.4f (%d records)\n", rep.OOVRate(), rep.OOV)
	fmt.Printf("Mean candidates: %.1f\n", rep.MeanCandidates())

	if !rep.Consistent() {
		fmt.Printf("\n%d cepts missing from the table:\n", len(rep.Unknown))
		for _, cept := range rep.Unknown {
			fmt.Printf("  %s\n", cept)
		}
		fmt.Println("\nInputs are inconsistent: the cept table, the alignment model, and")
		fmt.Println("the words file must all be built from the same parallel corpus.")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: dlm-check [--normalize] WORDS CEPT_TABLE")
	fmt.Fprintln(os.Stderr, "Resolves every occurrence against the cept table and reports coverage.")
	flag.PrintDefaults()
}
