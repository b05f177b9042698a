package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	dlm "github.com/jamesainslie/go-dlm"
	"github.com/jamesainslie/go-dlm/internal/config"
	"github.com/jamesainslie/go-dlm/phrasetable"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	noOOV := flag.Bool("no-oov", cfg.Extract.NoOOV,
		"Drop occurrences whose observed word is not a known candidate instead of emitting the OOV token")
	normalize := flag.Bool("normalize", cfg.Extract.Normalize,
		"Apply NFKC normalization to cept and word text on both inputs")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 4 {
		usage()
		os.Exit(1)
	}

	// SOURCE and TARGET are accepted for interface symmetry with the sibling
	// pipeline tools; only WORDS and CEPT_TABLE are read.
	wordsPath := flag.Arg(2)
	tablePath := flag.Arg(3)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	var tableOpts []phrasetable.Option
	if *normalize {
		tableOpts = append(tableOpts, phrasetable.WithNormalizer(dlm.Normalize))
	}
	table, err := phrasetable.LoadFile(tablePath, tableOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cept table: %v\n", err)
		os.Exit(1)
	}
	logger.Info("cept table loaded", "path", tablePath, "cepts", table.Len())

	wordsFile, err := os.Open(wordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening words file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = wordsFile.Close() }()

	opts := []dlm.Option{dlm.WithOOV(!*noOOV), dlm.WithLogger(logger)}
	if *normalize {
		opts = append(opts, dlm.WithNormalizer(dlm.Normalize))
	}

	out := bufio.NewWriterSize(os.Stdout, cfg.Extract.BufferSize)
	stats, err := dlm.New(table, opts...).Extract(context.Background(), wordsFile, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing output: %v\n", err)
		os.Exit(1)
	}

	logger.Info("extraction complete",
		"records", stats.Records,
		"groups", stats.Groups,
		"skipped", stats.Skipped,
		"oov", stats.OOV,
		"candidates", stats.Candidates)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: dlm-extract [--no-oov] [--normalize] SOURCE TARGET WORDS CEPT_TABLE")
	fmt.Fprintln(os.Stderr, "Writes one cost-annotated example group per word occurrence to stdout.")
	flag.PrintDefaults()
}
