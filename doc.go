// Package dlm converts aligned bilingual corpus annotations into grouped,
// cost-annotated training examples for a multiclass learning-to-rank model.
//
// For every occurrence of a target word produced by the word extraction step
// of the pipeline, the extractor emits one example group: a shared-context
// line carrying the source-side cept, followed by one numbered line per
// candidate target word known for that cept. The observed word gets cost 0,
// every alternative gets cost 1, and an optional catch-all OOV candidate
// closes the group.
//
// # Quick Start
//
//	table, err := phrasetable.LoadFile("cept_table.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := os.Open("words.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	ex := dlm.New(table)
//	stats, err := ex.Extract(ctx, f, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Fprintf(os.Stderr, "emitted %d groups\n", stats.Groups)
//
// # Data Consistency
//
// The cept table, the alignment model, and the words file must all derive
// from the same parallel corpus. A words-file record naming a cept that is
// absent from the table aborts the run with ErrUnknownCept: it signals a
// systemic mismatch between pipeline inputs, not a bad individual line.
//
// # Input Files
//
// The cept table is pipe-delimited ("cept ||| target ||| ..."), see package
// phrasetable. The words file is tab-delimited with the cept and observed
// word in the last two fields, see package words.
package dlm
