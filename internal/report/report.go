// Package report computes coverage statistics for a words file resolved
// against a phrase table, without producing training output.
package report

import (
	"io"
	"slices"

	"github.com/jamesainslie/go-dlm/phrasetable"
	"github.com/jamesainslie/go-dlm/words"
)

// Option configures a check pass.
type Option func(*runConfig)

type runConfig struct {
	normalizer func(string) string
}

// WithNormalizer applies f to cept and word text read from the words stream,
// mirroring the extraction side: lookups must see the same form the table
// was loaded with.
func WithNormalizer(f func(string) string) Option {
	return func(c *runConfig) {
		c.normalizer = f
	}
}

// Report summarizes how well a phrase table covers a words file.
type Report struct {
	Records      int      // occurrence records read
	Resolved     int      // records whose cept was found in the table
	Cepts        int      // distinct cepts referenced by the words file
	OOV          int      // resolved records whose observed word is not a known candidate
	Unknown      []string // cepts missing from the table, in first-seen order
	CandidateSum int      // total candidate-list length over resolved records
}

// OOVRate returns the fraction of resolved records whose observed word was
// not among the candidates.
func (r Report) OOVRate() float64 {
	if r.Resolved == 0 {
		return 0
	}
	return float64(r.OOV) / float64(r.Resolved)
}

// MeanCandidates returns the average candidate-list size per resolved record.
func (r Report) MeanCandidates() float64 {
	if r.Resolved == 0 {
		return 0
	}
	return float64(r.CandidateSum) / float64(r.Resolved)
}

// Consistent reports whether every record resolved against the table.
func (r Report) Consistent() bool {
	return len(r.Unknown) == 0
}

// Run scans the words stream and resolves every record against table.
// Unlike extraction, an unknown cept is collected rather than fatal, so one
// check pass can list every provenance problem at once.
func Run(table *phrasetable.Table, r io.Reader, opts ...Option) (Report, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var rep Report

	seen := make(map[string]bool)
	unknown := make(map[string]bool)

	reader := words.NewReader(r)
	for {
		occ, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, err
		}
		rep.Records++

		cept, word := occ.Cept, occ.Word
		if cfg.normalizer != nil {
			cept = cfg.normalizer(cept)
			word = cfg.normalizer(word)
		}

		if !seen[cept] {
			seen[cept] = true
			rep.Cepts++
		}

		candidates, ok := table.Candidates(cept)
		if !ok {
			if !unknown[cept] {
				unknown[cept] = true
				rep.Unknown = append(rep.Unknown, cept)
			}
			continue
		}

		rep.Resolved++
		rep.CandidateSum += len(candidates)
		if !slices.Contains(candidates, word) {
			rep.OOV++
		}
	}

	return rep, nil
}
