package dlm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/jamesainslie/go-dlm/phrasetable"
	"github.com/jamesainslie/go-dlm/words"
)

// oovToken is the raw display form of the catch-all candidate. It contains
// "|" on purpose: after escaping it cannot collide with any real candidate,
// because real candidates have their own "|" characters escaped too.
const oovToken = "__OOV__|__OOV__|-------------"

// Extractor turns word occurrences into cost-annotated example groups.
// It holds the phrase table for the lifetime of the run; the table is
// read-only after construction.
type Extractor struct {
	table      *phrasetable.Table
	includeOOV bool
	normalizer func(string) string
	logger     *slog.Logger
}

// New creates an Extractor over a loaded phrase table.
func New(table *phrasetable.Table, opts ...Option) *Extractor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Extractor{
		table:      table,
		includeOOV: cfg.includeOOV,
		normalizer: cfg.normalizer,
		logger:     cfg.logger,
	}
}

// Extract makes a single forward pass over the words stream r, writing one
// example group per occurrence to w. It stops at the first malformed record
// or unknown cept; partial output written before a failure should be
// discarded by the caller.
func (e *Extractor) Extract(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	reader := words.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		occ, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Records++

		cept, observed := occ.Cept, occ.Word
		if e.normalizer != nil {
			cept = e.normalizer(cept)
			observed = e.normalizer(observed)
		}

		candidates, err := e.resolve(cept)
		if err != nil {
			return stats, err
		}

		isOOV := !slices.Contains(candidates, observed)
		if isOOV {
			stats.OOV++
		}

		n, err := e.emitGroup(w, cept, candidates, observed, isOOV)
		if err != nil {
			return stats, err
		}
		if n == 0 {
			stats.Skipped++
			continue
		}
		stats.Groups++
		stats.Candidates += n
	}

	e.logger.Debug("extraction pass complete",
		"records", stats.Records,
		"groups", stats.Groups,
		"skipped", stats.Skipped,
		"oov", stats.OOV)

	return stats, nil
}

// resolve looks up the candidate set for cept, treating a miss as a fatal
// data-consistency failure.
func (e *Extractor) resolve(cept string) ([]string, error) {
	candidates, ok := e.table.Candidates(cept)
	if !ok {
		return nil, fmt.Errorf("%w: %q: the cept table, the alignment model, "+
			"and the words file must all be built from the same parallel corpus",
			ErrUnknownCept, cept)
	}
	return candidates, nil
}

// EmitGroup writes the example block for one occurrence: a shared-context
// line for the cept, one numbered line per candidate (cost 0 for the
// observed word, 1 otherwise), the OOV line if enabled, and a blank
// terminator. It returns the number of candidate lines written; zero means
// the occurrence was suppressed by the no-OOV policy and nothing was
// written.
func (e *Extractor) EmitGroup(w io.Writer, cept string, candidates []string, observed string) (int, error) {
	return e.emitGroup(w, cept, candidates, observed, !slices.Contains(candidates, observed))
}

// emitGroup is EmitGroup with the membership scan already done, so Extract
// can share one scan per record between the OOV counter and emission.
func (e *Extractor) emitGroup(w io.Writer, cept string, candidates []string, observed string, isOOV bool) (int, error) {
	if isOOV && !e.includeOOV {
		return 0, nil
	}

	if _, err := fmt.Fprintf(w, "shared |s p^%s\n", Escape(cept)); err != nil {
		return 0, fmt.Errorf("writing shared line: %w", err)
	}

	n := 0
	for _, candidate := range candidates {
		cost := 1
		if candidate == observed {
			cost = 0
		}
		n++
		if _, err := fmt.Fprintf(w, "%d:%d |t p^%s\n", n, cost, Escape(candidate)); err != nil {
			return n, fmt.Errorf("writing candidate line: %w", err)
		}
	}

	if e.includeOOV {
		cost := 1
		if isOOV {
			cost = 0
		}
		n++
		if _, err := fmt.Fprintf(w, "%d:%d |t p^%s\n", n, cost, Escape(oovToken)); err != nil {
			return n, fmt.Errorf("writing OOV line: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return n, fmt.Errorf("writing group terminator: %w", err)
	}
	return n, nil
}
