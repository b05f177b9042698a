// Package phrasetable loads the cept-to-candidate index produced by the
// phrase extraction step of the pipeline.
package phrasetable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrMalformedEntry indicates a table line that does not split into the
// required fields.
var ErrMalformedEntry = errors.New("phrasetable: malformed entry")

// fieldSep separates the fields of one table entry.
const fieldSep = "|||"

// maxLineBytes bounds a single table line. Phrase tables carry long cepts
// and ignored frequency tails, so the bufio default of 64K is raised.
const maxLineBytes = 1 << 20

// Option configures table loading.
type Option func(*loadConfig)

type loadConfig struct {
	normalizer func(string) string
}

// WithNormalizer applies f to cept and target text as entries are read.
func WithNormalizer(f func(string) string) Option {
	return func(c *loadConfig) {
		c.normalizer = f
	}
}

// Table maps each source cept to its distinct target-word candidates.
// It is immutable once loaded and safe for concurrent reads.
type Table struct {
	candidates map[string][]string
}

// Load reads a phrase table from r.
//
// Each line has the form "cept ||| target ||| <ignored>"; everything past
// the second field is dropped. Accumulation is keyed on the cept, so entries
// for the same cept do not have to be contiguous and the table may be sorted
// or unsorted. Duplicate (cept, target) pairs collapse. Candidate lists are
// finalized in lexicographic order so emission downstream is deterministic.
func Load(r io.Reader, opts ...Option) (*Table, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sets := make(map[string]map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cept, target, ok := splitEntry(scanner.Text())
		if !ok {
			return nil, fmt.Errorf("%w: line %d: need at least two %q-delimited fields",
				ErrMalformedEntry, lineNo, fieldSep)
		}
		if cfg.normalizer != nil {
			cept = cfg.normalizer(cept)
			target = cfg.normalizer(target)
		}

		set, ok := sets[cept]
		if !ok {
			set = make(map[string]struct{})
			sets[cept] = set
		}
		set[target] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning phrase table: %w", err)
	}

	candidates := make(map[string][]string, len(sets))
	for cept, set := range sets {
		list := make([]string, 0, len(set))
		for target := range set {
			list = append(list, target)
		}
		sort.Strings(list)
		candidates[cept] = list
	}

	return &Table{candidates: candidates}, nil
}

// LoadFile loads a phrase table from the file at path.
func LoadFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening phrase table: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f, opts...)
}

// splitEntry decomposes one table line into its cept and target fields,
// trimming surrounding whitespace from both.
func splitEntry(line string) (cept, target string, ok bool) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), true
}

// Candidates returns the candidate words for cept in lexicographic order,
// and whether the cept is present at all. The returned slice is shared;
// callers must not modify it.
func (t *Table) Candidates(cept string) ([]string, bool) {
	list, ok := t.candidates[cept]
	return list, ok
}

// Len returns the number of distinct cepts in the table.
func (t *Table) Len() int {
	return len(t.candidates)
}
