package dlm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC normalization and trims surrounding whitespace.
// Tokenizers in the pipeline do not always agree on composed vs. decomposed
// forms, so normalizing both the table and the words file keeps lookups from
// missing on byte-level differences of the same surface word.
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFKC.String(text))
}
