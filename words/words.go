// Package words reads the aligned word-occurrence file produced by the word
// extraction step of the pipeline.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedLine indicates a line without the required trailing fields.
var ErrMalformedLine = errors.New("words: malformed line")

// maxLineBytes bounds a single words-file line.
const maxLineBytes = 1 << 20

// Occurrence is one observed (cept, target word) pair.
type Occurrence struct {
	Cept string
	Word string
}

// Reader yields occurrences from a words file in input order. It makes a
// single forward pass over the stream and is not restartable.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{scanner: scanner}
}

// Next returns the next occurrence, taking the last two tab-separated fields
// of the line as (cept, word). Leading fields carry upstream annotation and
// are ignored. Next returns io.EOF once the stream is exhausted.
func (r *Reader) Next() (Occurrence, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Occurrence{}, fmt.Errorf("scanning words file: %w", err)
		}
		return Occurrence{}, io.EOF
	}
	r.line++

	fields := strings.Split(strings.TrimSpace(r.scanner.Text()), "\t")
	if len(fields) < 2 {
		return Occurrence{}, fmt.Errorf("%w: line %d: need at least two tab-separated fields",
			ErrMalformedLine, r.line)
	}

	return Occurrence{
		Cept: fields[len(fields)-2],
		Word: fields[len(fields)-1],
	}, nil
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}
