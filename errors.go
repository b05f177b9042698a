package dlm

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnknownCept indicates a words-file record references a cept that is
	// absent from the phrase table. This is a data-consistency failure across
	// pipeline inputs and aborts the whole run.
	ErrUnknownCept = errors.New("dlm: cept not found in phrase table")
)
