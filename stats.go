package dlm

// Stats summarizes one extraction pass.
type Stats struct {
	Records    int // words-file records consumed
	Groups     int // example groups written
	Skipped    int // records suppressed by the no-OOV policy
	OOV        int // records whose observed word was not a known candidate
	Candidates int // candidate lines written, OOV lines included
}
