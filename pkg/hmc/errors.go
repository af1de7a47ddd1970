package hmc

import "fmt"

// LookupError is returned when a value is missing from one of the fixed
// tables. It means the data and the tables have drifted apart.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Table, e.Key)
}

// EncodingError is returned when an output string has a character the
// spreadsheet conventions do not allow (anything outside ASCII).
type EncodingError struct {
	Field  string
	Rune   rune
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: non-ASCII character %U at byte %d", e.Field, e.Rune, e.Offset)
}

// MissingFieldError is returned when a required source field is absent.
type MissingFieldError struct{ Field string }

func (e *MissingFieldError) Error() string { return "missing field " + e.Field }

// RecordError wraps a normalization failure with enough context to find the
// offending card in the export.
type RecordError struct {
	Name string
	Raw  string
	Err  error
}

func (e *RecordError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("card %q: %v (record: %s)", e.Name, e.Err, e.Raw)
	}
	return fmt.Sprintf("card %q: %v", e.Name, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
