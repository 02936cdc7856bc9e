package models

import "fmt"

// ParseError marks a malformed line in one of the flat storage files.
// It is not recovered from: corrupt storage is surfaced to the caller.
type ParseError struct {
	File string
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
