package papyrus

import "fmt"

// ParseError describes a malformed or truncated asset header.
// Callers can detect it with errors.As to distinguish unreadable
// files from I/O failures.
type ParseError struct {
	File   string // filename, may be empty when parsing raw bytes
	Offset int    // byte offset where parsing stopped
	Reason string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s: parse error at offset %d: %s", e.File, e.Offset, e.Reason)
}

func parseErr(file string, offset int, format string, args ...any) *ParseError {
	return &ParseError{File: file, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
