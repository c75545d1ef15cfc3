package parser

import "fmt"

// Reason is a short, machine-checkable code for why a pattern failed to
// parse. Tests assert on Reason rather than scraping Error() text.
type Reason string

const (
	// ReasonUnterminatedClass is an unmatched [ with no closing ].
	ReasonUnterminatedClass Reason = "unterminated-class"
	// ReasonUnterminatedGroup is an unmatched ( with no closing ).
	ReasonUnterminatedGroup Reason = "unterminated-group"
	// ReasonDanglingEscape is a trailing \ with no character to escape.
	ReasonDanglingEscape Reason = "dangling-escape"
	// ReasonDanglingQuantifier is *, +, or ? with no preceding atom.
	ReasonDanglingQuantifier Reason = "dangling-quantifier"
	// ReasonUnmatchedParen is a stray ) with no opening (.
	ReasonUnmatchedParen Reason = "unmatched-paren"
)

// SyntaxError reports a malformed pattern. Pos is the byte offset into the
// pattern string where the problem was detected.
type SyntaxError struct {
	Pattern string
	Pos     int
	Reason  Reason
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("error parsing regexp: %s at position %d: %q", e.Reason, e.Pos, e.Pattern)
}
