package parser

import (
	"fmt"
)

// ErrGrammarMismatch indicates the input does not have the shape of the
// attempted sub-format. The dispatcher recovers by trying the next
// sub-format; callers only ever see it folded into ErrNoFormatMatched.
type ErrGrammarMismatch struct {
	Format string // sub-format attempted, e.g. "±DDMM.MMM±DDDMM.MMM"
	Reason string
}

func (e *ErrGrammarMismatch) Error() string {
	return fmt.Sprintf("input does not match %s: %s", e.Format, e.Reason)
}

// ErrRange indicates a component that matched a sub-format positionally but
// holds a value outside its numeric domain. The dispatcher does not retry
// other sub-formats after a range error.
type ErrRange struct {
	Axis  string // "latitude" or "longitude"
	Field string // "degrees", "minutes" or "seconds"
	Value float64
	Limit float64
}

func (e *ErrRange) Error() string {
	switch e.Field {
	case "minutes", "seconds":
		return fmt.Sprintf("%s %s out of range: %g (must be below %g)",
			e.Axis, e.Field, e.Value, e.Limit)
	default:
		return fmt.Sprintf("%s out of range: %g (must be within ±%g)",
			e.Axis, e.Value, e.Limit)
	}
}

// ErrUnterminatedSuffix indicates an altitude or CRS segment was opened but
// never closed with the '/' terminator, or the altitude digits are
// malformed.
type ErrUnterminatedSuffix struct {
	Segment string // "altitude" or "crs"
	Reason  string
}

func (e *ErrUnterminatedSuffix) Error() string {
	return fmt.Sprintf("unterminated %s suffix: %s", e.Segment, e.Reason)
}

// ErrNoFormatMatched indicates none of the accepted grammars matched the
// input.
type ErrNoFormatMatched struct {
	Input string
}

func (e *ErrNoFormatMatched) Error() string {
	return fmt.Sprintf("no coordinate format matched %q", e.Input)
}
