package iso6709

import "fmt"

// ErrRange reports a coordinate component outside its legal range, such as
// a latitude beyond ±90 degrees or a minutes field of 60 or more. Unlike a
// simple format mismatch, a range error means the input was structurally a
// coordinate but cannot describe a real location, so no other format is
// tried.
type ErrRange struct {
	Axis  string  // "latitude" or "longitude"
	Field string  // "degrees", "minutes" or "seconds"
	Value float64 // offending value
	Limit float64 // the bound that was exceeded
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

// ErrUnterminatedSuffix reports an altitude or CRS suffix that was opened
// but not completed, such as a CRS label missing its '/' terminator.
type ErrUnterminatedSuffix struct {
	Segment string // "altitude" or "crs"
	Reason  string
}

func (e *ErrUnterminatedSuffix) Error() string {
	return fmt.Sprintf("unterminated %s suffix: %s", e.Segment, e.Reason)
}

// ErrNoFormatMatched reports input that matched none of the supported
// ISO 6709 representations.
type ErrNoFormatMatched struct {
	Input string
}

func (e *ErrNoFormatMatched) Error() string {
	return fmt.Sprintf("no coordinate format matched %q", e.Input)
}
