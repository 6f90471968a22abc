package parser

import (
	"strconv"
	"strings"
)

// Field scanners. Each scanner is a pure function taking the unconsumed
// input and returning the matched value, the remainder, and whether it
// matched at all. A failed scan is not an error by itself; the caller
// decides whether the grammar allows the field to be absent.

// notation selects how a compact component is signed: an explicit +/- or an
// ISO 6709 hemisphere letter in its place.
type notation int

const (
	notationSigned notation = iota
	notationHemisphere
)

// scanFixedDigits reads exactly width ASCII digits and returns their integer
// value. Fails when fewer than width digits lead the input.
func scanFixedDigits(s string, width int) (int, string, bool) {
	if len(s) < width {
		return 0, s, false
	}
	v := 0
	for i := 0; i < width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, s, false
		}
		v = v*10 + int(c-'0')
	}
	return v, s[width:], true
}

// scanVarDigits reads between min and max ASCII digits, greedily. Used by
// the human-readable form, whose degree and minute fields are not
// zero-padded.
func scanVarDigits(s string, min, max int) (int, string, bool) {
	n := 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n < min {
		return 0, s, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, false
	}
	return v, s[n:], true
}

// scanFraction reads a decimal point followed by at least one digit and
// returns the fractional value (0 <= f < 1). The fraction is optional in
// every sub-format, so a missing point is a non-match rather than an error.
func scanFraction(s string) (float64, string, bool) {
	if len(s) < 2 || s[0] != '.' {
		return 0, s, false
	}
	n := 1
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 1 {
		return 0, s, false
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, s, false
	}
	return f, s[n:], true
}

// scanFloatRun reads a run of digits and decimal points and parses it as a
// float. Runs with no digits or repeated points fail. Exponents are not part
// of any accepted grammar, so 'e' never joins the run.
func scanFloatRun(s string) (float64, string, bool) {
	n := 0
	for n < len(s) && (s[n] == '.' || (s[n] >= '0' && s[n] <= '9')) {
		n++
	}
	if n == 0 {
		return 0, s, false
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, s, false
	}
	return v, s[n:], true
}

// scanSign reads the sign or hemisphere letter of a component. Hemisphere
// letters are uppercase only; south and west map to negative.
// ISO 6709:2008 Annex H.2.1 sign convention
func scanSign(s string, ax axis, not notation) (negative bool, rest string, ok bool) {
	if s == "" {
		return false, s, false
	}
	if not == notationSigned {
		switch s[0] {
		case '+':
			return false, s[1:], true
		case '-':
			return true, s[1:], true
		}
		return false, s, false
	}
	pos, neg := ax.hemispheres()
	switch s[0] {
	case pos:
		return false, s[1:], true
	case neg:
		return true, s[1:], true
	}
	return false, s, false
}

// Marks of the human-readable form. The ASCII apostrophe and double quote
// are accepted alongside the typographic prime marks.
var (
	degreeMarks = []string{"°"}
	minuteMarks = []string{"′", "'"}
	secondMarks = []string{"″", `"`}
)

// scanMark consumes one of the accepted marks.
func scanMark(s string, marks []string) (string, bool) {
	for _, m := range marks {
		if strings.HasPrefix(s, m) {
			return s[len(m):], true
		}
	}
	return s, false
}

// scanSpaces consumes a run of at least one space or tab, the component
// separator of the human-readable form.
func scanSpaces(s string) (string, bool) {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	if n == 0 {
		return s, false
	}
	return s[n:], true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
