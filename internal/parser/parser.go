package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Parser converts ISO 6709 coordinate strings into structured coordinates.
//
// ISO 6709 expresses a point location as latitude, then longitude, then an
// optional altitude and CRS identification. The standard writes this either
// as a compact "string representation" or as a human-readable
// degree/minute/second form; this parser accepts both.
//
// References:
//   - ISO 6709:2008 Annex H: String expression of coordinates
//   - ISO 6709:2008 Annex D: Representation at the human interface
type Parser interface {
	// Parse converts one coordinate string using default options.
	// Returns an error if no accepted grammar matches the whole input.
	Parse(input string) (*Coordinate, error)

	// ParseWithOptions parses with custom options.
	ParseWithOptions(input string, opts ParseOptions) (*Coordinate, error)
}

// Format selects which grammars the parser attempts.
type Format int

const (
	// FormatAny tries the compact string representation first, then the
	// human-readable form.
	FormatAny Format = iota

	// FormatCompact restricts parsing to the compact representation.
	FormatCompact

	// FormatReadable restricts parsing to the human-readable form.
	FormatReadable
)

// ParseOptions configures parsing behavior
type ParseOptions struct {
	// Format: restricts which grammars are attempted
	// Default: FormatAny (compact first, then human-readable)
	Format Format

	// RequireTerminator: if true, compact strings must end with the '/'
	// terminator as written in the standard
	// Default: false (the terminator is common practice to omit when no
	// altitude or CRS follows)
	RequireTerminator bool
}

// DefaultParseOptions returns parse options with defaults
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Format:            FormatAny,
		RequireTerminator: false,
	}
}

// defaultParser implements the Parser interface
type defaultParser struct {
}

// NewParser creates a new ISO 6709 parser
func NewParser() Parser {
	return &defaultParser{}
}

// Parse converts one coordinate string using default options
func (p *defaultParser) Parse(input string) (*Coordinate, error) {
	return p.ParseWithOptions(input, DefaultParseOptions())
}

// ParseWithOptions parses with custom options.
//
// Surrounding whitespace is trimmed, then the compact sub-formats are
// attempted in the compactVariants order, then the human-readable form. The
// matching grammar must consume the entire input. Grammar mismatches fold
// into ErrNoFormatMatched; range and unterminated-suffix errors surface
// immediately and stop the attempt chain, because the digits already matched
// positionally and retrying could only reinterpret them under a wrong
// grammar.
func (p *defaultParser) ParseWithOptions(input string, opts ParseOptions) (*Coordinate, error) {
	s := strings.TrimSpace(input)

	if opts.Format == FormatAny || opts.Format == FormatCompact {
		for _, v := range compactVariants {
			coord, err := parseCompact(s, v, opts)
			if err == nil {
				return coord, nil
			}
			if !isMismatch(err) {
				return nil, err
			}
		}
	}

	if opts.Format == FormatAny || opts.Format == FormatReadable {
		coord, err := parseReadable(s)
		if err == nil {
			return coord, nil
		}
		if !isMismatch(err) {
			return nil, err
		}
	}

	return nil, &ErrNoFormatMatched{Input: s}
}

// parseCompact attempts one compact sub-format against the whole input:
// latitude, longitude, optional suffix, nothing left over.
func parseCompact(s string, v variant, opts ParseOptions) (*Coordinate, error) {
	lat, rest, err := v.parseAngle(s, axisLatitude)
	if err != nil {
		return nil, err
	}

	lon, rest, err := v.parseAngle(rest, axisLongitude)
	if err != nil {
		return nil, err
	}

	altitude, crs, rest, terminated, err := parseSuffix(rest)
	if err != nil {
		return nil, err
	}
	if opts.RequireTerminator && !terminated {
		return nil, &ErrGrammarMismatch{Format: v.name, Reason: "missing '/' terminator"}
	}
	if rest != "" {
		return nil, &ErrGrammarMismatch{Format: v.name, Reason: fmt.Sprintf("trailing input %q", rest)}
	}

	return newCoordinate(lat, lon, altitude, crs)
}

// isMismatch reports whether err is a recoverable wrong-shape failure, as
// opposed to a range or suffix error that must surface immediately.
func isMismatch(err error) bool {
	var mismatch *ErrGrammarMismatch
	return errors.As(err, &mismatch)
}
