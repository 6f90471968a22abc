package iso6709

import (
	"errors"

	"github.com/TimLikesTacos/iso6709parse/internal/parser"
)

// Parser provides the main interface for parsing ISO 6709 strings.
type Parser interface {
	// Parse parses a coordinate string with default options, trying the
	// compact Annex H formats first and the human-readable Annex D form
	// as a fallback.
	Parse(input string) (*Coordinate, error)

	// ParseWithOptions parses a coordinate string with custom options.
	ParseWithOptions(input string, opts ParseOptions) (*Coordinate, error)
}

// NewParser creates a new ISO 6709 parser instance.
func NewParser() Parser {
	return &parserWrapper{
		internal: parser.NewParser(),
	}
}

// Parse parses a coordinate string with default options.
//
// This is the primary entry point. It accepts both the compact and the
// human-readable representations:
//
//	coord, err := iso6709.Parse("+1200.00-02130.00+2321CRS_WGS_85/")
func Parse(input string) (*Coordinate, error) {
	return NewParser().Parse(input)
}

// ParseCompact parses a coordinate string restricted to the compact
// Annex H formats. Human-readable input is rejected with
// ErrNoFormatMatched.
func ParseCompact(input string) (*Coordinate, error) {
	opts := DefaultParseOptions()
	opts.Format = FormatCompact
	return NewParser().ParseWithOptions(input, opts)
}

// ParseReadable parses a coordinate string restricted to the
// human-readable Annex D form. Compact input is rejected with
// ErrNoFormatMatched.
func ParseReadable(input string) (*Coordinate, error) {
	opts := DefaultParseOptions()
	opts.Format = FormatReadable
	return NewParser().ParseWithOptions(input, opts)
}

// parserWrapper wraps the internal parser to provide the public API.
type parserWrapper struct {
	internal parser.Parser
}

func (p *parserWrapper) Parse(input string) (*Coordinate, error) {
	return p.ParseWithOptions(input, DefaultParseOptions())
}

func (p *parserWrapper) ParseWithOptions(input string, opts ParseOptions) (*Coordinate, error) {
	coord, err := p.internal.ParseWithOptions(input, convertOptions(opts))
	if err != nil {
		return nil, convertError(err)
	}
	return convertCoordinate(coord), nil
}

// convertError maps internal error types to their public counterparts so
// callers can match with errors.As without importing internal packages.
func convertError(err error) error {
	var rangeErr *parser.ErrRange
	if errors.As(err, &rangeErr) {
		return &ErrRange{
			Axis:  rangeErr.Axis,
			Field: rangeErr.Field,
			Value: rangeErr.Value,
			Limit: rangeErr.Limit,
		}
	}
	var suffixErr *parser.ErrUnterminatedSuffix
	if errors.As(err, &suffixErr) {
		return &ErrUnterminatedSuffix{
			Segment: suffixErr.Segment,
			Reason:  suffixErr.Reason,
		}
	}
	var noMatchErr *parser.ErrNoFormatMatched
	if errors.As(err, &noMatchErr) {
		return &ErrNoFormatMatched{Input: noMatchErr.Input}
	}
	return err
}
