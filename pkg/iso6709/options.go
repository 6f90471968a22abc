package iso6709

import (
	"github.com/TimLikesTacos/iso6709parse/internal/parser"
)

// Format selects which ISO 6709 representations a parse attempt considers.
type Format int

const (
	// FormatAny tries the compact formats first, then the human-readable
	// form. This is the default.
	FormatAny Format = iota

	// FormatCompact accepts only the compact Annex H formats.
	FormatCompact

	// FormatReadable accepts only the human-readable Annex D form.
	FormatReadable
)

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// Format restricts which representations are attempted.
	Format Format

	// RequireTerminator rejects compact strings that omit the trailing
	// '/'. ISO 6709 requires the terminator; by default it is accepted
	// but not required, matching strings found in the wild.
	RequireTerminator bool
}

// DefaultParseOptions returns the default parsing options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Format:            FormatAny,
		RequireTerminator: false,
	}
}

// convertOptions maps public options to the internal parser's options.
func convertOptions(opts ParseOptions) parser.ParseOptions {
	internal := parser.ParseOptions{
		RequireTerminator: opts.RequireTerminator,
	}
	switch opts.Format {
	case FormatCompact:
		internal.Format = parser.FormatCompact
	case FormatReadable:
		internal.Format = parser.FormatReadable
	default:
		internal.Format = parser.FormatAny
	}
	return internal
}
