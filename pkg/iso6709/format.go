package iso6709

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Notation selects the sign convention of compact output.
type Notation int

const (
	// NotationSigned prefixes each angle with '+' or '-'.
	NotationSigned Notation = iota

	// NotationHemisphere prefixes each angle with N, S, E or W.
	NotationHemisphere
)

// Resolution selects the angular resolution of compact output.
type Resolution int

const (
	// ResolutionDegrees emits decimal degrees (DD.DDD).
	ResolutionDegrees Resolution = iota

	// ResolutionMinutes emits degrees and decimal minutes (DDMM.MMM).
	ResolutionMinutes

	// ResolutionSeconds emits degrees, minutes and decimal seconds
	// (DDMMSS.SSS).
	ResolutionSeconds
)

// FormatOptions configures compact-string output.
type FormatOptions struct {
	// Notation selects signed or hemisphere-letter prefixes.
	Notation Notation

	// Resolution selects the finest angular field emitted.
	Resolution Resolution

	// Precision is the number of fraction digits on the finest field.
	// Values are clamped to the range 0 through 9.
	Precision int

	// Terminator appends the '/' that closes an ISO 6709 string. An
	// altitude or CRS suffix always forces the terminator regardless of
	// this setting.
	Terminator bool
}

// DefaultFormatOptions returns the default formatting options: signed
// decimal degrees with six fraction digits and a trailing terminator.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Notation:   NotationSigned,
		Resolution: ResolutionDegrees,
		Precision:  6,
		Terminator: true,
	}
}

// Format renders the coordinate in the compact string representation of
// ISO 6709:2008 Annex H. The output parses back to the same coordinate,
// subject to the requested precision.
func (c *Coordinate) Format(opts FormatOptions) string {
	var sb strings.Builder
	writeCompactAngle(&sb, c.lat, 2, 'N', 'S', opts)
	writeCompactAngle(&sb, c.lon, 3, 'E', 'W', opts)
	if c.altitude != nil {
		if !math.Signbit(*c.altitude) {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.FormatFloat(*c.altitude, 'f', -1, 64))
	}
	// An altitude or CRS suffix without its closing '/' would not parse
	// back.
	if c.crs != "" {
		sb.WriteString("CRS")
		sb.WriteString(c.crs)
		sb.WriteByte('/')
	} else if c.altitude != nil || opts.Terminator {
		sb.WriteByte('/')
	}
	return sb.String()
}

// FormatReadable renders the coordinate in the human-readable
// degree/minute/second representation of ISO 6709:2008 Annex D, with the
// given number of fraction digits on the seconds field:
//
//	35°30′00.000″N 170°06′00.000″W
//
// Precision is clamped to the range 1 through 9; the seconds field always
// carries a fraction, so the output parses back. An altitude, when present,
// is appended in meters.
func (c *Coordinate) FormatReadable(precision int) string {
	var sb strings.Builder
	writeReadableAngle(&sb, c.lat, 'N', 'S', precision)
	sb.WriteByte(' ')
	writeReadableAngle(&sb, c.lon, 'E', 'W', precision)
	if c.altitude != nil {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(*c.altitude, 'f', -1, 64))
		sb.WriteByte('m')
	}
	return sb.String()
}

// writeCompactAngle renders one angle of a compact string. The value is
// decomposed in fixed-point units of the finest field so that rounding
// carries exactly, never emitting 60 in a minutes or seconds field.
func writeCompactAngle(sb *strings.Builder, value float64, degWidth int, positive, negative byte, opts FormatOptions) {
	if opts.Notation == NotationHemisphere {
		if math.Signbit(value) {
			sb.WriteByte(negative)
		} else {
			sb.WriteByte(positive)
		}
	} else {
		if math.Signbit(value) {
			sb.WriteByte('-')
		} else {
			sb.WriteByte('+')
		}
	}

	precision := clampPrecision(opts.Precision)
	abs := math.Abs(value)
	switch opts.Resolution {
	case ResolutionMinutes:
		perMinute := pow10(precision)
		perDegree := 60 * perMinute
		scaled := int64(math.Round(abs * float64(perDegree)))
		fmt.Fprintf(sb, "%0*d", degWidth, scaled/perDegree)
		sb.WriteString(fixedField(scaled%perDegree, perMinute, 2, precision))
	case ResolutionSeconds:
		perSecond := pow10(precision)
		perMinute := 60 * perSecond
		perDegree := 60 * perMinute
		scaled := int64(math.Round(abs * float64(perDegree)))
		rem := scaled % perDegree
		fmt.Fprintf(sb, "%0*d", degWidth, scaled/perDegree)
		fmt.Fprintf(sb, "%02d", rem/perMinute)
		sb.WriteString(fixedField(rem%perMinute, perSecond, 2, precision))
	default:
		perDegree := pow10(precision)
		scaled := int64(math.Round(abs * float64(perDegree)))
		sb.WriteString(fixedField(scaled, perDegree, degWidth, precision))
	}
}

// writeReadableAngle renders one angle of the human-readable form. Degrees
// are written without zero padding; minutes and seconds are two digits.
func writeReadableAngle(sb *strings.Builder, value float64, positive, negative byte, precision int) {
	precision = clampPrecision(precision)
	if precision == 0 {
		// The readable grammar requires a seconds fraction.
		precision = 1
	}
	perSecond := pow10(precision)
	perMinute := 60 * perSecond
	perDegree := 60 * perMinute
	scaled := int64(math.Round(math.Abs(value) * float64(perDegree)))
	rem := scaled % perDegree
	fmt.Fprintf(sb, "%d°%02d′", scaled/perDegree, rem/perMinute)
	sb.WriteString(fixedField(rem%perMinute, perSecond, 2, precision))
	sb.WriteString("″")
	if math.Signbit(value) {
		sb.WriteByte(negative)
	} else {
		sb.WriteByte(positive)
	}
}

// fixedField renders units/unitsPerOne with a zero-padded integer part and
// exactly precision fraction digits.
func fixedField(units, unitsPerOne int64, intWidth, precision int) string {
	whole := units / unitsPerOne
	if precision == 0 {
		return fmt.Sprintf("%0*d", intWidth, whole)
	}
	return fmt.Sprintf("%0*d.%0*d", intWidth, whole, precision, units%unitsPerOne)
}

// clampPrecision bounds fraction digits so the fixed-point decomposition
// of a longitude in seconds stays within int64.
func clampPrecision(precision int) int {
	if precision < 0 {
		return 0
	}
	if precision > 9 {
		return 9
	}
	return precision
}

func pow10(n int) int64 {
	out := int64(1)
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}
