package parser

import (
	"fmt"
)

// readableName names the human-readable grammar in mismatch reports.
const readableName = "DD°MM′SS.SSS″H DDD°MM′SS.SSS″H"

// parseReadable reads the human-readable degree/minute/second form:
//
//	35°30′00.000″N 170°06′00.000″W
//	15°30′00.000″N 95°15′00.000″W 123.45m
//
// Latitude always leads and the two components are separated by at least one
// space or tab. Degree and minute fields are unpadded integers of up to
// three digits; seconds always carry a fraction. The hemisphere letter
// trails each component. An optional altitude may trail the longitude; its
// unit letters are consumed but not interpreted, the value is taken as
// meters.
// ISO 6709:2008 Annex D
func parseReadable(s string) (*Coordinate, error) {
	lat, rest, err := parseReadableAngle(s, axisLatitude)
	if err != nil {
		return nil, err
	}

	rest, ok := scanSpaces(rest)
	if !ok {
		return nil, readableMismatch("missing separator after latitude")
	}

	lon, rest, err := parseReadableAngle(rest, axisLongitude)
	if err != nil {
		return nil, err
	}

	var altitude *float64
	if r, ok := scanSpaces(rest); ok {
		v, r, ok := scanReadableAltitude(r)
		if !ok {
			return nil, readableMismatch(fmt.Sprintf("trailing input %q after longitude", rest))
		}
		altitude = &v
		rest = r
	}
	if rest != "" {
		return nil, readableMismatch(fmt.Sprintf("trailing input %q", rest))
	}

	return newCoordinate(lat, lon, altitude, "")
}

// parseReadableAngle reads one component: degrees with the ° mark, minutes
// with the ′ mark, seconds with the ″ mark, then the hemisphere letter.
func parseReadableAngle(s string, ax axis) (angle, string, error) {
	deg, rest, ok := scanVarDigits(s, 1, 3)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " degree digits")
	}
	rest, ok = scanMark(rest, degreeMarks)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " degree mark")
	}

	min, rest, ok := scanVarDigits(rest, 1, 3)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " minute digits")
	}
	rest, ok = scanMark(rest, minuteMarks)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " minute mark")
	}

	secInt, rest, ok := scanVarDigits(rest, 1, 3)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " second digits")
	}
	secFrac, rest, ok := scanFraction(rest)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " second fraction")
	}
	sec := float64(secInt) + secFrac
	rest, ok = scanMark(rest, secondMarks)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " second mark")
	}

	neg, rest, ok := scanSign(rest, ax, notationHemisphere)
	if !ok {
		return angle{}, s, readableMismatch(ax.String() + " hemisphere letter")
	}

	a := composeAngle([]rawField{
		{kind: fieldDegrees, value: float64(deg)},
		{kind: fieldMinutes, value: float64(min)},
		{kind: fieldSeconds, value: sec},
	}, neg)
	if err := a.validate(ax); err != nil {
		return angle{}, s, err
	}
	return a, rest, nil
}

// scanReadableAltitude reads the trailing altitude of the human-readable
// form: an optional '-', a decimal number, and optional unit letters.
func scanReadableAltitude(s string) (float64, string, bool) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	v, rest, ok := scanFloatRun(s)
	if !ok {
		return 0, s, false
	}
	for len(rest) > 0 && isASCIILetter(rest[0]) {
		rest = rest[1:]
	}
	if neg {
		v = -v
	}
	return v, rest, true
}

func readableMismatch(reason string) error {
	return &ErrGrammarMismatch{Format: readableName, Reason: reason}
}
