package parser

import (
	"fmt"
)

// variant is one compact ISO 6709 sub-format: a field depth (degrees only,
// plus minutes, plus seconds) combined with a sign notation. A variant binds
// both axes, so mixed notations or mixed field widths across latitude and
// longitude never match.
type variant struct {
	name     string
	fields   int // 1 degrees, 2 adds minutes, 3 adds seconds
	notation notation
}

// compactVariants lists the accepted sub-formats in dispatch order, longest
// field width first. The formats share a digit-run prefix, so a shorter
// variant would otherwise greedily consume the head of a longer one; the
// order is load-bearing.
// ISO 6709:2008 Annex H.2.1
var compactVariants = []variant{
	{name: "±DDMMSS.SSS±DDDMMSS.SSS", fields: 3, notation: notationSigned},
	{name: "HDDMMSS.SSSHDDDMMSS.SSS", fields: 3, notation: notationHemisphere},
	{name: "±DDMM.MMM±DDDMM.MMM", fields: 2, notation: notationSigned},
	{name: "HDDMM.MMMHDDDMM.MMM", fields: 2, notation: notationHemisphere},
	{name: "±DD.DDD±DDD.DDD", fields: 1, notation: notationSigned},
	{name: "HDD.DDDHDDD.DDD", fields: 1, notation: notationHemisphere},
}

// parseAngle reads one coordinate component in this variant's sub-format:
// the sign or hemisphere letter, the fixed-width degree field (2 digits for
// latitude, 3 for longitude), the minute and second fields the variant calls
// for, and an optional decimal fraction on the final field. Range violations
// are reported eagerly so the dispatcher can stop before reinterpreting the
// digits under a wrong grammar.
func (v variant) parseAngle(s string, ax axis) (angle, string, error) {
	neg, rest, ok := scanSign(s, ax, v.notation)
	if !ok {
		return angle{}, s, v.mismatch(ax, "sign or hemisphere prefix")
	}

	deg, rest, ok := scanFixedDigits(rest, ax.degreeWidth())
	if !ok {
		return angle{}, s, v.mismatch(ax, "degree digits")
	}
	fields := []rawField{{kind: fieldDegrees, value: float64(deg)}}

	if v.fields >= 2 {
		min, r, ok := scanFixedDigits(rest, 2)
		if !ok {
			return angle{}, s, v.mismatch(ax, "minute digits")
		}
		fields = append(fields, rawField{kind: fieldMinutes, value: float64(min)})
		rest = r
	}
	if v.fields >= 3 {
		sec, r, ok := scanFixedDigits(rest, 2)
		if !ok {
			return angle{}, s, v.mismatch(ax, "second digits")
		}
		fields = append(fields, rawField{kind: fieldSeconds, value: float64(sec)})
		rest = r
	}

	// The fraction always belongs to the final field of the sub-format.
	if frac, r, ok := scanFraction(rest); ok {
		fields[len(fields)-1].value += frac
		rest = r
	}

	a := composeAngle(fields, neg)
	if err := a.validate(ax); err != nil {
		return angle{}, s, err
	}
	return a, rest, nil
}

func (v variant) mismatch(ax axis, field string) error {
	return &ErrGrammarMismatch{
		Format: v.name,
		Reason: fmt.Sprintf("%s %s", ax, field),
	}
}
