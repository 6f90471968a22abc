package parser

import (
	"strings"
)

// crsLiteral opens the coordinate-reference-system segment of the compact
// form. ISO 6709:2008 Annex H.4
const crsLiteral = "CRS"

// parseSuffix reads the optional trailer of the compact form: an altitude,
// a CRS identification, and the '/' terminator.
//
//	suffix = [sign digits [. digits]] ["CRS" name] "/"
//
// The whole trailer may be absent. Once a segment is opened (a sign for the
// altitude, the CRS literal) the closing '/' becomes mandatory; a malformed
// or unclosed remainder is an ErrUnterminatedSuffix rather than a grammar
// mismatch, so the dispatcher does not reinterpret the string under another
// sub-format. terminated reports whether a '/' was consumed.
func parseSuffix(s string) (altitude *float64, crs string, rest string, terminated bool, err error) {
	opened := false

	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		opened = true
		neg := s[0] == '-'
		v, r, ok := scanFloatRun(s[1:])
		if !ok {
			return nil, "", s, false, &ErrUnterminatedSuffix{
				Segment: "altitude",
				Reason:  "sign without a numeric value",
			}
		}
		if neg {
			v = -v
		}
		altitude = &v
		s = r
	}

	if strings.HasPrefix(s, crsLiteral) {
		opened = true
		r := s[len(crsLiteral):]
		end := strings.IndexByte(r, '/')
		if end < 0 {
			return nil, "", s, false, &ErrUnterminatedSuffix{
				Segment: "crs",
				Reason:  "missing '/' terminator",
			}
		}
		if end == 0 {
			return nil, "", s, false, &ErrUnterminatedSuffix{
				Segment: "crs",
				Reason:  "empty CRS name",
			}
		}
		crs = r[:end]
		s = r[end:]
	}

	if len(s) > 0 && s[0] == '/' {
		return altitude, crs, s[1:], true, nil
	}
	if opened {
		// Only reachable with an altitude and no CRS segment; the CRS scan
		// above already requires its own terminator.
		return nil, "", s, false, &ErrUnterminatedSuffix{
			Segment: "altitude",
			Reason:  "missing '/' terminator",
		}
	}
	return altitude, crs, s, false, nil
}
