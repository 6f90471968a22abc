// Package iso6709 parses geographic point locations written in the ISO 6709
// string representations.
//
// Two families of input are accepted: the compact string representation of
// ISO 6709:2008 Annex H, in signed or hemisphere-letter notation at degree,
// minute or second resolution,
//
//	+1200.00-02130.00+2321CRS_WGS_85/
//	N35.50W170.10+8712CRSWGS_85/
//
// and the human-readable degree/minute/second form of Annex D,
//
//	35°30′00.000″N 170°06′00.000″W
//
// Parsing produces a Coordinate holding signed decimal degrees (north and
// east positive) plus the optional altitude and CRS label of the compact
// suffix. Coordinates can be written back out with Format and
// FormatReadable, converted to s2 geometry, and indexed for spatial queries
// with PointIndex.
package iso6709

import (
	"github.com/TimLikesTacos/iso6709parse/internal/parser"
)

// Coordinate is a parsed geographic point location.
//
// Latitude and longitude are signed decimal degrees in the WGS-84 value
// ranges (±90 and ±180). The altitude and CRS label are present only when
// the input carried them.
//
// All fields are private to maintain encapsulation; a Coordinate is
// immutable once created.
type Coordinate struct {
	lat      float64
	lon      float64
	altitude *float64
	crs      string
}

// NewCoordinate creates a coordinate from decimal degrees.
//
// Returns an error if latitude is outside ±90 or longitude outside ±180.
func NewCoordinate(lat, lon float64) (*Coordinate, error) {
	if lat < -90 || lat > 90 {
		return nil, &ErrRange{Axis: "latitude", Field: "degrees", Value: lat, Limit: 90}
	}
	if lon < -180 || lon > 180 {
		return nil, &ErrRange{Axis: "longitude", Field: "degrees", Value: lon, Limit: 180}
	}
	return &Coordinate{lat: lat, lon: lon}, nil
}

// WithAltitude returns a copy of the coordinate carrying the given altitude
// in meters.
func (c *Coordinate) WithAltitude(meters float64) *Coordinate {
	out := *c
	out.altitude = &meters
	return &out
}

// WithCRS returns a copy of the coordinate carrying the given CRS label.
//
// The label is treated as opaque; it is emitted verbatim by Format.
func (c *Coordinate) WithCRS(name string) *Coordinate {
	out := *c
	out.crs = name
	return &out
}

// Latitude returns the latitude in signed decimal degrees.
// North is positive, south negative.
func (c *Coordinate) Latitude() float64 { return c.lat }

// Longitude returns the longitude in signed decimal degrees.
// East is positive, west negative.
func (c *Coordinate) Longitude() float64 { return c.lon }

// Altitude returns the altitude in meters and whether the input carried one.
func (c *Coordinate) Altitude() (float64, bool) {
	if c.altitude == nil {
		return 0, false
	}
	return *c.altitude, true
}

// CRS returns the coordinate-reference-system label and whether the input
// carried one. The label is the verbatim text between the CRS literal and
// the '/' terminator; it is not interpreted.
func (c *Coordinate) CRS() (string, bool) {
	return c.crs, c.crs != ""
}

// String returns the compact string representation with default formatting:
// signed decimal degrees, six fraction digits, trailing terminator.
func (c *Coordinate) String() string {
	return c.Format(DefaultFormatOptions())
}

// convertCoordinate converts an internal parse result to the public type.
func convertCoordinate(internal *parser.Coordinate) *Coordinate {
	c := &Coordinate{
		lat: internal.Lat,
		lon: internal.Lon,
		crs: internal.CRS,
	}
	if internal.Altitude != nil {
		alt := *internal.Altitude
		c.altitude = &alt
	}
	return c
}
