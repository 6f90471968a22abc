package iso6709

import (
	"github.com/golang/geo/s2"
)

// earthRadiusMeters is the IUGG mean Earth radius, used to convert
// spherical angles to surface distances.
const earthRadiusMeters = 6371008.8

// Point is a parsed location in GeoJSON axis order: longitude first.
type Point struct {
	Lon float64
	Lat float64
}

// Point returns the coordinate as a longitude/latitude pair.
func (c *Coordinate) Point() Point {
	return Point{Lon: c.lon, Lat: c.lat}
}

// LatLng returns the coordinate as an s2.LatLng for use with the s2
// spherical geometry library.
func (c *Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.lat, c.lon)
}

// S2Point returns the coordinate as a unit vector on the s2 sphere.
// Useful for cell coverings, polygon containment and other s2 operations.
func (c *Coordinate) S2Point() s2.Point {
	return s2.PointFromLatLng(c.LatLng())
}

// Distance returns the great-circle distance to another coordinate in
// meters. Altitude is ignored.
func (c *Coordinate) Distance(other *Coordinate) float64 {
	return c.LatLng().Distance(other.LatLng()).Radians() * earthRadiusMeters
}
