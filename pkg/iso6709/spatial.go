package iso6709

import "math"

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// BoundsOf returns the smallest bounding box containing all of the given
// coordinates. The zero Bounds is returned for an empty slice.
func BoundsOf(coords ...*Coordinate) Bounds {
	if len(coords) == 0 {
		return Bounds{}
	}

	bounds := Bounds{
		MinLon: coords[0].lon,
		MaxLon: coords[0].lon,
		MinLat: coords[0].lat,
		MaxLat: coords[0].lat,
	}
	for _, c := range coords[1:] {
		bounds.MinLon = math.Min(bounds.MinLon, c.lon)
		bounds.MaxLon = math.Max(bounds.MaxLon, c.lon)
		bounds.MinLat = math.Min(bounds.MinLat, c.lat)
		bounds.MaxLat = math.Max(bounds.MaxLat, c.lat)
	}
	return bounds
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// ContainsCoordinate returns true if the coordinate is within the bounds.
func (b Bounds) ContainsCoordinate(c *Coordinate) bool {
	return b.Contains(c.lon, c.lat)
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}

// Union returns the smallest bounds containing both this bounds and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinLon: math.Min(b.MinLon, other.MinLon),
		MaxLon: math.Max(b.MaxLon, other.MaxLon),
		MinLat: math.Min(b.MinLat, other.MinLat),
		MaxLat: math.Max(b.MaxLat, other.MaxLat),
	}
}
