package iso6709

import (
	"math"
	"testing"
)

func TestPoint(t *testing.T) {
	coord, err := Parse("+35.50-170.10/")
	if err != nil {
		t.Fatal(err)
	}

	point := coord.Point()
	if !almostEqual(point.Lon, -170.1) {
		t.Errorf("Lon = %v, want -170.1", point.Lon)
	}
	if !almostEqual(point.Lat, 35.5) {
		t.Errorf("Lat = %v, want 35.5", point.Lat)
	}
}

func TestLatLng(t *testing.T) {
	coord := mustCoordinate(t, 35.5, -170.1)

	latlng := coord.LatLng()
	if !almostEqual(latlng.Lat.Degrees(), 35.5) {
		t.Errorf("Lat = %v, want 35.5", latlng.Lat.Degrees())
	}
	if !almostEqual(latlng.Lng.Degrees(), -170.1) {
		t.Errorf("Lng = %v, want -170.1", latlng.Lng.Degrees())
	}
}

func TestS2Point(t *testing.T) {
	coord := mustCoordinate(t, 35.5, -170.1)

	point := coord.S2Point()
	if math.Abs(point.Norm()-1.0) > 1e-12 {
		t.Errorf("S2Point norm = %v, want 1", point.Norm())
	}

	// The north pole maps to the +Z axis.
	pole := mustCoordinate(t, 90, 0)
	if math.Abs(pole.S2Point().Z-1.0) > 1e-12 {
		t.Errorf("north pole Z = %v, want 1", pole.S2Point().Z)
	}
}

func TestDistance(t *testing.T) {
	london := mustCoordinate(t, 51.5074, -0.1278)
	paris := mustCoordinate(t, 48.8566, 2.3522)

	// Great-circle distance London to Paris is roughly 344 km.
	dist := london.Distance(paris)
	if dist < 330_000 || dist > 360_000 {
		t.Errorf("London-Paris distance = %v m, want roughly 344 km", dist)
	}

	// Distance is symmetric.
	if !almostEqual(dist, paris.Distance(london)) {
		t.Error("distance is not symmetric")
	}

	// One degree of longitude along the equator is about 111.2 km.
	origin := mustCoordinate(t, 0, 0)
	east := mustCoordinate(t, 0, 1)
	dist = origin.Distance(east)
	if dist < 111_000 || dist > 111_400 {
		t.Errorf("one equatorial degree = %v m, want roughly 111.2 km", dist)
	}

	if origin.Distance(origin) != 0 {
		t.Errorf("distance to self = %v, want 0", origin.Distance(origin))
	}
}
