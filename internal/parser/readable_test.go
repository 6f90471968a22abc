package parser

import (
	"errors"
	"testing"
)

// TestParseReadable tests the human-readable degree/minute/second form
func TestParseReadable(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLat   float64
		wantLon   float64
		wantAlt   *float64
		wantErr   bool
		wantRange bool
	}{
		{
			name:    "typographic marks",
			input:   "35°30′00.000″N 170°06′00.000″W",
			wantLat: 35.5,
			wantLon: -170.1,
		},
		{
			name:    "ascii marks",
			input:   `35°30'00.000"N 170°06'00.000"W`,
			wantLat: 35.5,
			wantLon: -170.1,
		},
		{
			name:    "single fraction digit",
			input:   "50°40′46.5″S 165°58′32.5″E",
			wantLat: -(50 + 40.0/60 + 46.5/3600),
			wantLon: 165 + 58.0/60 + 32.5/3600,
		},
		{
			name:    "single digit fields",
			input:   "5°3′2.0″N 7°3′2.0″E",
			wantLat: 5 + 3.0/60 + 2.0/3600,
			wantLon: 7 + 3.0/60 + 2.0/3600,
		},
		{
			name:    "trailing altitude with unit",
			input:   "15°30′00.000″N 95°15′00.000″W 123.45m",
			wantLat: 15.5,
			wantLon: -95.25,
			wantAlt: floatPtr(123.45),
		},
		{
			name:    "negative altitude",
			input:   "15°30′00.000″N 95°15′00.000″W -123.45m",
			wantLat: 15.5,
			wantLon: -95.25,
			wantAlt: floatPtr(-123.45),
		},
		{
			name:    "altitude without unit",
			input:   "15°30′00.000″N 95°15′00.000″W 123.45",
			wantLat: 15.5,
			wantLon: -95.25,
			wantAlt: floatPtr(123.45),
		},
		{
			name:    "tab separator",
			input:   "35°30′00.000″N\t170°06′00.000″W",
			wantLat: 35.5,
			wantLon: -170.1,
		},

		{name: "seconds without fraction", input: "50°40′46″S 165°58′32″E", wantErr: true},
		{name: "missing separator", input: "35°30′00.000″N170°06′00.000″W", wantErr: true},
		{name: "lowercase hemisphere", input: "35°30′00.000″n 170°06′00.000″w", wantErr: true},
		{name: "longitude first", input: "170°06′00.000″W 35°30′00.000″N", wantErr: true},
		{name: "missing second mark", input: "35°30′00.000N 170°06′00.000W", wantErr: true},
		{name: "fraction on minutes", input: "35°30.5′00.000″N 170°06′00.000″W", wantErr: true},
		{name: "trailing junk", input: "35°30′00.000″N 170°06′00.000″W xyz", wantErr: true},
		{name: "empty", input: "", wantErr: true},

		{name: "latitude beyond pole", input: "91°30′00.000″N 170°06′00.000″W", wantErr: true, wantRange: true},
		{name: "minutes at sixty", input: "35°60′00.000″N 170°06′00.000″W", wantErr: true, wantRange: true},
		{name: "seconds at sixty", input: "35°30′60.000″N 170°06′00.000″W", wantErr: true, wantRange: true},
		{name: "longitude beyond antimeridian", input: "35°30′00.000″N 181°00′00.000″E", wantErr: true, wantRange: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, err := parseReadable(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseReadable(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var rangeErr *ErrRange
				if got := errors.As(err, &rangeErr); got != tt.wantRange {
					t.Errorf("parseReadable(%q) range error = %v, want %v (err: %v)",
						tt.input, got, tt.wantRange, err)
				}
				return
			}
			if !approxEqual(coord.Lat, tt.wantLat) || !approxEqual(coord.Lon, tt.wantLon) {
				t.Errorf("parseReadable(%q) = (%v, %v), want (%v, %v)",
					tt.input, coord.Lat, coord.Lon, tt.wantLat, tt.wantLon)
			}
			switch {
			case tt.wantAlt == nil && coord.Altitude != nil:
				t.Errorf("parseReadable(%q) altitude = %v, want none", tt.input, *coord.Altitude)
			case tt.wantAlt != nil && coord.Altitude == nil:
				t.Errorf("parseReadable(%q) altitude missing, want %v", tt.input, *tt.wantAlt)
			case tt.wantAlt != nil && !approxEqual(*coord.Altitude, *tt.wantAlt):
				t.Errorf("parseReadable(%q) altitude = %v, want %v", tt.input, *coord.Altitude, *tt.wantAlt)
			}
			if coord.CRS != "" {
				t.Errorf("parseReadable(%q) crs = %q, want none", tt.input, coord.CRS)
			}
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
