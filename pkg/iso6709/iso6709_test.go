package iso6709

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLon float64
		wantAlt float64
		hasAlt  bool
		wantCRS string
	}{
		{
			name:    "signed degrees and minutes with altitude and crs",
			input:   "+1200.00-02130.00+2321CRS_WGS_85/",
			wantLat: 12.0,
			wantLon: -21.5,
			wantAlt: 2321.0,
			hasAlt:  true,
			wantCRS: "_WGS_85",
		},
		{
			name:    "hemisphere degrees with altitude and crs",
			input:   "N35.50W170.10+8712CRSWGS_85/",
			wantLat: 35.5,
			wantLon: -170.1,
			wantAlt: 8712.0,
			hasAlt:  true,
			wantCRS: "WGS_85",
		},
		{
			name:    "human readable",
			input:   "35°30′00.000″N 170°06′00.000″W",
			wantLat: 35.5,
			wantLon: -170.1,
		},
		{
			name:    "signed decimal degrees",
			input:   "+48.8566+002.3522/",
			wantLat: 48.8566,
			wantLon: 2.3522,
		},
		{
			name:    "south pole",
			input:   "-90+000/",
			wantLat: -90.0,
			wantLon: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if !almostEqual(coord.Latitude(), tt.wantLat) {
				t.Errorf("latitude = %v, want %v", coord.Latitude(), tt.wantLat)
			}
			if !almostEqual(coord.Longitude(), tt.wantLon) {
				t.Errorf("longitude = %v, want %v", coord.Longitude(), tt.wantLon)
			}

			alt, ok := coord.Altitude()
			if ok != tt.hasAlt {
				t.Errorf("altitude present = %v, want %v", ok, tt.hasAlt)
			}
			if tt.hasAlt && !almostEqual(alt, tt.wantAlt) {
				t.Errorf("altitude = %v, want %v", alt, tt.wantAlt)
			}

			crs, ok := coord.CRS()
			if ok != (tt.wantCRS != "") {
				t.Errorf("crs present = %v, want %v", ok, tt.wantCRS != "")
			}
			if crs != tt.wantCRS {
				t.Errorf("crs = %q, want %q", crs, tt.wantCRS)
			}
		})
	}
}

func TestParseErrorTypes(t *testing.T) {
	t.Run("range error", func(t *testing.T) {
		_, err := Parse("N91.00E010.00/")
		if err == nil {
			t.Fatal("expected error for latitude 91")
		}
		var rangeErr *ErrRange
		if !errors.As(err, &rangeErr) {
			t.Fatalf("expected *ErrRange, got %T: %v", err, err)
		}
		if rangeErr.Axis != "latitude" {
			t.Errorf("axis = %q, want latitude", rangeErr.Axis)
		}
		if rangeErr.Limit != 90 {
			t.Errorf("limit = %v, want 90", rangeErr.Limit)
		}
	})

	t.Run("unterminated suffix", func(t *testing.T) {
		_, err := Parse("+35.50+139.75+2122CRSWGS_85")
		if err == nil {
			t.Fatal("expected error for missing terminator")
		}
		var suffixErr *ErrUnterminatedSuffix
		if !errors.As(err, &suffixErr) {
			t.Fatalf("expected *ErrUnterminatedSuffix, got %T: %v", err, err)
		}
		if suffixErr.Segment != "crs" {
			t.Errorf("segment = %q, want crs", suffixErr.Segment)
		}
	})

	t.Run("no format matched", func(t *testing.T) {
		// A bare suffix has no coordinate in front of it, so it never
		// reaches the suffix stage.
		for _, input := range []string{"garbage", "+1200.00", "", "+2122CRSWGS_85"} {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", input)
			}
			var noMatch *ErrNoFormatMatched
			if !errors.As(err, &noMatch) {
				t.Fatalf("Parse(%q): expected *ErrNoFormatMatched, got %T: %v", input, err, err)
			}
		}
	})
}

func TestParseCompact(t *testing.T) {
	coord, err := ParseCompact("+35.50-170.10/")
	if err != nil {
		t.Fatalf("ParseCompact failed: %v", err)
	}
	if !almostEqual(coord.Latitude(), 35.5) || !almostEqual(coord.Longitude(), -170.1) {
		t.Errorf("got (%v, %v), want (35.5, -170.1)", coord.Latitude(), coord.Longitude())
	}

	// Human-readable input must be rejected in compact mode.
	if _, err := ParseCompact("35°30′00.000″N 170°06′00.000″W"); err == nil {
		t.Error("ParseCompact should reject human-readable input")
	}
}

func TestParseReadable(t *testing.T) {
	coord, err := ParseReadable("35°30′00.000″N 170°06′00.000″W")
	if err != nil {
		t.Fatalf("ParseReadable failed: %v", err)
	}
	if !almostEqual(coord.Latitude(), 35.5) || !almostEqual(coord.Longitude(), -170.1) {
		t.Errorf("got (%v, %v), want (35.5, -170.1)", coord.Latitude(), coord.Longitude())
	}

	// Compact input must be rejected in readable mode.
	if _, err := ParseReadable("+35.50-170.10/"); err == nil {
		t.Error("ParseReadable should reject compact input")
	}
}

func TestParserWithOptions(t *testing.T) {
	p := NewParser()

	opts := DefaultParseOptions()
	opts.RequireTerminator = true

	if _, err := p.ParseWithOptions("+35.50-170.10", opts); err == nil {
		t.Error("strict mode should reject a missing terminator")
	}
	if _, err := p.ParseWithOptions("+35.50-170.10/", opts); err != nil {
		t.Errorf("strict mode rejected a terminated string: %v", err)
	}
}

func TestNewCoordinate(t *testing.T) {
	coord, err := NewCoordinate(35.5, -170.1)
	if err != nil {
		t.Fatalf("NewCoordinate failed: %v", err)
	}
	if coord.Latitude() != 35.5 || coord.Longitude() != -170.1 {
		t.Errorf("got (%v, %v)", coord.Latitude(), coord.Longitude())
	}

	if _, err := NewCoordinate(90.5, 0); err == nil {
		t.Error("latitude 90.5 should be rejected")
	}
	if _, err := NewCoordinate(0, -180.5); err == nil {
		t.Error("longitude -180.5 should be rejected")
	}

	var rangeErr *ErrRange
	_, err = NewCoordinate(91, 0)
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *ErrRange, got %T", err)
	}
}

func TestWithAltitudeAndCRS(t *testing.T) {
	base, err := NewCoordinate(12.0, -21.5)
	if err != nil {
		t.Fatal(err)
	}

	withAlt := base.WithAltitude(2321)
	withBoth := withAlt.WithCRS("WGS_84")

	// The original must be untouched.
	if _, ok := base.Altitude(); ok {
		t.Error("WithAltitude modified the original coordinate")
	}
	if _, ok := base.CRS(); ok {
		t.Error("WithCRS modified the original coordinate")
	}

	alt, ok := withBoth.Altitude()
	if !ok || alt != 2321 {
		t.Errorf("altitude = (%v, %v), want (2321, true)", alt, ok)
	}
	crs, ok := withBoth.CRS()
	if !ok || crs != "WGS_84" {
		t.Errorf("crs = (%q, %v), want (WGS_84, true)", crs, ok)
	}
}

func TestAbsentFields(t *testing.T) {
	coord, err := Parse("+35.50-170.10/")
	if err != nil {
		t.Fatal(err)
	}
	if alt, ok := coord.Altitude(); ok || alt != 0 {
		t.Errorf("Altitude() = (%v, %v), want (0, false)", alt, ok)
	}
	if crs, ok := coord.CRS(); ok || crs != "" {
		t.Errorf("CRS() = (%q, %v), want (\"\", false)", crs, ok)
	}
}
