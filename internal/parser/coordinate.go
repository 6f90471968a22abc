package parser

// fieldKind identifies which sub-field of a coordinate component a scanned
// number fills.
type fieldKind int

const (
	fieldDegrees fieldKind = iota
	fieldMinutes
	fieldSeconds
)

// rawField is a single numeric field scanned from the input, tagged with the
// sub-field it represents. It only lives while one component is being parsed;
// the fraction of the final field is folded into its value before composition.
type rawField struct {
	kind  fieldKind
	value float64
}

// axis selects latitude or longitude handling. The two axes differ in degree
// field width, magnitude limit, and hemisphere letters.
type axis int

const (
	axisLatitude axis = iota
	axisLongitude
)

func (ax axis) String() string {
	if ax == axisLongitude {
		return "longitude"
	}
	return "latitude"
}

// degreeWidth returns the fixed degree field width of the compact form.
// Latitude is 2 digits and longitude 3; the asymmetry is what splits an
// unbroken digit stream into the two components.
// ISO 6709:2008 Annex H.2.1
func (ax axis) degreeWidth() int {
	if ax == axisLongitude {
		return 3
	}
	return 2
}

// maxDegrees returns the magnitude limit in decimal degrees.
func (ax axis) maxDegrees() float64 {
	if ax == axisLongitude {
		return 180
	}
	return 90
}

// hemispheres returns the positive and negative hemisphere letters.
// North and east are positive, south and west negative.
func (ax axis) hemispheres() (pos, neg byte) {
	if ax == axisLongitude {
		return 'E', 'W'
	}
	return 'N', 'S'
}

// angle is one parsed coordinate component before final assembly.
// degrees, minutes and seconds keep the scanned sub-fields for range
// validation; value is the composed magnitude in decimal degrees.
type angle struct {
	degrees  int
	minutes  int
	seconds  float64
	value    float64
	negative bool
}

// composeAngle converts scanned fields into a single angle. Fields arrive in
// degrees, minutes, seconds order and each contributes value/60^position to
// the decimal magnitude.
func composeAngle(fields []rawField, negative bool) angle {
	a := angle{negative: negative}
	for _, f := range fields {
		switch f.kind {
		case fieldDegrees:
			a.degrees = int(f.value)
			a.value += f.value
		case fieldMinutes:
			a.minutes = int(f.value)
			a.value += f.value / 60
		case fieldSeconds:
			a.seconds = f.value
			a.value += f.value / 3600
		}
	}
	return a
}

// decimal returns the signed decimal-degrees value.
func (a angle) decimal() float64 {
	if a.negative {
		return -a.value
	}
	return a.value
}

// validate checks the sub-field ranges for the given axis: minutes and
// seconds are sexagesimal (below 60), and the composed magnitude must stay
// within ±90 for latitude or ±180 for longitude. A degree field at the
// maximum with nonzero minutes or seconds fails the magnitude check.
// ISO 6709:2008 §5.2
func (a angle) validate(ax axis) error {
	if a.minutes >= 60 {
		return &ErrRange{Axis: ax.String(), Field: "minutes", Value: float64(a.minutes), Limit: 60}
	}
	if a.seconds >= 60 {
		return &ErrRange{Axis: ax.String(), Field: "seconds", Value: a.seconds, Limit: 60}
	}
	if a.value > ax.maxDegrees() {
		return &ErrRange{Axis: ax.String(), Field: "degrees", Value: a.decimal(), Limit: ax.maxDegrees()}
	}
	return nil
}

// Coordinate is a fully parsed point location: signed decimal degrees plus
// the optional vertical component and CRS label carried by the suffix of the
// compact form. Results are plain values with no retained references; every
// parse call produces an independent Coordinate.
type Coordinate struct {
	Lat      float64
	Lon      float64
	Altitude *float64 // meters, nil when the input carries none
	CRS      string   // verbatim CRS label, "" when the input carries none
}

// newCoordinate assembles the final result from one angle per axis. North
// and east map to positive values, south and west to negative. The angle
// ranges are re-validated here so that every grammar funnels through the
// same guard regardless of which variant matched.
func newCoordinate(lat, lon angle, altitude *float64, crs string) (*Coordinate, error) {
	if err := lat.validate(axisLatitude); err != nil {
		return nil, err
	}
	if err := lon.validate(axisLongitude); err != nil {
		return nil, err
	}
	return &Coordinate{
		Lat:      lat.decimal(),
		Lon:      lon.decimal(),
		Altitude: altitude,
		CRS:      crs,
	}, nil
}
