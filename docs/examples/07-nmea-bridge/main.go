package main

import (
	"fmt"
	"log"

	nmea "github.com/adrianmo/go-nmea"

	"github.com/TimLikesTacos/iso6709parse/pkg/iso6709"
)

// toISO6709 converts an NMEA GGA fix into an ISO 6709 coordinate.
func toISO6709(gga nmea.GGA) (*iso6709.Coordinate, error) {
	coord, err := iso6709.NewCoordinate(gga.Latitude, gga.Longitude)
	if err != nil {
		return nil, err
	}
	return coord.WithAltitude(gga.Altitude).WithCRS("WGS_84"), nil
}

func main() {
	// A GPS receiver emits NMEA sentences like this one
	lines := []string{
		"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47",
		"$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*76",
	}

	for _, line := range lines {
		sentence, err := nmea.Parse(line)
		if err != nil {
			log.Printf("NMEA parse error: %v", err)
			continue
		}

		if sentence.DataType() != nmea.TypeGGA {
			continue
		}
		gga := sentence.(nmea.GGA)

		coord, err := toISO6709(gga)
		if err != nil {
			log.Printf("conversion error: %v", err)
			continue
		}

		// Emit the fix as a standard interchange string
		fmt.Printf("NMEA:     %s\n", line)
		fmt.Printf("ISO 6709: %s\n", coord.Format(iso6709.FormatOptions{
			Notation:   iso6709.NotationHemisphere,
			Resolution: iso6709.ResolutionMinutes,
			Precision:  4,
			Terminator: true,
		}))
		fmt.Printf("Readable: %s\n\n", coord.FormatReadable(1))
	}
}
