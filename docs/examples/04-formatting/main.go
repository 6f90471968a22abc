package main

import (
	"fmt"
	"log"

	"github.com/TimLikesTacos/iso6709parse/pkg/iso6709"
)

func main() {
	coord, err := iso6709.NewCoordinate(35.360833, 138.7275)
	if err != nil {
		log.Fatal(err)
	}
	coord = coord.WithAltitude(3776).WithCRS("WGS_84")

	// Default formatting: signed decimal degrees
	fmt.Printf("Default:    %s\n", coord)

	// Degrees and minutes, signed
	fmt.Printf("Minutes:    %s\n", coord.Format(iso6709.FormatOptions{
		Notation:   iso6709.NotationSigned,
		Resolution: iso6709.ResolutionMinutes,
		Precision:  2,
		Terminator: true,
	}))

	// Degrees, minutes and seconds with hemisphere letters
	fmt.Printf("Seconds:    %s\n", coord.Format(iso6709.FormatOptions{
		Notation:   iso6709.NotationHemisphere,
		Resolution: iso6709.ResolutionSeconds,
		Precision:  1,
		Terminator: true,
	}))

	// Human-readable output
	fmt.Printf("Readable:   %s\n", coord.FormatReadable(2))

	// Every output parses back to the same location
	parsed, err := iso6709.Parse(coord.FormatReadable(2))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Round trip: %.6f, %.6f\n", parsed.Latitude(), parsed.Longitude())
}
