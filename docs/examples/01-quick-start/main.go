package main

import (
	"fmt"
	"log"

	"github.com/TimLikesTacos/iso6709parse/pkg/iso6709"
)

func main() {
	// Parse a compact ISO 6709 string
	coord, err := iso6709.Parse("+1200.00-02130.00+2321CRS_WGS_85/")
	if err != nil {
		log.Fatal(err)
	}

	// Print coordinate info
	fmt.Printf("Latitude: %.4f\n", coord.Latitude())
	fmt.Printf("Longitude: %.4f\n", coord.Longitude())
	if alt, ok := coord.Altitude(); ok {
		fmt.Printf("Altitude: %.1f m\n", alt)
	}
	if crs, ok := coord.CRS(); ok {
		fmt.Printf("CRS: %s\n", crs)
	}

	// The same entry point accepts the human-readable form
	readable, err := iso6709.Parse("35°30′00.000″N 170°06′00.000″W")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Readable input: %.4f, %.4f\n", readable.Latitude(), readable.Longitude())

	// Coordinates print back out in compact form
	fmt.Printf("Round trip: %s\n", readable)
}
