package main

import (
	"fmt"
	"log"

	"github.com/TimLikesTacos/iso6709parse/pkg/iso6709"
)

func main() {
	// Restrict parsing to the compact formats
	coord, err := iso6709.ParseCompact("+35.50-170.10/")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Compact only: %.2f, %.2f\n", coord.Latitude(), coord.Longitude())

	// Human-readable input is rejected in compact mode
	_, err = iso6709.ParseCompact("35°30′00.000″N 170°06′00.000″W")
	fmt.Printf("Readable in compact mode: %v\n", err)

	// Restrict parsing to the human-readable form
	coord, err = iso6709.ParseReadable("35°30′00.000″N 170°06′00.000″W")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Readable only: %.2f, %.2f\n", coord.Latitude(), coord.Longitude())

	// Strict mode requires the trailing '/' the standard mandates
	parser := iso6709.NewParser()
	opts := iso6709.DefaultParseOptions()
	opts.RequireTerminator = true

	_, err = parser.ParseWithOptions("+35.50-170.10", opts)
	fmt.Printf("Strict without terminator: %v\n", err)

	coord, err = parser.ParseWithOptions("+35.50-170.10/", opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Strict with terminator: %.2f, %.2f\n", coord.Latitude(), coord.Longitude())
}
