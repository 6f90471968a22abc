package main

import (
	"fmt"
	"log"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/TimLikesTacos/iso6709parse/pkg/iso6709"
)

func main() {
	london, err := iso6709.Parse("+51.5074-000.1278/")
	if err != nil {
		log.Fatal(err)
	}
	paris, err := iso6709.Parse("48°51′24.0″N 2°21′08.0″E")
	if err != nil {
		log.Fatal(err)
	}

	// Great-circle distance in meters
	fmt.Printf("London-Paris: %.1f km\n", london.Distance(paris)/1000)

	// Parsed coordinates convert directly to s2 geometry
	latlng := london.LatLng()
	fmt.Printf("LatLng: %v\n", latlng)

	// S2 cell at level 10 (~10 km), useful for bucketing and lookup grids
	cell := s2.CellIDFromLatLng(latlng).Parent(10)
	fmt.Printf("Cell ID: %s\n", cell.ToToken())

	// Unit vector on the sphere for s2 cap and polygon operations
	region := s2.CapFromCenterAngle(london.S2Point(), s1.Angle(500000/6371008.8))
	fmt.Printf("Paris within 500 km of London: %v\n", region.ContainsPoint(paris.S2Point()))
}
