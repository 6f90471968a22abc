package main

import (
	"fmt"
	"log"

	"github.com/TimLikesTacos/iso6709parse/pkg/iso6709"
)

func main() {
	// Index a batch of coordinate strings, tolerating bad entries
	idx, errs := iso6709.IndexStrings([]string{
		"+35.6762+139.6503/", // Tokyo
		"+51.5074-000.1278/", // London
		"-33.8688+151.2093/", // Sydney
		"+40.7128-074.0060/", // New York
		"+48.8566+002.3522/", // Paris
		"not-a-coordinate",
	})
	for _, err := range errs {
		log.Printf("skipped: %v", err)
	}
	fmt.Printf("Indexed %d points\n", idx.Len())

	// Query a viewport over western Europe
	viewport := iso6709.Bounds{
		MinLon: -10, MaxLon: 10,
		MinLat: 40, MaxLat: 60,
	}
	fmt.Println("In viewport:")
	for _, entry := range idx.Query(viewport) {
		fmt.Printf("  %s (%.4f, %.4f)\n",
			entry.Label, entry.Coordinate.Latitude(), entry.Coordinate.Longitude())
	}

	// Find the closest indexed point to a location
	if nearest, ok := idx.Nearest(35.0, 140.0); ok {
		fmt.Printf("Nearest to (35, 140): %s\n", nearest.Label)
	}

	// Overall coverage of the index
	bounds := idx.Bounds()
	fmt.Printf("Coverage: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinLon, bounds.MinLat,
		bounds.MaxLon, bounds.MaxLat)
}
