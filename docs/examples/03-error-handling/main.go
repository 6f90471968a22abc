package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/TimLikesTacos/iso6709parse/pkg/iso6709"
)

// describeError reports what went wrong with a parse attempt.
func describeError(input string, err error) {
	var rangeErr *iso6709.ErrRange
	if errors.As(err, &rangeErr) {
		fmt.Printf("%-24s out of range: %s %s is %g (limit %g)\n",
			input, rangeErr.Axis, rangeErr.Field, rangeErr.Value, rangeErr.Limit)
		return
	}

	var suffixErr *iso6709.ErrUnterminatedSuffix
	if errors.As(err, &suffixErr) {
		fmt.Printf("%-24s bad %s suffix: %s\n", input, suffixErr.Segment, suffixErr.Reason)
		return
	}

	var noMatch *iso6709.ErrNoFormatMatched
	if errors.As(err, &noMatch) {
		fmt.Printf("%-24s not a coordinate\n", input)
		return
	}

	log.Printf("unexpected error for %q: %v", input, err)
}

func main() {
	inputs := []string{
		"+35.50-170.10/",              // valid
		"N91.00E010.00/",              // latitude beyond the pole
		"+4560-07000/",                // sixty minutes
		"+35.50+139.75+2122CRSWGS_85", // CRS without terminator
		"+35.50+139.75+",              // altitude sign without a value
		"garbage",                     // not a coordinate at all
		"+1200.00",                    // longitude missing
	}

	for _, input := range inputs {
		coord, err := iso6709.Parse(input)
		if err != nil {
			describeError(input, err)
			continue
		}
		fmt.Printf("%-24s ok: %.4f, %.4f\n", input, coord.Latitude(), coord.Longitude())
	}
}
