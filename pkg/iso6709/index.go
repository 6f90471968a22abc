package iso6709

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// PointIndex provides fast spatial queries over a collection of parsed
// coordinates.
//
// The index supports efficient viewport filtering using an R-tree spatial
// index. Spatial queries are O(log N) with the R-tree, compared to O(N)
// with linear scan.
//
// Example:
//
//	idx, errs := iso6709.IndexStrings([]string{
//	    "+35.50+139.75/",
//	    "N51.50W000.12/",
//	})
//	for _, err := range errs {
//	    log.Println(err)
//	}
//
//	viewport := iso6709.Bounds{MinLon: 130, MaxLon: 145, MinLat: 30, MaxLat: 40}
//	for _, entry := range idx.Query(viewport) {
//	    fmt.Println(entry.Label)
//	}
type PointIndex struct {
	entries []PointEntry
	rtree   *rtreego.Rtree // Spatial index for fast queries
}

// PointEntry is a labeled coordinate stored in a PointIndex.
type PointEntry struct {
	Label      string
	Coordinate *Coordinate
}

// Bounds method for rtreego.Spatial interface.
// Converts the point location to an R-tree rectangle.
func (e PointEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.Coordinate.lon, e.Coordinate.lat}

	// R-tree requires non-zero dimensions; pad the point with a small
	// epsilon (~11 meters at the equator).
	const epsilon = 0.0001
	rect, _ := rtreego.NewRect(point, []float64{epsilon, epsilon})
	return rect
}

// IndexPoints creates an index from already-parsed coordinates.
func IndexPoints(entries []PointEntry) *PointIndex {
	// Create R-tree (2D, min=25 children, max=50 children)
	rtree := rtreego.NewTree(2, 25, 50)
	for _, entry := range entries {
		rtree.Insert(entry)
	}

	return &PointIndex{
		entries: entries,
		rtree:   rtree,
	}
}

// IndexStrings parses a batch of ISO 6709 strings and indexes the results.
//
// Each entry is labeled with its input string. Inputs that fail to parse
// are skipped and their errors collected; the index is built from whatever
// parsed successfully.
func IndexStrings(inputs []string) (*PointIndex, []error) {
	var errs []error
	entries := make([]PointEntry, 0, len(inputs))
	p := NewParser()
	for _, input := range inputs {
		coord, err := p.Parse(input)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, PointEntry{Label: input, Coordinate: coord})
	}
	return IndexPoints(entries), errs
}

// Query returns entries inside the given bounds, sorted by label.
//
// Uses the R-tree spatial index for efficient O(log N) queries instead of
// O(N) linear scan. A viewport with zero width or height is answered with
// an exact scan.
func (idx *PointIndex) Query(bounds Bounds) []PointEntry {
	var result []PointEntry

	linear := idx.rtree == nil
	if !linear {
		point := rtreego.Point{bounds.MinLon, bounds.MinLat}
		lengths := []float64{
			bounds.MaxLon - bounds.MinLon,
			bounds.MaxLat - bounds.MinLat,
		}
		queryRect, err := rtreego.NewRect(point, lengths)
		if err != nil {
			// A degenerate viewport cannot form an R-tree rectangle, but
			// points exactly on its edge still match; scan instead.
			linear = true
		} else {
			spatials := idx.rtree.SearchIntersect(queryRect)
			for _, spatial := range spatials {
				entry := spatial.(PointEntry)

				// Entry rectangles carry epsilon padding, so confirm exact
				// containment before including the point.
				if !bounds.ContainsCoordinate(entry.Coordinate) {
					continue
				}
				result = append(result, entry)
			}
		}
	}

	if linear {
		for _, entry := range idx.entries {
			if !bounds.ContainsCoordinate(entry.Coordinate) {
				continue
			}
			result = append(result, entry)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Label < result[j].Label
	})

	return result
}

// Nearest returns the entry closest to the given location, or false when
// the index is empty.
func (idx *PointIndex) Nearest(lat, lon float64) (PointEntry, bool) {
	if idx.rtree == nil || len(idx.entries) == 0 {
		return PointEntry{}, false
	}
	spatial := idx.rtree.NearestNeighbor(rtreego.Point{lon, lat})
	if spatial == nil {
		return PointEntry{}, false
	}
	return spatial.(PointEntry), true
}

// Len returns the number of entries in the index.
func (idx *PointIndex) Len() int {
	return len(idx.entries)
}

// Bounds returns the union of all entry locations in the index.
func (idx *PointIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}

	coords := make([]*Coordinate, len(idx.entries))
	for i, entry := range idx.entries {
		coords[i] = entry.Coordinate
	}
	return BoundsOf(coords...)
}

// All returns all entries in the index.
func (idx *PointIndex) All() []PointEntry {
	return idx.entries
}
