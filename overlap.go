package ssdanchors

import (
	"math"
)

// JaccardOverlap computes the intersection over union of two axis-aligned
// rectangles given in the same absolute coordinate space.  Rectangles that
// only touch at an edge or corner have zero overlap, as do rectangles with
// zero area
func JaccardOverlap(a, b Rect) float64 {

	// strict non-overlap on either axis
	if b.XMax <= a.XMin || a.XMax <= b.XMin {
		return 0
	}
	if b.YMax <= a.YMin || a.YMax <= b.YMin {
		return 0
	}

	xmin := math.Max(a.XMin, b.XMin)
	xmax := math.Min(a.XMax, b.XMax)
	ymin := math.Max(a.YMin, b.YMin)
	ymax := math.Min(a.YMax, b.YMax)

	intersection := (xmax - xmin) * (ymax - ymin)
	union := a.Area() + b.Area() - intersection

	return intersection / union
}
