package ssdanchors

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// ScaleMin and ScaleMax bound the default box scales across the
	// feature map pyramid
	ScaleMin = 0.2
	ScaleMax = 0.9
)

// aspectRatios are the box aspect ratios generated at every scale
var aspectRatios = []float64{1, 2, 3, 1.0 / 2, 1.0 / 3}

// Anchor is one default box of the detector.  Anchors are immutable once
// generated and are identified by their position in the generated sequence
type Anchor struct {
	// Center is the proportional center of the box
	Center Point
	// Size is the proportional width and height of the box
	Size Size
	// X and Y are the grid column and row the anchor belongs to
	X, Y int
	// Scale is the scale value of the anchor's feature map level
	Scale float64
	// Map is the zero based index of the source feature map
	Map int
}

// Box returns the anchor geometry as a proportional center/size box
func (a Anchor) Box() Box {
	return Box{Center: a.Center, Size: a.Size}
}

// mapScales computes the default box scale for each feature map level,
// linearly interpolated between ScaleMin and ScaleMax.  A single level
// pyramid is pinned to ScaleMin
func mapScales(numMaps int) []float64 {

	if numMaps < 1 {
		return nil
	}

	if numMaps == 1 {
		return []float64{ScaleMin}
	}

	return floats.Span(make([]float64, numMaps), ScaleMin, ScaleMax)
}

// boxSizes computes the proportional (width, height) pairs generated at
// level k of the pyramid.  Every level gets one box per aspect ratio and
// non-last levels get an extra square box at the geometric mean of the
// level's scale and the next level's
func boxSizes(scales []float64, k int) []Size {

	s := scales[k]
	sizes := make([]Size, 0, len(aspectRatios)+1)

	for _, ratio := range aspectRatios {
		root := math.Sqrt(ratio)
		sizes = append(sizes, Size{W: s * root, H: s / root})
	}

	if k < len(scales)-1 {
		sp := math.Sqrt(s * scales[k+1])
		sizes = append(sizes, Size{W: sp, H: sp})
	}

	return sizes
}

// GenerateAnchors computes the full ordered default box list for the given
// preset.  Anchors are emitted level by level, row by row, then column by
// column, with the box shapes of the level in a fixed order within each
// cell.  Downstream code indexes anchors by position so this ordering must
// remain stable
func GenerateAnchors(p Preset) []Anchor {

	scales := mapScales(p.NumMaps)
	anchors := make([]Anchor, 0, p.NumAnchors)

	for k := 0; k < p.NumMaps; k++ {

		sizes := boxSizes(scales, k)
		f := p.MapSizes[k]

		for i := 0; i < f; i++ {
			cy := (float64(i) + 0.5) / float64(f)

			for j := 0; j < f; j++ {
				cx := (float64(j) + 0.5) / float64(f)

				for _, size := range sizes {
					anchors = append(anchors, Anchor{
						Center: Point{X: cx, Y: cy},
						Size:   size,
						X:      j,
						Y:      i,
						Scale:  scales[k],
						Map:    k,
					})
				}
			}
		}
	}

	return anchors
}
