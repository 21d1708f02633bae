package ssdanchors

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate.  Whether the values are proportional fractions
// of the image size in [0,1] or absolute pixels depends on context, the two
// are never mixed within one computation
type Point struct {
	X, Y float64
}

// Size is a 2D extent with the same proportional/absolute duality as Point
type Size struct {
	W, H float64
}

// Box is an axis-aligned box given as a proportional center and size
type Box struct {
	Center Point
	Size   Size
}

// Rect is an axis-aligned box in absolute corner coordinates
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Abs converts the proportional box to absolute corner coordinates against
// the given reference image size
func (b Box) Abs(ref Size) Rect {

	w := b.Size.W * ref.W
	h := b.Size.H * ref.H
	cx := b.Center.X * ref.W
	cy := b.Center.Y * ref.H

	return Rect{
		XMin: cx - w/2,
		XMax: cx + w/2,
		YMin: cy - h/2,
		YMax: cy + h/2,
	}
}

// Prop converts absolute corner coordinates back to a proportional
// center/size box against the given reference image size
func (r Rect) Prop(ref Size) Box {

	return Box{
		Center: Point{
			X: (r.XMin + r.XMax) / 2 / ref.W,
			Y: (r.YMin + r.YMax) / 2 / ref.H,
		},
		Size: Size{
			W: (r.XMax - r.XMin) / ref.W,
			H: (r.YMax - r.YMin) / ref.H,
		},
	}
}

// Width returns the extent of the rectangle on the x axis
func (r Rect) Width() float64 {
	return r.XMax - r.XMin
}

// Height returns the extent of the rectangle on the y axis
func (r Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Validate checks the rectangle is well formed, with each maximum at or
// above its minimum and no NaN coordinates
func (r Rect) Validate() error {

	if math.IsNaN(r.XMin) || math.IsNaN(r.XMax) ||
		math.IsNaN(r.YMin) || math.IsNaN(r.YMax) {
		return &DomainError{
			Op:     "rect",
			Reason: "coordinates contain NaN",
		}
	}

	if r.XMax < r.XMin || r.YMax < r.YMin {
		return &DomainError{
			Op:     "rect",
			Reason: fmt.Sprintf("max below min: %+v", r),
		}
	}

	return nil
}
