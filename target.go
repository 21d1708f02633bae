package ssdanchors

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Target (dx, dy, dw, dh) represents the 1x4 regression vector locating a
// ground truth box relative to one anchor
type Target [4]float64

// EncodeTarget computes the regression target of a ground truth box
// relative to the given anchor.  The box must have strictly positive width
// and height for the log scale terms to be defined; a *DomainError is
// returned otherwise
func EncodeTarget(box Box, anchor Anchor) (Target, error) {

	if box.Size.W <= 0 || box.Size.H <= 0 {
		return Target{}, &DomainError{
			Op: "encode target",
			Reason: fmt.Sprintf("box size must be positive, got %gx%g",
				box.Size.W, box.Size.H),
		}
	}

	return Target{
		(box.Center.X - anchor.Center.X) / anchor.Size.W,
		(box.Center.Y - anchor.Center.Y) / anchor.Size.H,
		math.Log(box.Size.W / anchor.Size.W),
		math.Log(box.Size.H / anchor.Size.H),
	}, nil
}

// DecodeTarget is the inverse of EncodeTarget, mapping a regression vector
// back to the proportional box it locates relative to the given anchor
func DecodeTarget(t Target, anchor Anchor) Box {

	return Box{
		Center: Point{
			X: anchor.Center.X + t[0]*anchor.Size.W,
			Y: anchor.Center.Y + t[1]*anchor.Size.H,
		},
		Size: Size{
			W: anchor.Size.W * math.Exp(t[2]),
			H: anchor.Size.H * math.Exp(t[3]),
		},
	}
}

// EncodeTargetBatch encodes each (box, anchor index) pair into one row of
// an n x 4 matrix for consumption by training pipelines.  The two input
// slices must have equal length and every index must refer into the anchor
// sequence.  A nil matrix is returned for an empty batch
func EncodeTargetBatch(boxes []Box, anchorIdx []int, anchors []Anchor) (*mat.Dense, error) {

	if len(boxes) != len(anchorIdx) {
		return nil, &DomainError{
			Op: "encode target batch",
			Reason: fmt.Sprintf("got %d boxes for %d anchor indices",
				len(boxes), len(anchorIdx)),
		}
	}

	if len(boxes) == 0 {
		return nil, nil
	}

	out := mat.NewDense(len(boxes), 4, nil)

	for i, box := range boxes {

		idx := anchorIdx[i]

		if idx < 0 || idx >= len(anchors) {
			return nil, &DomainError{
				Op: "encode target batch",
				Reason: fmt.Sprintf("anchor index %d outside sequence of %d",
					idx, len(anchors)),
			}
		}

		t, err := EncodeTarget(box, anchors[idx])

		if err != nil {
			return nil, errors.Wrapf(err, "pair %d", i)
		}

		out.SetRow(i, t[:])
	}

	return out, nil
}
