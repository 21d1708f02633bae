package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jackcc/go-ssdanchors"
	"gocv.io/x/gocv"
)

// boxToRect scales a proportional box to pixel coordinates on an image of
// the given dimensions
func boxToRect(box ssdanchors.Box, cols, rows int) image.Rectangle {

	r := box.Abs(ssdanchors.Size{W: float64(cols), H: float64(rows)})

	return image.Rect(int(r.XMin), int(r.YMin), int(r.XMax), int(r.YMax))
}

// AnchorGrid draws every anchor of the given feature map level onto the
// image, scaled to the image dimensions.  Each level uses its assigned
// color so multiple levels can be drawn on the same image
func AnchorGrid(img *gocv.Mat, anchors []ssdanchors.Anchor, level int,
	lineThickness int) {

	clr := LevelColor(level)

	for _, anchor := range anchors {

		if anchor.Map != level {
			continue
		}

		rect := boxToRect(anchor.Box(), img.Cols(), img.Rows())
		gocv.Rectangle(img, rect, clr, lineThickness)
	}
}

// GroundTruthBox draws a ground truth box onto the image
func GroundTruthBox(img *gocv.Mat, box ssdanchors.Box, clr color.RGBA,
	lineThickness int) {

	gocv.Rectangle(img, boxToRect(box, img.Cols(), img.Rows()), clr, lineThickness)
}

// MatchBoxes draws the anchors of a match result onto the image.  Good
// matches are drawn in their level color with the overlap score as a label
// and the best match is highlighted last so it stays visible
func MatchBoxes(img *gocv.Mat, ov ssdanchors.Overlap, anchors []ssdanchors.Anchor,
	font Font, lineThickness int) {

	for _, score := range ov.Good {

		anchor := anchors[score.Idx]
		rect := boxToRect(anchor.Box(), img.Cols(), img.Rows())

		gocv.Rectangle(img, rect, LevelColor(anchor.Map), lineThickness)

		text := fmt.Sprintf("%.2f", score.Score)
		gocv.PutTextWithParams(img, text, image.Pt(rect.Min.X, rect.Min.Y-2),
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}

	if ov.Best != nil {

		anchor := anchors[ov.Best.Idx]
		rect := boxToRect(anchor.Box(), img.Cols(), img.Rows())

		gocv.Rectangle(img, rect, Green, lineThickness+1)

		text := fmt.Sprintf("best %.2f", ov.Best.Score)
		gocv.PutTextWithParams(img, text, image.Pt(rect.Min.X, rect.Min.Y-2),
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
