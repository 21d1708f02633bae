package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/jackcc/go-ssdanchors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawRectOutline draws the one pixel outline of a rectangle clipped to the
// image bounds
func drawRectOutline(img *image.RGBA, rect image.Rectangle, clr color.RGBA) {

	rect = rect.Intersect(img.Bounds())

	if rect.Empty() {
		return
	}

	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetRGBA(x, rect.Min.Y, clr)
		img.SetRGBA(x, rect.Max.Y-1, clr)
	}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.SetRGBA(rect.Min.X, y, clr)
		img.SetRGBA(rect.Max.X-1, y, clr)
	}
}

// drawLabel renders a small text label at the given baseline position
func drawLabel(img *image.RGBA, x, y int, clr color.RGBA, text string) {

	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}

	dr.DrawString(text)
}

// AnchorGridImage renders the anchor grid of one pyramid level into a new
// RGBA image of the given dimensions.  It is the pure Go alternative to
// AnchorGrid for callers without OpenCV available
func AnchorGridImage(anchors []ssdanchors.Anchor, level, width, height int) *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Black), image.Point{}, draw.Src)

	clr := LevelColor(level)

	for _, anchor := range anchors {

		if anchor.Map != level {
			continue
		}

		drawRectOutline(img, boxToRect(anchor.Box(), width, height), clr)
	}

	return img
}

// MatchImage renders a ground truth box and its match result into a new
// RGBA image of the given dimensions, good matches labelled with their
// overlap score and the best match drawn in green
func MatchImage(box ssdanchors.Box, ov ssdanchors.Overlap,
	anchors []ssdanchors.Anchor, width, height int) *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Black), image.Point{}, draw.Src)

	drawRectOutline(img, boxToRect(box, width, height), White)

	for _, score := range ov.Good {

		anchor := anchors[score.Idx]
		rect := boxToRect(anchor.Box(), width, height)

		drawRectOutline(img, rect, LevelColor(anchor.Map))
		drawLabel(img, rect.Min.X, rect.Min.Y-2, White,
			fmt.Sprintf("%.2f", score.Score))
	}

	if ov.Best != nil {

		anchor := anchors[ov.Best.Idx]
		rect := boxToRect(anchor.Box(), width, height)

		drawRectOutline(img, rect, Green)
		drawLabel(img, rect.Min.X, rect.Min.Y-2, Green,
			fmt.Sprintf("best %.2f", ov.Best.Score))
	}

	return img
}
