package render

import "image/color"

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 72, G: 249, B: 10, A: 255}
	Red   = color.RGBA{R: 255, G: 56, B: 56, A: 255}

	// levelColors assigns a distinct color to each feature map level so
	// anchor grids from different pyramid levels can be told apart
	levelColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},  // #FF3838
		{R: 255, G: 178, B: 29, A: 255}, // #FFB21D
		{R: 72, G: 249, B: 10, A: 255},  // #48F90A
		{R: 0, G: 194, B: 255, A: 255},  // #00C2FF
		{R: 132, G: 56, B: 255, A: 255}, // #8438FF
		{R: 255, G: 55, B: 199, A: 255}, // #FF37C7
	}
)

// LevelColor returns the drawing color assigned to the given feature map
// level
func LevelColor(level int) color.RGBA {
	return levelColors[level%len(levelColors)]
}
