/*
Example code showing how to match a ground truth box against the anchors of
an SSD preset and encode the regression target of the best match
*/
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/jackcc/go-ssdanchors"
	"github.com/jackcc/go-ssdanchors/render"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	presetName := flag.String("p", "vgg300", "SSD preset name [vgg300|vgg500]")
	centerX := flag.Float64("x", 0.5, "Ground truth box center x, proportional")
	centerY := flag.Float64("y", 0.5, "Ground truth box center y, proportional")
	width := flag.Float64("w", 0.2, "Ground truth box width, proportional")
	height := flag.Float64("t", 0.2, "Ground truth box height, proportional")
	threshold := flag.Float64("j", 0.5, "Jaccard overlap threshold for good matches")
	saveFile := flag.String("o", "match-out.png", "Output image file")
	flag.Parse()

	preset, err := ssdanchors.GetPreset(*presetName)

	if err != nil {
		log.Fatal("Error getting preset: ", err)
	}

	anchors := ssdanchors.GenerateAnchors(preset)

	box := ssdanchors.Box{
		Center: ssdanchors.Point{X: *centerX, Y: *centerY},
		Size:   ssdanchors.Size{W: *width, H: *height},
	}

	overlap, err := ssdanchors.Match(box, anchors, *threshold)

	if err != nil {
		log.Fatal("Error matching box: ", err)
	}

	if overlap.Best == nil {
		log.Fatal("No anchor overlaps the given box")
	}

	log.Printf("best match: anchor %d on map %d with overlap %f",
		overlap.Best.Idx, anchors[overlap.Best.Idx].Map, overlap.Best.Score)
	log.Printf("%d anchors above threshold %.2f", len(overlap.Good), *threshold)

	target, err := ssdanchors.EncodeTarget(box, anchors[overlap.Best.Idx])

	if err != nil {
		log.Fatal("Error encoding target: ", err)
	}

	log.Printf("regression target: dx=%f dy=%f dw=%f dh=%f",
		target[0], target[1], target[2], target[3])

	// render the match result for visual inspection
	img := render.MatchImage(box, overlap, anchors,
		int(preset.ImageSize.W)*2, int(preset.ImageSize.H)*2)

	f, err := os.Create(*saveFile)

	if err != nil {
		log.Fatal("Error creating file: ", err)
	}

	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatal("Error encoding image: ", err)
	}

	log.Printf("rendered match result to %s", *saveFile)
	log.Println("done")
}
