/*
Example code showing how to generate the default box grid for an SSD preset
and render one pyramid level for visual inspection
*/
package main

import (
	"flag"
	"log"

	"github.com/jackcc/go-ssdanchors"
	"github.com/jackcc/go-ssdanchors/render"
	"gocv.io/x/gocv"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	presetName := flag.String("p", "vgg300", "SSD preset name [vgg300|vgg500]")
	level := flag.Int("l", 2, "Feature map level to render")
	saveFile := flag.String("o", "anchor-grid-out.jpg", "Output image file")
	flag.Parse()

	preset, err := ssdanchors.GetPreset(*presetName)

	if err != nil {
		log.Fatal("Error getting preset: ", err)
	}

	anchors := ssdanchors.GenerateAnchors(preset)

	log.Printf("preset %s: %d anchors over %d feature maps", preset.Name,
		len(anchors), preset.NumMaps)

	if *level < 0 || *level >= preset.NumMaps {
		log.Fatalf("Level must be in range 0-%d", preset.NumMaps-1)
	}

	// render at twice the model input size so fine grids stay legible
	width := int(preset.ImageSize.W) * 2
	height := int(preset.ImageSize.H) * 2

	img := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	defer img.Close()

	render.AnchorGrid(&img, anchors, *level, 1)

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Fatal("Error writing image to: ", *saveFile)
	}

	log.Printf("rendered level %d to %s", *level, *saveFile)
	log.Println("done")
}
