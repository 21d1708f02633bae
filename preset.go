package ssdanchors

import (
	"sort"
)

// Preset defines the fixed geometry of one SSD model flavour.  It carries
// enough information to pre-process datasets without having to build the
// detection network itself
type Preset struct {
	// Name is the key the preset is registered under
	Name string
	// ImageSize is the model input size in absolute pixels
	ImageSize Size
	// NumMaps is the number of feature maps in the pyramid
	NumMaps int
	// MapSizes are the square grid sizes of each feature map, ordered to
	// match the scale progression
	MapSizes []int
	// NumAnchors is the expected total anchor count.  It is a diagnostic
	// for sanity checking only and never an input to generation
	NumAnchors int
}

// presets is the process wide read only registry of SSD flavours
var presets = map[string]Preset{
	"vgg300": {
		Name:       "vgg300",
		ImageSize:  Size{W: 300, H: 300},
		NumMaps:    6,
		MapSizes:   []int{38, 19, 10, 5, 3, 1},
		NumAnchors: 11639,
	},
	"vgg500": {
		Name:       "vgg500",
		ImageSize:  Size{W: 500, H: 500},
		NumMaps:    6,
		MapSizes:   []int{63, 32, 16, 8, 6, 4},
		NumAnchors: 32174,
	},
}

// GetPreset returns the named preset configuration.  A *ConfigError is
// returned when no preset is registered under the given name
func GetPreset(name string) (Preset, error) {

	p, ok := presets[name]

	if !ok {
		return Preset{}, &ConfigError{Preset: name}
	}

	// copy the grid sizes so callers cannot mutate the registry entry
	p.MapSizes = append([]int(nil), p.MapSizes...)

	return p, nil
}

// PresetNames returns the names of all registered presets in sorted order
func PresetNames() []string {

	names := make([]string, 0, len(presets))

	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
