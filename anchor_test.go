package ssdanchors

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestMapScales(t *testing.T) {

	expected := []float64{0.2, 0.34, 0.48, 0.62, 0.76, 0.9}

	got := mapScales(6)

	if !floats.EqualApprox(got, expected, 1e-12) {
		t.Errorf("expected scales %v, got %v", expected, got)
	}

	if got[0] != ScaleMin || got[len(got)-1] != ScaleMax {
		t.Errorf("expected scale endpoints %v and %v, got %v", ScaleMin,
			ScaleMax, got)
	}
}

// a single level pyramid cannot interpolate so its scale is pinned to the
// minimum
func TestMapScalesSingleLevel(t *testing.T) {

	got := mapScales(1)

	if len(got) != 1 || got[0] != ScaleMin {
		t.Errorf("expected single scale %v, got %v", ScaleMin, got)
	}
}

func TestBoxSizes(t *testing.T) {

	scales := mapScales(6)

	// level 0, scale 0.2 with the extra sqrt(0.2*0.34) square
	expected := []Size{
		{W: 0.2, H: 0.2},
		{W: 0.2 * math.Sqrt2, H: 0.2 / math.Sqrt2},
		{W: 0.2 * math.Sqrt(3), H: 0.2 / math.Sqrt(3)},
		{W: 0.2 / math.Sqrt2, H: 0.2 * math.Sqrt2},
		{W: 0.2 / math.Sqrt(3), H: 0.2 * math.Sqrt(3)},
		{W: math.Sqrt(0.2 * 0.34), H: math.Sqrt(0.2 * 0.34)},
	}

	got := boxSizes(scales, 0)

	if len(got) != len(expected) {
		t.Fatalf("expected %d box sizes, got %d", len(expected), len(got))
	}

	for i := range expected {
		if !within(got[i].W, expected[i].W, 1e-12) ||
			!within(got[i].H, expected[i].H, 1e-12) {
			t.Errorf("size %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}

	// the last level has no following scale, so no extra square box
	if last := boxSizes(scales, 5); len(last) != 5 {
		t.Errorf("expected 5 box sizes on the last level, got %d", len(last))
	}
}

func TestGenerateAnchorsOrdering(t *testing.T) {

	p, err := GetPreset("vgg300")

	if err != nil {
		t.Fatal(err)
	}

	anchors := GenerateAnchors(p)

	// first grid cell of the first level, first aspect ratio
	first := anchors[0]

	if first.Map != 0 || first.X != 0 || first.Y != 0 {
		t.Errorf("expected first anchor in cell (0,0) of map 0, got %+v", first)
	}

	if !within(first.Center.X, 0.5/38, 1e-12) || !within(first.Center.Y, 0.5/38, 1e-12) {
		t.Errorf("expected first anchor centered at (0.5/38, 0.5/38), got %+v",
			first.Center)
	}

	if !within(first.Size.W, 0.2, 1e-12) || !within(first.Size.H, 0.2, 1e-12) {
		t.Errorf("expected first anchor sized 0.2x0.2, got %+v", first.Size)
	}

	// sixth anchor of the cell is the extra square between scales
	extra := anchors[5]

	if extra.X != 0 || extra.Y != 0 {
		t.Errorf("expected sixth anchor still in cell (0,0), got %+v", extra)
	}

	sp := math.Sqrt(0.2 * 0.34)

	if !within(extra.Size.W, sp, 1e-12) || !within(extra.Size.H, sp, 1e-12) {
		t.Errorf("expected extra square sized %f, got %+v", sp, extra.Size)
	}

	// the column advances before the row
	next := anchors[6]

	if next.X != 1 || next.Y != 0 {
		t.Errorf("expected seventh anchor in cell (1,0), got (%d,%d)", next.X, next.Y)
	}

	if !within(next.Center.X, 1.5/38, 1e-12) || !within(next.Center.Y, 0.5/38, 1e-12) {
		t.Errorf("expected seventh anchor centered at (1.5/38, 0.5/38), got %+v",
			next.Center)
	}

	// the row advances after a full row of columns
	row1 := anchors[38*6]

	if row1.X != 0 || row1.Y != 1 {
		t.Errorf("expected anchor %d in cell (0,1), got (%d,%d)", 38*6, row1.X, row1.Y)
	}
}

func TestGenerateAnchorsPerLevel(t *testing.T) {

	p, err := GetPreset("vgg300")

	if err != nil {
		t.Fatal(err)
	}

	anchors := GenerateAnchors(p)

	// every level emits 6 boxes per grid cell except the last with 5
	expected := []int{
		38 * 38 * 6,
		19 * 19 * 6,
		10 * 10 * 6,
		5 * 5 * 6,
		3 * 3 * 6,
		1 * 1 * 5,
	}

	counts := make([]int, p.NumMaps)

	for _, a := range anchors {
		counts[a.Map]++
	}

	for k, want := range expected {
		if counts[k] != want {
			t.Errorf("level %d: expected %d anchors, got %d", k, want, counts[k])
		}
	}
}

func TestGenerateAnchorsGeometry(t *testing.T) {

	for _, name := range PresetNames() {
		p, err := GetPreset(name)

		if err != nil {
			t.Fatal(err)
		}

		scales := mapScales(p.NumMaps)

		for i, a := range GenerateAnchors(p) {

			if a.Size.W <= 0 || a.Size.H <= 0 {
				t.Fatalf("%s anchor %d: non-positive size %+v", name, i, a.Size)
			}

			if a.Center.X < 0 || a.Center.X > 1 || a.Center.Y < 0 || a.Center.Y > 1 {
				t.Fatalf("%s anchor %d: center outside [0,1], %+v", name, i, a.Center)
			}

			if a.Map < 0 || a.Map >= p.NumMaps {
				t.Fatalf("%s anchor %d: feature map index %d out of range", name,
					i, a.Map)
			}

			if a.Scale != scales[a.Map] {
				t.Fatalf("%s anchor %d: scale %f does not belong to level %d",
					name, i, a.Scale, a.Map)
			}
		}
	}
}

func TestGenerateAnchorsDeterministic(t *testing.T) {

	p, err := GetPreset("vgg300")

	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(GenerateAnchors(p), GenerateAnchors(p)) {
		t.Error("expected identical anchor sequences across runs")
	}
}

// a grid size of zero contributes no anchors for that level but is not an
// error
func TestGenerateAnchorsZeroGrid(t *testing.T) {

	p := Preset{
		Name:      "degenerate",
		ImageSize: Size{W: 100, H: 100},
		NumMaps:   2,
		MapSizes:  []int{0, 1},
	}

	anchors := GenerateAnchors(p)

	// only the single cell of the last level, which emits 5 shapes
	if len(anchors) != 5 {
		t.Fatalf("expected 5 anchors, got %d", len(anchors))
	}

	for _, a := range anchors {
		if a.Map != 1 {
			t.Errorf("expected all anchors on map 1, got %+v", a)
		}
	}
}

func TestGenerateAnchorsSingleLevel(t *testing.T) {

	p := Preset{
		Name:      "single",
		ImageSize: Size{W: 100, H: 100},
		NumMaps:   1,
		MapSizes:  []int{2},
	}

	anchors := GenerateAnchors(p)

	// 2x2 grid with 5 shapes, no following scale for an extra square
	if len(anchors) != 20 {
		t.Fatalf("expected 20 anchors, got %d", len(anchors))
	}

	for _, a := range anchors {
		if a.Scale != ScaleMin {
			t.Errorf("expected scale pinned to %v, got %f", ScaleMin, a.Scale)
		}
	}
}
