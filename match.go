package ssdanchors

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// matchRef is the reference image size used to bring ground truth boxes
// and anchors into a common absolute coordinate space for overlap
// computation.  The value cancels out of the overlap ratio but it must be
// applied identically to both operands, and it is the size any previously
// trained model had its dataset prepared with
var matchRef = Size{W: 1000, H: 1000}

// Score pairs an anchor index with its jaccard overlap value
type Score struct {
	// Idx is the position of the anchor in the generated anchor sequence
	Idx int
	// Score is the jaccard overlap in [0,1]
	Score float64
}

// Overlap is the result of matching one ground truth box against an anchor
// sequence
type Overlap struct {
	// Best is the highest scoring anchor, nil when no anchor overlaps
	// the box at all
	Best *Score
	// Good holds every anchor whose overlap strictly exceeds the match
	// threshold, in anchor index order
	Good []Score
}

// Match computes the overlap of a ground truth box with every anchor in
// the sequence and returns the single best match along with all matches
// strictly above the given threshold.  An empty anchor sequence is a valid
// input yielding no best match and no good matches
func Match(box Box, anchors []Anchor, threshold float64) (Overlap, error) {

	bparams := box.Abs(matchRef)

	if err := bparams.Validate(); err != nil {
		return Overlap{}, errors.Wrap(err, "match")
	}

	var best *Score
	var good []Score

	for i := range anchors {

		aparams := anchors[i].Box().Abs(matchRef)
		jaccard := JaccardOverlap(bparams, aparams)

		if jaccard == 0 {
			continue
		}

		// a later anchor replaces the best only on a strictly greater
		// score, so the earliest of any tied anchors wins
		if best == nil || best.Score < jaccard {
			best = &Score{Idx: i, Score: jaccard}
		}

		if jaccard > threshold {
			good = append(good, Score{Idx: i, Score: jaccard})
		}
	}

	return Overlap{Best: best, Good: good}, nil
}

// MatchAll matches a batch of ground truth boxes against the same anchor
// sequence.  The anchor slice is only read, so the per box matches run
// concurrently without locks.  Results are returned in input order, one
// per box
func MatchAll(boxes []Box, anchors []Anchor, threshold float64) ([]Overlap, error) {

	results := make([]Overlap, len(boxes))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range boxes {
		i := i

		g.Go(func() error {
			ov, err := Match(boxes[i], anchors, threshold)

			if err != nil {
				return errors.Wrapf(err, "box %d", i)
			}

			results[i] = ov
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
