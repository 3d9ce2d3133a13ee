package layout

import (
	"github.com/plotforge/plotforge/internal/fonts"
	"github.com/plotforge/plotforge/internal/geometry"
)

// TextLabel is a positioned text label participating in collision
// avoidance. Its bounding box is derived from font metrics.
type TextLabel struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Font     *fonts.Table
	Anchor   string
}

// BBox returns the label's axis-aligned bounding box.
func (l TextLabel) BBox() geometry.Rect {
	return l.Font.TextBBox(l.Text, l.FontSize, l.X, l.Y, l.Anchor)
}

// Collision avoidance parameters.
const (
	DefaultMaxIterations = 50
	DefaultNudgeStep     = 2.0
)

// AvoidCollisions nudges overlapping labels apart vertically, ggrepel
// style. For every intersecting pair the label with the smaller y moves up
// and the other moves down, by nudgeStep each; ties keep original index
// order, so the pass is fully deterministic. Iteration stops early once a
// full pass finds no intersections. The input slice is not modified.
//
// The pairwise scan is O(n² × maxIterations), which is fine for the tens
// of labels an axis carries.
func AvoidCollisions(labels []TextLabel, maxIterations int, nudgeStep float64) []TextLabel {
	result := make([]TextLabel, len(labels))
	copy(result, labels)
	if len(result) <= 1 {
		return result
	}

	for iter := 0; iter < maxIterations; iter++ {
		anyOverlap := false
		for i := 0; i < len(result); i++ {
			for j := i + 1; j < len(result); j++ {
				if !result[i].BBox().Intersects(result[j].BBox()) {
					continue
				}
				anyOverlap = true
				if result[i].Y <= result[j].Y {
					result[i].Y -= nudgeStep
					result[j].Y += nudgeStep
				} else {
					result[i].Y += nudgeStep
					result[j].Y -= nudgeStep
				}
			}
		}
		if !anyOverlap {
			break
		}
	}
	return result
}

// CountIntersections returns the number of unordered label pairs whose
// bounding boxes intersect.
func CountIntersections(labels []TextLabel) int {
	count := 0
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			if labels[i].BBox().Intersects(labels[j].BBox()) {
				count++
			}
		}
	}
	return count
}
