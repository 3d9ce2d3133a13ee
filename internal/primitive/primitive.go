// Package primitive defines the renderer-agnostic drawing instructions
// produced by geom compilation, and the compiled plot document that
// collects them.
//
// Primitives form a closed tagged union: renderers switch exhaustively on
// Kind. New geoms compose from the existing primitive kinds and never need
// new ones.
package primitive

import (
	"sort"

	"github.com/plotforge/plotforge/internal/geometry"
	"github.com/plotforge/plotforge/internal/spec"
)

// Kind tags a primitive variant.
type Kind int

// Render order is a fixed z-order by kind: bars at the back, then paths,
// lines, points, and text on top. The declaration order below is the
// z-order.
const (
	KindBar Kind = iota
	KindPath
	KindLine
	KindPoint
	KindText
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindPath:
		return "path"
	case KindLine:
		return "line"
	case KindPoint:
		return "point"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Primitive is the interface shared by all drawing instruction variants.
type Primitive interface {
	Kind() Kind
}

// Point is a positioned circle marker.
type Point struct {
	X      float64
	Y      float64
	Color  string
	Radius float64
	Group  string
}

// Kind implements Primitive.
func (Point) Kind() Kind { return KindPoint }

// Line is a positioned polyline.
type Line struct {
	Points []geometry.Point
	Color  string
	Width  float64
	Group  string
}

// Kind implements Primitive.
func (Line) Kind() Kind { return KindLine }

// Bar is a positioned rectangle.
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
	Group  string
}

// Kind implements Primitive.
func (Bar) Kind() Kind { return KindBar }

// Text is a positioned text element. Y is the text baseline; Anchor is
// "start", "middle", or "end"; Rotation is in degrees about (X, Y).
type Text struct {
	Content  string
	X        float64
	Y        float64
	FontSize float64
	Color    string
	Anchor   string
	Rotation float64
}

// Kind implements Primitive.
func (Text) Kind() Kind { return KindText }

// Path is an arbitrary vector path in SVG path-data syntax. Used for
// freeform geometry beyond rects, circles, and polylines.
type Path struct {
	Data        string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Group       string
}

// Kind implements Primitive.
func (Path) Kind() Kind { return KindPath }

// LegendEntry pairs a group label with its swatch color.
type LegendEntry struct {
	Label string
	Color string
}

// CompiledPlot is the fully positioned output of one compile: canvas size,
// resolved theme, plot rectangle, primitives, ticks, and legend. It is
// created fresh by each compile call and never mutated afterward.
type CompiledPlot struct {
	Width  float64
	Height float64
	Theme  spec.ThemeSpec

	PlotArea geometry.Rect

	// Primitives in insertion order. ZOrdered returns render order.
	Primitives []Primitive

	XTicks []geometry.TickMark
	YTicks []geometry.TickMark

	// XTickLabelPos holds the anchor position of each x-tick label after
	// collision avoidance, parallel to XTicks. Nudged labels keep their
	// tick's horizontal position but may shift vertically.
	XTickLabelPos []geometry.Point

	LegendEntries []LegendEntry
	LegendArea    *geometry.Rect

	ClipID string
}

// Add appends a primitive in insertion order.
func (c *CompiledPlot) Add(p Primitive) {
	c.Primitives = append(c.Primitives, p)
}

// ZOrdered returns the primitives sorted into render order: by kind z-order
// with insertion order preserved within a kind.
func (c *CompiledPlot) ZOrdered() []Primitive {
	out := make([]Primitive, len(c.Primitives))
	copy(out, c.Primitives)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kind() < out[j].Kind()
	})
	return out
}

// ByKind returns the primitives of one kind in insertion order.
func (c *CompiledPlot) ByKind(kind Kind) []Primitive {
	var out []Primitive
	for _, p := range c.Primitives {
		if p.Kind() == kind {
			out = append(out, p)
		}
	}
	return out
}
