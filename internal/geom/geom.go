// Package geom defines the contract between the compiler and plot
// geometries, and the process-wide geom registry.
//
// Every plot type (scatter, line, bar, waterfall, ...) is a Geom: a pure,
// deterministic translation of data plus intent into positioned primitives.
// The compiler collects scale hints from all layers, resolves unified
// scales, then dispatches compilation back to each geom. Geom packages
// self-register from init, so importing a geom package is enough to make
// its name resolvable.
package geom

import (
	"github.com/plotforge/plotforge/internal/colors"
	"github.com/plotforge/plotforge/internal/geometry"
	"github.com/plotforge/plotforge/internal/primitive"
	"github.com/plotforge/plotforge/internal/scales"
	"github.com/plotforge/plotforge/internal/spec"
)

// Axis type names used in ScaleHint.
const (
	AxisNumeric     = "numeric"
	AxisCategorical = "categorical"
)

// ScaleHint is what one layer contributes to scale computation. The
// compiler merges hints across layers before any geom compiles: numeric
// values extend the shared axis range, categories extend the shared
// category union.
type ScaleHint struct {
	XType       string
	YType       string
	XNumeric    []float64
	YNumeric    []float64
	XCategories []string
}

// ResolvedScales carries the compiler's unified scales into Compile. X is
// either *scales.Linear or *scales.Categorical; bar-like geoms type-assert
// and reject the wrong kind. Colors maps group names from the layer's color
// column; DefaultColor is used for ungrouped layers.
type ResolvedScales struct {
	X            scales.Scale
	Y            *scales.Linear
	Colors       *colors.ColorMap
	DefaultColor string
}

// Geom is a plot geometry. Implementations must be stateless: every method
// derives its output from the arguments alone, so one registered instance
// serves all compiles concurrently.
type Geom interface {
	// Name returns the registry key, e.g. "scatter".
	Name() string

	// Validate checks that the data has the columns the layer references.
	// It runs before scale resolution so missing columns surface as
	// MissingColumnError rather than as empty plots.
	Validate(layer *spec.LayerSpec, data *spec.DataSpec) error

	// ScaleHint declares the layer's axis types and contributes data
	// ranges. Cells that cannot be read as numbers are skipped here; the
	// hint only has to bound the axis.
	ScaleHint(layer *spec.LayerSpec, data *spec.DataSpec) ScaleHint

	// Compile transforms the layer's data into positioned primitives using
	// the unified scales.
	Compile(layer *spec.LayerSpec, data *spec.DataSpec, sc ResolvedScales,
		theme *spec.ThemeSpec, plotArea geometry.Rect) ([]primitive.Primitive, error)
}
