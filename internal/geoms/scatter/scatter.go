// Package scattergeom compiles scatter layers: one circle marker per data
// row, colored by the optional group column.
package scattergeom

import (
	"github.com/plotforge/plotforge/internal/geom"
	"github.com/plotforge/plotforge/internal/geometry"
	"github.com/plotforge/plotforge/internal/primitive"
	"github.com/plotforge/plotforge/internal/scales"
	"github.com/plotforge/plotforge/internal/spec"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

type scatterGeom struct{}

// New creates the scatter geom.
func New() geom.Geom {
	return scatterGeom{}
}

func init() {
	geom.MustRegister(New())
}

func (scatterGeom) Name() string { return "scatter" }

func (g scatterGeom) Validate(layer *spec.LayerSpec, data *spec.DataSpec) error {
	return geom.RequireColumns(g.Name(), data,
		geom.ColumnRef{Column: layer.X, Role: "x"},
		geom.ColumnRef{Column: layer.Y, Role: "y"},
	)
}

func (scatterGeom) ScaleHint(layer *spec.LayerSpec, data *spec.DataSpec) geom.ScaleHint {
	return geom.ScaleHint{
		XType:    geom.AxisNumeric,
		YType:    geom.AxisNumeric,
		XNumeric: geom.NumericValues(data.Columns[layer.X]),
		YNumeric: geom.NumericValues(data.Columns[layer.Y]),
	}
}

func (g scatterGeom) Compile(layer *spec.LayerSpec, data *spec.DataSpec, sc geom.ResolvedScales,
	theme *spec.ThemeSpec, plotArea geometry.Rect) ([]primitive.Primitive, error) {

	x, ok := sc.X.(*scales.Linear)
	if !ok {
		return nil, plotforgeerrors.NewTypeMismatchError(g.Name(), "linear scale", sc.X.Kind())
	}

	xs, ys, rows := geom.NumericPairs(data.Columns[layer.X], data.Columns[layer.Y])
	groups := geom.GroupColumn(layer, data)

	primitives := make([]primitive.Primitive, 0, len(xs))
	for i := range xs {
		color := sc.DefaultColor
		group := ""
		if rows[i] < len(groups) {
			group = groups[rows[i]]
			color = sc.Colors.GetOr(group, sc.DefaultColor)
		}
		primitives = append(primitives, primitive.Point{
			X:      x.Map(xs[i]),
			Y:      sc.Y.Map(ys[i]),
			Color:  color,
			Radius: theme.PointRadius,
			Group:  group,
		})
	}
	return primitives, nil
}
