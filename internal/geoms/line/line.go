// Package linegeom compiles line layers: connected polylines, one per
// color group in first-seen order, or a single polyline when ungrouped.
package linegeom

import (
	"github.com/plotforge/plotforge/internal/geom"
	"github.com/plotforge/plotforge/internal/geometry"
	"github.com/plotforge/plotforge/internal/primitive"
	"github.com/plotforge/plotforge/internal/scales"
	"github.com/plotforge/plotforge/internal/spec"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

type lineGeom struct{}

// New creates the line geom.
func New() geom.Geom {
	return lineGeom{}
}

func init() {
	geom.MustRegister(New())
}

func (lineGeom) Name() string { return "line" }

func (g lineGeom) Validate(layer *spec.LayerSpec, data *spec.DataSpec) error {
	return geom.RequireColumns(g.Name(), data,
		geom.ColumnRef{Column: layer.X, Role: "x"},
		geom.ColumnRef{Column: layer.Y, Role: "y"},
	)
}

func (lineGeom) ScaleHint(layer *spec.LayerSpec, data *spec.DataSpec) geom.ScaleHint {
	return geom.ScaleHint{
		XType:    geom.AxisNumeric,
		YType:    geom.AxisNumeric,
		XNumeric: geom.NumericValues(data.Columns[layer.X]),
		YNumeric: geom.NumericValues(data.Columns[layer.Y]),
	}
}

func (g lineGeom) Compile(layer *spec.LayerSpec, data *spec.DataSpec, sc geom.ResolvedScales,
	theme *spec.ThemeSpec, plotArea geometry.Rect) ([]primitive.Primitive, error) {

	x, ok := sc.X.(*scales.Linear)
	if !ok {
		return nil, plotforgeerrors.NewTypeMismatchError(g.Name(), "linear scale", sc.X.Kind())
	}

	xs, ys, rows := geom.NumericPairs(data.Columns[layer.X], data.Columns[layer.Y])
	groups := geom.GroupColumn(layer, data)

	if groups == nil {
		points := make([]geometry.Point, 0, len(xs))
		for i := range xs {
			points = append(points, geometry.Point{X: x.Map(xs[i]), Y: sc.Y.Map(ys[i])})
		}
		return []primitive.Primitive{primitive.Line{
			Points: points,
			Color:  sc.DefaultColor,
			Width:  theme.LineWidth,
		}}, nil
	}

	// One polyline per group, groups ordered by first appearance.
	var order []string
	grouped := make(map[string][]geometry.Point)
	for i := range xs {
		group := ""
		if rows[i] < len(groups) {
			group = groups[rows[i]]
		}
		if _, seen := grouped[group]; !seen {
			order = append(order, group)
		}
		grouped[group] = append(grouped[group], geometry.Point{X: x.Map(xs[i]), Y: sc.Y.Map(ys[i])})
	}

	primitives := make([]primitive.Primitive, 0, len(order))
	for _, group := range order {
		primitives = append(primitives, primitive.Line{
			Points: grouped[group],
			Color:  sc.Colors.GetOr(group, sc.DefaultColor),
			Width:  theme.LineWidth,
			Group:  group,
		})
	}
	return primitives, nil
}
