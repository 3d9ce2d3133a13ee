// Package bargeom compiles bar layers: vertical bars on a categorical
// x-axis, anchored at the zero baseline, with optional value labels.
package bargeom

import (
	"math"

	"github.com/plotforge/plotforge/internal/fonts"
	"github.com/plotforge/plotforge/internal/geom"
	"github.com/plotforge/plotforge/internal/geometry"
	"github.com/plotforge/plotforge/internal/primitive"
	"github.com/plotforge/plotforge/internal/scales"
	"github.com/plotforge/plotforge/internal/spec"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

type barGeom struct{}

// New creates the bar geom.
func New() geom.Geom {
	return barGeom{}
}

func init() {
	geom.MustRegister(New())
}

func (barGeom) Name() string { return "bar" }

func (g barGeom) Validate(layer *spec.LayerSpec, data *spec.DataSpec) error {
	return geom.RequireColumns(g.Name(), data,
		geom.ColumnRef{Column: layer.X, Role: "x"},
		geom.ColumnRef{Column: layer.Y, Role: "y"},
	)
}

func (barGeom) ScaleHint(layer *spec.LayerSpec, data *spec.DataSpec) geom.ScaleHint {
	// Bars always include the zero baseline in the y range.
	return geom.ScaleHint{
		XType:       geom.AxisCategorical,
		YType:       geom.AxisNumeric,
		XCategories: geom.CategoryValues(data.Columns[layer.X]),
		YNumeric:    append([]float64{0}, geom.NumericValues(data.Columns[layer.Y])...),
	}
}

func (g barGeom) Compile(layer *spec.LayerSpec, data *spec.DataSpec, sc geom.ResolvedScales,
	theme *spec.ThemeSpec, plotArea geometry.Rect) ([]primitive.Primitive, error) {

	x, ok := sc.X.(*scales.Categorical)
	if !ok {
		return nil, plotforgeerrors.NewTypeMismatchError(g.Name(), "categorical scale", sc.X.Kind())
	}

	categories, values, rows := geom.CategoryValuePairs(data.Columns[layer.X], data.Columns[layer.Y])
	groups := geom.GroupColumn(layer, data)

	var font *fonts.Table
	if layer.Labels {
		var err error
		font, err = fonts.Load(theme.FontName)
		if err != nil {
			return nil, err
		}
	}

	barWidth := x.BandWidth() * (1 - theme.BarPadding)
	baseline := sc.Y.Map(0)

	var primitives []primitive.Primitive
	for i := range categories {
		cx, err := x.Map(categories[i])
		if err != nil {
			return nil, err
		}
		yPx := sc.Y.Map(values[i])

		color := sc.DefaultColor
		group := ""
		if rows[i] < len(groups) {
			group = groups[rows[i]]
			color = sc.Colors.GetOr(group, sc.DefaultColor)
		}

		barTop := math.Min(yPx, baseline)
		barHeight := math.Abs(baseline - yPx)
		primitives = append(primitives, primitive.Bar{
			X:      cx - barWidth/2,
			Y:      barTop,
			Width:  barWidth,
			Height: barHeight,
			Color:  color,
			Group:  group,
		})

		if layer.Labels {
			text := geom.FormatLabel(values[i], layer.LabelFormat)
			fontSize := theme.TickFontSize
			var labelY float64
			var labelColor string
			if geom.LabelFitsInside(text, fontSize, barWidth, barHeight, font) {
				labelY = (barTop+math.Max(yPx, baseline))/2 + fontSize/3
				labelColor = geom.InsideLabelColor(color, theme.TextColor)
			} else {
				labelY = barTop - 5
				labelColor = theme.TextColor
			}
			primitives = append(primitives, primitive.Text{
				Content:  text,
				X:        cx,
				Y:        labelY,
				FontSize: fontSize,
				Color:    labelColor,
				Anchor:   "middle",
			})
		}
	}
	return primitives, nil
}
