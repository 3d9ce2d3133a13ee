// Package waterfallgeom compiles waterfall layers: floating bars that show
// how a series of signed steps accumulates into a total.
//
// The x column holds step labels and the y column holds signed step values.
// The first bar rises from zero; each later bar floats from the running
// total before its step to the running total after. Connector lines link
// the end of each bar to the start of the next. Increases take the first
// palette color and decreases the second.
package waterfallgeom

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

// Fallback fill colors for themes with fewer than two palette entries.
const (
	fallbackIncrease = "#2196F3"
	fallbackDecrease = "#F44336"
)

// Legend group names for the two bar directions.
const (
	groupIncrease = "positive"
	groupDecrease = "negative"
)

type waterfallGeom struct{}

// New creates the waterfall geom.
func New() geom.Geom {
	return waterfallGeom{}
}

func init() {
	geom.MustRegister(New())
}

func (waterfallGeom) Name() string { return "waterfall" }

func (g waterfallGeom) Validate(layer *spec.LayerSpec, data *spec.DataSpec) error {
	return geom.RequireColumns(g.Name(), data,
		geom.ColumnRef{Column: layer.X, Role: "x"},
		geom.ColumnRef{Column: layer.Y, Role: "y"},
	)
}

func (waterfallGeom) ScaleHint(layer *spec.LayerSpec, data *spec.DataSpec) geom.ScaleHint {
	// The y axis must cover every running total, not the raw step values.
	running := 0.0
	endpoints := []float64{0}
	for _, step := range geom.NumericValues(data.Columns[layer.Y]) {
		running += step
		endpoints = append(endpoints, running)
	}
	return geom.ScaleHint{
		XType:       geom.AxisCategorical,
		YType:       geom.AxisNumeric,
		XCategories: geom.CategoryValues(data.Columns[layer.X]),
		YNumeric:    endpoints,
	}
}

func (g waterfallGeom) Compile(layer *spec.LayerSpec, data *spec.DataSpec, sc geom.ResolvedScales,
	theme *spec.ThemeSpec, plotArea geometry.Rect) ([]primitive.Primitive, error) {

	x, ok := sc.X.(*scales.Categorical)
	if !ok {
		return nil, plotforgeerrors.NewTypeMismatchError(g.Name(), "categorical scale", sc.X.Kind())
	}

	categories, steps, _ := geom.CategoryValuePairs(data.Columns[layer.X], data.Columns[layer.Y])

	var font *fonts.Table
	if layer.Labels {
		var err error
		font, err = fonts.Load(theme.FontName)
		if err != nil {
			return nil, err
		}
	}

	barWidth := x.BandWidth() * (1 - theme.BarPadding)

	colorIncrease := fallbackIncrease
	if len(theme.Palette) > 0 {
		colorIncrease = theme.Palette[0]
	}
	colorDecrease := fallbackDecrease
	if len(theme.Palette) > 1 {
		colorDecrease = theme.Palette[1]
	}

	var primitives []primitive.Primitive
	running := 0.0
	for i := range categories {
		step := steps[i]
		base := running
		top := running + step
		running = top

		cx, err := x.Map(categories[i])
		if err != nil {
			return nil, err
		}
		basePx := sc.Y.Map(base)
		topPx := sc.Y.Map(top)

		barY := math.Min(basePx, topPx)
		barHeight := math.Abs(basePx - topPx)

		color := colorIncrease
		group := groupIncrease
		if step < 0 {
			color = colorDecrease
			group = groupDecrease
		}

		primitives = append(primitives, primitive.Bar{
			X:      cx - barWidth/2,
			Y:      barY,
			Width:  barWidth,
			Height: barHeight,
			Color:  color,
			Group:  group,
		})

		if layer.Labels {
			text := geom.FormatLabel(step, layer.LabelFormat)
			fontSize := theme.TickFontSize
			var labelY float64
			var labelColor string
			switch {
			case geom.LabelFitsInside(text, fontSize, barWidth, barHeight, font):
				labelY = barY + barHeight/2 + fontSize/3
				labelColor = geom.InsideLabelColor(color, theme.TextColor)
			case step >= 0:
				labelY = barY - 5
				labelColor = theme.TextColor
			default:
				labelY = barY + barHeight + fontSize + 2
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

		// Connector from this bar's end to the next bar's start.
		if i < len(categories)-1 {
			nextCx, err := x.Map(categories[i+1])
			if err != nil {
				return nil, err
			}
			connectorY := sc.Y.Map(running)
			primitives = append(primitives, primitive.Line{
				Points: []geometry.Point{
					{X: cx + barWidth/2, Y: connectorY},
					{X: nextCx - barWidth/2, Y: connectorY},
				},
				Color: theme.GridColor,
				Width: 1,
			})
		}
	}
	return primitives, nil
}
