// Package compiler orchestrates the compilation pipeline that turns a
// declarative plot spec into positioned geometry: theme resolution, the
// accessibility gate, color assignment, layout, scale unification, geom
// dispatch, legend assembly, and tick-label collision avoidance.
package compiler

import (
	"strings"

	"github.com/plotforge/plotforge/internal/accessibility"
	"github.com/plotforge/plotforge/internal/colors"
	"github.com/plotforge/plotforge/internal/fonts"
	"github.com/plotforge/plotforge/internal/geom"
	"github.com/plotforge/plotforge/internal/geometry"
	"github.com/plotforge/plotforge/internal/layout"
	"github.com/plotforge/plotforge/internal/logger"
	"github.com/plotforge/plotforge/internal/primitive"
	"github.com/plotforge/plotforge/internal/scales"
	"github.com/plotforge/plotforge/internal/spec"
	"github.com/plotforge/plotforge/internal/ticks"
)

// scalePad is the fraction of the tick span padded onto each end of a
// numeric axis, so extremal markers are not clipped at the plot edge.
const scalePad = 0.03

// xTickLabelOffset is the default vertical distance from the plot-area
// bottom to an x-tick label baseline.
const xTickLabelOffset = 15.0

// Compiler compiles plot specs. The zero value works; New attaches an
// optional logger for stage tracing.
type Compiler struct {
	log *logger.Logger
}

// New creates a Compiler. log may be nil.
func New(log *logger.Logger) *Compiler {
	return &Compiler{log: log}
}

// Compile runs the full pipeline on a spec with no logging attached.
func Compile(s *spec.PlotSpec) (*primitive.CompiledPlot, error) {
	return New(nil).Compile(s)
}

// layerPlan pairs a layer with its resolved geom and scale hint.
type layerPlan struct {
	layer *spec.LayerSpec
	geom  geom.Geom
	hint  geom.ScaleHint
}

// Compile turns a validated spec into a CompiledPlot. Every failure mode
// is a typed error: unknown themes or geoms, missing columns, and WCAG
// contrast violations all abort compilation.
func (c *Compiler) Compile(s *spec.PlotSpec) (*primitive.CompiledPlot, error) {
	theme, err := spec.ResolveTheme(s.Theme)
	if err != nil {
		return nil, err
	}
	log := c.log.WithFields(map[string]any{"theme": s.Theme})
	log.Debug("theme resolved")

	// Accessibility gate. Structural: no output can exist for a theme that
	// fails, and there is no bypass flag.
	if err := accessibility.ValidateTheme(
		theme.TextColor, theme.BackgroundColor, theme.Palette,
		theme.TitleFontSize, theme.LabelFontSize, theme.TickFontSize); err != nil {
		return nil, err
	}

	colorMap, err := c.assignColors(s, &theme)
	if err != nil {
		return nil, err
	}
	hasLegend := s.Legend.Show && colorMap.Len() > 0

	plans, err := c.planLayers(s)
	if err != nil {
		return nil, err
	}

	lay := layout.Compute(layout.Input{
		CanvasWidth:  s.Size.Width,
		CanvasHeight: s.Size.Height,
		Margins: layout.Margins{
			Top:    theme.Margins.Top,
			Right:  theme.Margins.Right,
			Bottom: theme.Margins.Bottom,
			Left:   theme.Margins.Left,
		},
		HasTitle:         s.Labels.Title != "",
		HasSubtitle:      s.Labels.Subtitle != "",
		HasXLabel:        s.Labels.X != "",
		HasYLabel:        s.Labels.Y != "",
		HasFootnote:      s.Labels.Footnote != "",
		HasLegend:        hasLegend,
		LegendPosition:   s.Legend.Position,
		TitleAlign:       theme.TitleAlign,
		YLabelPosition:   theme.YLabelPosition,
		TitleFontSize:    theme.TitleFontSize,
		SubtitleFontSize: theme.SubtitleFontSize,
		SubtitleLines:    strings.Count(s.Labels.Subtitle, "\n") + 1,
		LabelFontSize:    theme.LabelFontSize,
		FootnoteFontSize: theme.FootnoteFontSize,
	})

	compiled := &primitive.CompiledPlot{
		Width:      s.Size.Width,
		Height:     s.Size.Height,
		Theme:      theme,
		PlotArea:   lay.PlotArea,
		LegendArea: lay.LegendArea,
		ClipID:     "plot-area",
	}

	c.addAnnotations(compiled, s, &theme, lay)

	xScale, yScale, err := c.resolveScales(compiled, plans, lay.PlotArea)
	if err != nil {
		return nil, err
	}

	defaultColor := colors.DefaultPalette[0]
	if len(theme.Palette) > 0 {
		defaultColor = theme.Palette[0]
	}
	resolved := geom.ResolvedScales{
		X:            xScale,
		Y:            yScale,
		Colors:       colorMap,
		DefaultColor: defaultColor,
	}

	for _, plan := range plans {
		prims, err := plan.geom.Compile(plan.layer, &s.Data, resolved, &theme, lay.PlotArea)
		if err != nil {
			return nil, err
		}
		for _, p := range prims {
			compiled.Add(p)
		}
		log.WithFields(map[string]any{
			"geom":       plan.geom.Name(),
			"primitives": len(prims),
		}).Debug("layer compiled")
	}

	if hasLegend {
		for _, entry := range colorMap.Entries() {
			compiled.LegendEntries = append(compiled.LegendEntries, primitive.LegendEntry{
				Label: entry.Group,
				Color: entry.Color,
			})
		}
	}

	if err := c.spreadTickLabels(compiled, &theme); err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{"primitives": len(compiled.Primitives)}).Debug("compile finished")
	return compiled, nil
}

// assignColors builds the group-to-color mapping: palette colors in
// first-seen group order across all layers, then explicit colorMap
// overrides, each override passing the same contrast gate as the palette.
func (c *Compiler) assignColors(s *spec.PlotSpec, theme *spec.ThemeSpec) (*colors.ColorMap, error) {
	colorMap := colors.NewColorMap()
	for i := range s.Layers {
		layer := &s.Layers[i]
		if layer.Color == "" {
			continue
		}
		column, ok := s.Data.Columns[layer.Color]
		if !ok {
			continue
		}
		for _, group := range geom.CategoryValues(column) {
			if _, seen := colorMap.Get(group); seen {
				continue
			}
			colorMap.Set(group, paletteColor(theme.Palette, colorMap.Len()))
		}
	}

	for i := range s.Layers {
		overrides := s.Layers[i].ColorMap
		if len(overrides) == 0 {
			continue
		}
		if err := accessibility.CheckColorOverrides(overrides, theme.BackgroundColor); err != nil {
			return nil, err
		}
		// Overrides recolor groups that exist in the data; stray keys are
		// ignored rather than invented as phantom legend entries.
		for _, entry := range colorMap.Entries() {
			if color, ok := overrides[entry.Group]; ok {
				colorMap.Set(entry.Group, color)
			}
		}
	}
	return colorMap, nil
}

func paletteColor(palette []string, index int) string {
	if len(palette) == 0 {
		palette = colors.DefaultPalette
	}
	return palette[index%len(palette)]
}

// planLayers resolves each layer's geom, validates its columns, and
// collects its scale hint. When the spec carries no data the layers
// contribute nothing, but their geom names must still resolve so an
// unknown geom fails the same way regardless of data.
func (c *Compiler) planLayers(s *spec.PlotSpec) ([]layerPlan, error) {
	empty := len(s.Data.Columns) == 0
	plans := make([]layerPlan, 0, len(s.Layers))
	for i := range s.Layers {
		layer := &s.Layers[i]
		g, err := geom.Get(layer.Geom)
		if err != nil {
			return nil, err
		}
		if empty {
			continue
		}
		if err := g.Validate(layer, &s.Data); err != nil {
			return nil, err
		}
		plans = append(plans, layerPlan{layer: layer, geom: g, hint: g.ScaleHint(layer, &s.Data)})
	}
	if empty {
		return nil, nil
	}
	return plans, nil
}

// addAnnotations emits the title, subtitle, axis labels, and footnote as
// text primitives at their layout positions.
func (c *Compiler) addAnnotations(compiled *primitive.CompiledPlot, s *spec.PlotSpec,
	theme *spec.ThemeSpec, lay layout.Result) {

	titleAnchor := "middle"
	switch theme.TitleAlign {
	case "left":
		titleAnchor = "start"
	case "right":
		titleAnchor = "end"
	}

	if lay.TitlePos != nil {
		compiled.Add(primitive.Text{
			Content:  s.Labels.Title,
			X:        lay.TitlePos.X,
			Y:        lay.TitlePos.Y,
			FontSize: theme.TitleFontSize,
			Color:    theme.TextColor,
			Anchor:   titleAnchor,
		})
	}

	if lay.SubtitlePos != nil {
		lineHeight := theme.SubtitleFontSize * 1.3
		for i, line := range strings.Split(s.Labels.Subtitle, "\n") {
			compiled.Add(primitive.Text{
				Content:  line,
				X:        lay.SubtitlePos.X,
				Y:        lay.SubtitlePos.Y + float64(i)*lineHeight,
				FontSize: theme.SubtitleFontSize,
				Color:    theme.TextColor,
				Anchor:   titleAnchor,
			})
		}
	}

	if lay.XLabelPos != nil {
		compiled.Add(primitive.Text{
			Content:  s.Labels.X,
			X:        lay.XLabelPos.X,
			Y:        lay.XLabelPos.Y,
			FontSize: theme.LabelFontSize,
			Color:    theme.TextColor,
			Anchor:   "middle",
		})
	}

	if lay.YLabelPos != nil {
		text := primitive.Text{
			Content:  s.Labels.Y,
			X:        lay.YLabelPos.X,
			Y:        lay.YLabelPos.Y,
			FontSize: theme.LabelFontSize,
			Color:    theme.TextColor,
		}
		if theme.YLabelPosition == "top" {
			text.Anchor = "start"
		} else {
			text.Anchor = "middle"
			text.Rotation = -90
		}
		compiled.Add(text)
	}

	if lay.FootnotePos != nil {
		compiled.Add(primitive.Text{
			Content:  s.Labels.Footnote,
			X:        lay.FootnotePos.X,
			Y:        lay.FootnotePos.Y,
			FontSize: theme.FootnoteFontSize,
			Color:    theme.TextColor,
			Anchor:   "start",
		})
	}
}

// resolveScales merges the layer hints into unified axis scales and fills
// in the tick marks. The x axis is categorical as soon as any layer asks
// for categories; the y axis is always numeric and pixel-inverted.
func (c *Compiler) resolveScales(compiled *primitive.CompiledPlot, plans []layerPlan,
	plotArea geometry.Rect) (scales.Scale, *scales.Linear, error) {

	var xNumeric, yNumeric []float64
	var categories []string
	xCategorical := false
	for _, plan := range plans {
		if plan.hint.XType == geom.AxisCategorical {
			xCategorical = true
			categories = append(categories, plan.hint.XCategories...)
		} else {
			xNumeric = append(xNumeric, plan.hint.XNumeric...)
		}
		yNumeric = append(yNumeric, plan.hint.YNumeric...)
	}

	var xScale scales.Scale
	switch {
	case xCategorical:
		unique := dedupe(categories)
		cat := scales.NewCategorical(unique, plotArea.X, plotArea.Right())
		for i, category := range unique {
			pos, err := cat.Map(category)
			if err != nil {
				return nil, nil, err
			}
			compiled.XTicks = append(compiled.XTicks, geometry.TickMark{
				Value:    float64(i),
				Label:    category,
				PixelPos: pos,
			})
		}
		xScale = cat
	case len(xNumeric) > 0:
		tickVals := ticks.NiceTicks(minOf(xNumeric), maxOf(xNumeric), ticks.DefaultMaxTicks)
		pad := (tickVals[len(tickVals)-1] - tickVals[0]) * scalePad
		linear := &scales.Linear{
			DataMin:  tickVals[0] - pad,
			DataMax:  tickVals[len(tickVals)-1] + pad,
			PixelMin: plotArea.X,
			PixelMax: plotArea.Right(),
		}
		for _, v := range tickVals {
			compiled.XTicks = append(compiled.XTicks, geometry.TickMark{
				Value:    v,
				Label:    ticks.FormatTick(v),
				PixelPos: linear.Map(v),
			})
		}
		xScale = linear
	default:
		xScale = &scales.Linear{DataMin: 0, DataMax: 1, PixelMin: plotArea.X, PixelMax: plotArea.Right()}
	}

	yMin, yMax := 0.0, 1.0
	if len(yNumeric) > 0 {
		yMin, yMax = minOf(yNumeric), maxOf(yNumeric)
	}
	yTickVals := ticks.NiceTicks(yMin, yMax, ticks.DefaultMaxTicks)
	yPad := (yTickVals[len(yTickVals)-1] - yTickVals[0]) * scalePad
	yScale := &scales.Linear{
		DataMin:  yTickVals[0] - yPad,
		DataMax:  yTickVals[len(yTickVals)-1] + yPad,
		PixelMin: plotArea.Bottom(), // SVG y grows downward
		PixelMax: plotArea.Y,
	}
	for _, v := range yTickVals {
		compiled.YTicks = append(compiled.YTicks, geometry.TickMark{
			Value:    v,
			Label:    ticks.FormatTick(v),
			PixelPos: yScale.Map(v),
		})
	}

	return xScale, yScale, nil
}

// spreadTickLabels runs collision avoidance over the x-tick labels and
// records the adjusted positions. Crowded categorical axes end up with
// labels nudged apart vertically instead of overprinting.
func (c *Compiler) spreadTickLabels(compiled *primitive.CompiledPlot, theme *spec.ThemeSpec) error {
	if len(compiled.XTicks) == 0 {
		return nil
	}
	font, err := fonts.Load(theme.FontName)
	if err != nil {
		return err
	}

	labels := make([]layout.TextLabel, 0, len(compiled.XTicks))
	for _, tick := range compiled.XTicks {
		labels = append(labels, layout.TextLabel{
			Text:     tick.Label,
			X:        tick.PixelPos,
			Y:        compiled.PlotArea.Bottom() + xTickLabelOffset,
			FontSize: theme.TickFontSize,
			Font:     font,
			Anchor:   "middle",
		})
	}
	adjusted := layout.AvoidCollisions(labels, layout.DefaultMaxIterations, layout.DefaultNudgeStep)

	compiled.XTickLabelPos = make([]geometry.Point, len(adjusted))
	for i, label := range adjusted {
		compiled.XTickLabelPos[i] = geometry.Point{X: label.X, Y: label.Y}
	}
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
