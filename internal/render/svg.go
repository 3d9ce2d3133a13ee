// Package render turns compiled plots into SVG documents.
package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/plotforge/plotforge/internal/primitive"
)

// tickLength is the length of an axis tick mark in pixels.
const tickLength = 5.0

// tickLabelBaselineShift converts a tick label's layout position (top of
// the text box) into the SVG text baseline.
const tickLabelBaselineShift = 3.0

// legend swatch geometry.
const (
	swatchSize    = 12.0
	swatchCorner  = 2.0
	legendRowStep = 22.0
)

// SVG renders a compiled plot to an SVG document string.
func SVG(compiled *primitive.CompiledPlot) string {
	var buf bytes.Buffer
	WriteSVG(&buf, compiled)
	return buf.String()
}

// WriteSVG renders a compiled plot as SVG to w. Output order is fixed:
// background, grid, axes, clipped plot content in z-order, ticks, legend.
// Annotation text is part of the primitive list and renders above the
// plot content.
func WriteSVG(w io.Writer, compiled *primitive.CompiledPlot) {
	theme := compiled.Theme
	pa := compiled.PlotArea

	canvas := svg.New(w)
	canvas.Start(compiled.Width, compiled.Height)

	clipID := compiled.ClipID
	if clipID == "" {
		clipID = "plot-area"
	}
	canvas.Def()
	canvas.ClipPath(fmt.Sprintf(`id=%q`, clipID))
	canvas.Rect(pa.X, pa.Y, pa.Width, pa.Height)
	canvas.ClipEnd()
	canvas.DefEnd()

	canvas.Rect(0, 0, compiled.Width, compiled.Height, fill(theme.BackgroundColor))

	// Grid lines.
	if theme.ShowYGrid {
		for _, tick := range compiled.YTicks {
			if tick.PixelPos < pa.Y || tick.PixelPos > pa.Bottom() {
				continue
			}
			canvas.Line(pa.X, tick.PixelPos, pa.Right(), tick.PixelPos,
				stroke(theme.GridColor), strokeWidth(1))
		}
	}
	if theme.ShowXGrid {
		for _, tick := range compiled.XTicks {
			if tick.PixelPos < pa.X || tick.PixelPos > pa.Right() {
				continue
			}
			canvas.Line(tick.PixelPos, pa.Y, tick.PixelPos, pa.Bottom(),
				stroke(theme.GridColor), strokeWidth(1))
		}
	}

	// Axis lines.
	if theme.ShowXAxis {
		canvas.Line(pa.X, pa.Bottom(), pa.Right(), pa.Bottom(),
			stroke(theme.AxisColor), strokeWidth(theme.AxisStrokeWidth))
	}
	if theme.ShowYAxis {
		canvas.Line(pa.X, pa.Y, pa.X, pa.Bottom(),
			stroke(theme.AxisColor), strokeWidth(theme.AxisStrokeWidth))
	}

	// Plot content, clipped to the plot area. Text stays outside the clip
	// group so outside-placed bar labels are never cut off.
	canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, clipID))
	for _, p := range compiled.ZOrdered() {
		if p.Kind() == primitive.KindText {
			continue
		}
		drawPrimitive(canvas, p)
	}
	canvas.Gend()

	drawTicks(canvas, compiled)

	for _, p := range compiled.ZOrdered() {
		text, ok := p.(primitive.Text)
		if !ok {
			continue
		}
		attrs := []string{
			fontFamily(theme.FontFamily),
			fontSize(text.FontSize),
			fill(text.Color),
			anchor(text.Anchor),
		}
		if text.Rotation != 0 {
			attrs = append(attrs, fmt.Sprintf(`transform="rotate(%s,%s,%s)"`,
				num(text.Rotation), num(text.X), num(text.Y)))
		}
		canvas.Text(text.X, text.Y, text.Content, attrs...)
	}

	if len(compiled.LegendEntries) > 0 && compiled.LegendArea != nil {
		drawLegend(canvas, compiled)
	}

	canvas.End()
}

func drawPrimitive(canvas *svg.SVG, p primitive.Primitive) {
	switch v := p.(type) {
	case primitive.Bar:
		canvas.Rect(v.X, v.Y, v.Width, v.Height, fill(v.Color))
	case primitive.Path:
		attrs := []string{fill(v.Fill)}
		if v.Stroke != "" {
			attrs = append(attrs, stroke(v.Stroke), strokeWidth(v.StrokeWidth))
		}
		if v.Opacity > 0 && v.Opacity < 1 {
			attrs = append(attrs, fmt.Sprintf(`opacity="%s"`, num(v.Opacity)))
		}
		canvas.Path(v.Data, attrs...)
	case primitive.Line:
		if len(v.Points) < 2 {
			return
		}
		xs := make([]float64, len(v.Points))
		ys := make([]float64, len(v.Points))
		for i, pt := range v.Points {
			xs[i], ys[i] = pt.X, pt.Y
		}
		canvas.Polyline(xs, ys, `fill="none"`, stroke(v.Color), strokeWidth(v.Width),
			`stroke-linejoin="round"`, `stroke-linecap="round"`)
	case primitive.Point:
		canvas.Circle(v.X, v.Y, v.Radius, fill(v.Color))
	}
}

func drawTicks(canvas *svg.SVG, compiled *primitive.CompiledPlot) {
	theme := compiled.Theme
	pa := compiled.PlotArea

	for i, tick := range compiled.XTicks {
		canvas.Line(tick.PixelPos, pa.Bottom(), tick.PixelPos, pa.Bottom()+tickLength,
			stroke(theme.AxisColor), strokeWidth(theme.AxisStrokeWidth))

		labelX := tick.PixelPos
		labelY := pa.Bottom() + 15 + tickLabelBaselineShift
		if i < len(compiled.XTickLabelPos) {
			labelX = compiled.XTickLabelPos[i].X
			labelY = compiled.XTickLabelPos[i].Y + tickLabelBaselineShift
		}
		canvas.Text(labelX, labelY, tick.Label,
			fontFamily(theme.FontFamily), fontSize(theme.TickFontSize),
			fill(theme.TextColor), anchor("middle"))
	}

	for _, tick := range compiled.YTicks {
		if tick.PixelPos < pa.Y || tick.PixelPos > pa.Bottom() {
			continue
		}
		canvas.Line(pa.X-tickLength, tick.PixelPos, pa.X, tick.PixelPos,
			stroke(theme.AxisColor), strokeWidth(theme.AxisStrokeWidth))
		canvas.Text(pa.X-8, tick.PixelPos+4, tick.Label,
			fontFamily(theme.FontFamily), fontSize(theme.TickFontSize),
			fill(theme.TextColor), anchor("end"))
	}
}

func drawLegend(canvas *svg.SVG, compiled *primitive.CompiledPlot) {
	theme := compiled.Theme
	la := compiled.LegendArea

	y := la.Y + 10
	for _, entry := range compiled.LegendEntries {
		canvas.Roundrect(la.X, y-8, swatchSize, swatchSize, swatchCorner, swatchCorner,
			fill(entry.Color))
		canvas.Text(la.X+18, y+2, entry.Label,
			fontFamily(theme.FontFamily), fontSize(theme.TickFontSize),
			fill(theme.TextColor), anchor("start"))
		y += legendRowStep
	}
}

func fill(color string) string { return fmt.Sprintf(`fill=%q`, color) }

func stroke(color string) string { return fmt.Sprintf(`stroke=%q`, color) }

func strokeWidth(w float64) string { return fmt.Sprintf(`stroke-width="%s"`, num(w)) }

func fontFamily(family string) string { return fmt.Sprintf(`font-family=%q`, family) }

func fontSize(size float64) string { return fmt.Sprintf(`font-size="%s"`, num(size)) }

func anchor(a string) string {
	if a == "" {
		a = "start"
	}
	return fmt.Sprintf(`text-anchor=%q`, a)
}

// num formats a coordinate or size compactly, without a trailing ".0".
func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
