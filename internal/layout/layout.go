// Package layout implements the box-model margin solver that reserves
// space for titles, axis labels, legends, and footnotes around a central
// plot rectangle, plus nudge-based collision avoidance for text labels.
package layout

import (
	"github.com/plotforge/plotforge/internal/fonts"
	"github.com/plotforge/plotforge/internal/geometry"
)

// Margins are the base pixel margins around the plot rectangle.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Input carries everything the layout solver needs: canvas size, base
// margins, presence flags for each optional element, and the font sizes
// that drive space reservation.
type Input struct {
	CanvasWidth  float64
	CanvasHeight float64
	Margins      Margins

	HasTitle    bool
	HasSubtitle bool
	HasXLabel   bool
	HasYLabel   bool
	HasFootnote bool
	HasLegend   bool

	LegendPosition string // "right" or "top" reserve space; others do not
	TitleAlign     string // "left", "center", "right"
	YLabelPosition string // "side" (rotated) or "top"

	TitleFontSize    float64
	SubtitleFontSize float64
	SubtitleLines    int
	LabelFontSize    float64
	FootnoteFontSize float64

	LegendWidth  float64
	LegendHeight float64
}

// Result is the computed layout: the plot rectangle and the anchor
// positions of every optional element that is present.
type Result struct {
	CanvasWidth  float64
	CanvasHeight float64
	PlotArea     geometry.Rect

	TitlePos    *geometry.Point
	SubtitlePos *geometry.Point
	XLabelPos   *geometry.Point
	YLabelPos   *geometry.Point
	FootnotePos *geometry.Point
	LegendArea  *geometry.Rect
}

// Default space reservations when the caller leaves them zero.
const (
	defaultLegendWidth  = 120.0
	defaultLegendHeight = 30.0
)

// Compute solves the box model. It is a pure function: identical inputs
// produce identical rectangles and anchor positions, and enabling more
// optional elements only grows the affected margins.
func Compute(in Input) Result {
	legendWidth := in.LegendWidth
	if legendWidth == 0 {
		legendWidth = defaultLegendWidth
	}
	legendHeight := in.LegendHeight
	if legendHeight == 0 {
		legendHeight = defaultLegendHeight
	}

	top := in.Margins.Top
	right := in.Margins.Right
	bottom := in.Margins.Bottom
	left := in.Margins.Left

	if in.HasTitle {
		top += in.TitleFontSize + 10
	}
	if in.HasSubtitle {
		lines := in.SubtitleLines
		if lines < 1 {
			lines = 1
		}
		top += in.SubtitleFontSize*1.3*float64(lines) + 6
	}
	if in.HasXLabel {
		bottom += in.LabelFontSize + 5
	}
	if in.HasYLabel {
		if in.YLabelPosition == "top" {
			top += in.LabelFontSize + 4
		} else {
			// Rotated -90 degrees: text height becomes horizontal width.
			left += fonts.TextHeight(in.LabelFontSize) + 5
		}
	}
	if in.HasFootnote {
		bottom += in.FootnoteFontSize + 20
	}
	if in.HasLegend {
		switch in.LegendPosition {
		case "right":
			right += legendWidth
		case "top":
			top += legendHeight
		}
	}

	plotArea := geometry.Rect{
		X:      left,
		Y:      top,
		Width:  max1(in.CanvasWidth - left - right),
		Height: max1(in.CanvasHeight - top - bottom),
	}

	result := Result{
		CanvasWidth:  in.CanvasWidth,
		CanvasHeight: in.CanvasHeight,
		PlotArea:     plotArea,
	}

	alignX := func() float64 {
		switch in.TitleAlign {
		case "left":
			return plotArea.X
		case "right":
			return plotArea.Right()
		default:
			return plotArea.X + plotArea.Width/2
		}
	}

	if in.HasTitle {
		result.TitlePos = &geometry.Point{
			X: alignX(),
			Y: in.Margins.Top + in.TitleFontSize,
		}
	}

	if in.HasSubtitle {
		titleSpace := 0.0
		if in.HasTitle {
			titleSpace = in.TitleFontSize + 10
		}
		result.SubtitlePos = &geometry.Point{
			X: alignX(),
			Y: in.Margins.Top + titleSpace + in.SubtitleFontSize,
		}
	}

	if in.HasXLabel {
		footnoteSpace := 0.0
		if in.HasFootnote {
			footnoteSpace = in.FootnoteFontSize + 16
		}
		result.XLabelPos = &geometry.Point{
			X: plotArea.X + plotArea.Width/2,
			Y: in.CanvasHeight - in.Margins.Bottom/2 - footnoteSpace,
		}
	}

	if in.HasYLabel {
		if in.YLabelPosition == "top" {
			result.YLabelPos = &geometry.Point{
				X: plotArea.X,
				Y: plotArea.Y - 4,
			}
		} else {
			// Keep the left edge of the rotated bounding box on canvas.
			result.YLabelPos = &geometry.Point{
				X: fonts.TextHeight(in.LabelFontSize),
				Y: plotArea.Y + plotArea.Height/2,
			}
		}
	}

	if in.HasFootnote {
		result.FootnotePos = &geometry.Point{
			X: plotArea.X,
			Y: in.CanvasHeight - in.FootnoteFontSize,
		}
	}

	if in.HasLegend {
		switch in.LegendPosition {
		case "right":
			result.LegendArea = &geometry.Rect{
				X:      plotArea.Right() + 15,
				Y:      plotArea.Y,
				Width:  legendWidth - 15,
				Height: plotArea.Height,
			}
		case "top":
			result.LegendArea = &geometry.Rect{
				X:      plotArea.X,
				Y:      plotArea.Y - legendHeight,
				Width:  plotArea.Width,
				Height: legendHeight,
			}
		}
	}

	return result
}

func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
