package spec

import (
	"sort"

	"github.com/plotforge/plotforge/internal/colors"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

// ThemeMargins are the base pixel margins a theme reserves around the
// plot rectangle before any optional element grows them.
type ThemeMargins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// ThemeSpec is a fully-resolved visual style. Theme values are immutable:
// Resolve hands out a copy, and palettes are cloned on access.
type ThemeSpec struct {
	// Background
	BackgroundColor string

	// Fonts
	FontFamily       string
	FontName         string // which font metrics table drives layout
	TitleFontSize    float64
	SubtitleFontSize float64
	LabelFontSize    float64
	TickFontSize     float64
	FootnoteFontSize float64

	// Colors
	TextColor string
	AxisColor string
	GridColor string

	// Grid
	ShowXGrid bool
	ShowYGrid bool

	// Axes
	ShowXAxis       bool
	ShowYAxis       bool
	AxisStrokeWidth float64

	// Plot elements
	PointRadius float64
	LineWidth   float64
	BarPadding  float64 // fraction of band width

	// Label placement
	TitleAlign     string // "left", "center", "right"
	YLabelPosition string // "side" (rotated) or "top"

	// Palette, assigned to groups in first-seen order
	Palette []string

	// Base margins in pixels
	Margins ThemeMargins
}

// PaletteCopy returns a defensive copy of the theme palette.
func (t ThemeSpec) PaletteCopy() []string {
	out := make([]string, len(t.Palette))
	copy(out, t.Palette)
	return out
}

func defaultTheme() ThemeSpec {
	return ThemeSpec{
		BackgroundColor:  "#FFFFFF",
		FontFamily:       "Inter, Helvetica Neue, Arial, sans-serif",
		FontName:         "arial",
		TitleFontSize:    16,
		SubtitleFontSize: 13,
		LabelFontSize:    12,
		TickFontSize:     10,
		FootnoteFontSize: 10,
		TextColor:        "#333333",
		AxisColor:        "#333333",
		GridColor:        "#EEEEEE",
		ShowXGrid:        false,
		ShowYGrid:        true,
		ShowXAxis:        true,
		ShowYAxis:        false,
		AxisStrokeWidth:  1.0,
		PointRadius:      4.0,
		LineWidth:        2.0,
		BarPadding:       0.2,
		TitleAlign:       "center",
		YLabelPosition:   "side",
		Palette:          colors.DefaultPalette,
		Margins:          ThemeMargins{Top: 40, Right: 20, Bottom: 50, Left: 60},
	}
}

func blueskyTheme() ThemeSpec {
	t := defaultTheme()
	t.TitleFontSize = 20
	t.SubtitleFontSize = 15
	t.LabelFontSize = 14
	t.TickFontSize = 12
	t.PointRadius = 5.0
	t.LineWidth = 2.5
	t.Margins.Top = 50
	t.Margins.Bottom = 60
	return t
}

func substackTheme() ThemeSpec {
	t := defaultTheme()
	t.TitleFontSize = 18
	t.SubtitleFontSize = 14
	t.LabelFontSize = 13
	t.TickFontSize = 11
	t.LineWidth = 2.5
	return t
}

// grayscalePalette stops at #8C8C8C: lighter grays drop below the 3.0:1
// graphical contrast floor against white and would trip the gate.
var grayscalePalette = []string{
	"#000000",
	"#555555",
	"#777777",
	"#333333",
	"#888888",
	"#222222",
	"#666666",
	"#444444",
	"#111111",
	"#8C8C8C",
}

func printTheme() ThemeSpec {
	t := defaultTheme()
	t.FontFamily = "Georgia, Times New Roman, serif"
	t.FontName = "arial" // serif metrics approximated by the arial table
	t.TextColor = "#000000"
	t.AxisColor = "#000000"
	t.GridColor = "#DDDDDD"
	t.ShowYAxis = true
	t.AxisStrokeWidth = 0.75
	t.PointRadius = 3.0
	t.LineWidth = 1.5
	t.Palette = grayscalePalette
	return t
}

func pdfTheme() ThemeSpec {
	t := printTheme()
	t.TitleFontSize = 14
	t.SubtitleFontSize = 11
	t.LabelFontSize = 10
	t.TickFontSize = 9
	t.FootnoteFontSize = 8
	t.Margins = ThemeMargins{Top: 30, Right: 15, Bottom: 40, Left: 50}
	return t
}

func magazineTheme() ThemeSpec {
	t := defaultTheme()
	t.FontName = "inter"
	t.FontFamily = "Inter, Helvetica Neue, sans-serif"
	t.TextColor = "#1A1A1A"
	t.AxisColor = "#1A1A1A"
	t.GridColor = "#E5E5E5"
	t.TitleAlign = "left"
	t.YLabelPosition = "top"
	t.ShowXGrid = false
	t.ShowYGrid = true
	t.LineWidth = 2.5
	t.BarPadding = 0.35
	t.Palette = []string{
		"#17648D",
		"#C14F22",
		"#2E7D32",
		"#6A4C93",
		"#8F5902",
		"#7B7573",
	}
	return t
}

// themeRegistry is the fixed, closed set of named themes. Aliases map
// alternate names onto the same style.
var themeRegistry = map[string]func() ThemeSpec{
	"default":   defaultTheme,
	"bluesky":   blueskyTheme,
	"social":    blueskyTheme,
	"substack":  substackTheme,
	"print":     printTheme,
	"pdf":       pdfTheme,
	"arxiv":     pdfTheme,
	"magazine":  magazineTheme,
	"economist": magazineTheme,
}

// themeAliases records which registry names are alternate spellings of a
// canonical theme.
var themeAliases = map[string]string{
	"social":    "bluesky",
	"arxiv":     "pdf",
	"economist": "magazine",
}

// ThemeAlias returns the canonical name an alias points to, and whether
// name is an alias at all.
func ThemeAlias(name string) (string, bool) {
	canonical, ok := themeAliases[name]
	return canonical, ok
}

// ThemeNames returns the registered theme names, aliases included, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTheme looks up a theme by name. Resolving an unknown name is a
// fatal lookup error.
func ResolveTheme(name string) (ThemeSpec, error) {
	build, ok := themeRegistry[name]
	if !ok {
		return ThemeSpec{}, plotforgeerrors.NewUnknownThemeError(name, ThemeNames())
	}
	return build(), nil
}
