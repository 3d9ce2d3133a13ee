package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/plotforge/plotforge/internal/geoms/builtin"
	"github.com/plotforge/plotforge/internal/logger"
	"github.com/plotforge/plotforge/internal/primitive"
	"github.com/plotforge/plotforge/internal/spec"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

func scatterSpec() *spec.PlotSpec {
	s := spec.New()
	s.Data.Columns = map[string][]any{
		"x": {1.0, 2.0, 3.0},
		"y": {10.0, 20.0, 15.0},
	}
	s.Layers = []spec.LayerSpec{{Geom: "scatter", X: "x", Y: "y"}}
	return &s
}

func TestCompileScatterPointsInsidePlotArea(t *testing.T) {
	t.Parallel()

	compiled, err := Compile(scatterSpec())
	require.NoError(t, err)

	points := compiled.ByKind(primitive.KindPoint)
	require.Len(t, points, 3)
	for _, p := range points {
		pt := p.(primitive.Point)
		require.True(t, compiled.PlotArea.Contains(pt.X, pt.Y),
			"point (%g, %g) outside plot area %+v", pt.X, pt.Y, compiled.PlotArea)
	}
}

func TestCompileProducesTicksAndScalePadding(t *testing.T) {
	t.Parallel()

	compiled, err := Compile(scatterSpec())
	require.NoError(t, err)

	require.NotEmpty(t, compiled.XTicks)
	require.NotEmpty(t, compiled.YTicks)

	// Ticks stay inside the plot area even with the 3% data padding.
	for _, tick := range compiled.XTicks {
		require.GreaterOrEqual(t, tick.PixelPos, compiled.PlotArea.X-1e-9)
		require.LessOrEqual(t, tick.PixelPos, compiled.PlotArea.Right()+1e-9)
	}

	// Collision pass recorded a position for every x tick.
	require.Len(t, compiled.XTickLabelPos, len(compiled.XTicks))
	for i, pos := range compiled.XTickLabelPos {
		require.InDelta(t, compiled.XTicks[i].PixelPos, pos.X, 1e-9)
	}
}

func TestCompileUnknownTheme(t *testing.T) {
	t.Parallel()

	s := scatterSpec()
	s.Theme = "vaporwave"

	_, err := Compile(s)

	var themeErr *plotforgeerrors.UnknownThemeError
	require.ErrorAs(t, err, &themeErr)
}

func TestCompileUnknownGeom(t *testing.T) {
	t.Parallel()

	s := scatterSpec()
	s.Layers[0].Geom = "hexbin"

	_, err := Compile(s)

	var geomErr *plotforgeerrors.UnknownGeomError
	require.ErrorAs(t, err, &geomErr)
	require.Contains(t, geomErr.Available, "scatter")
	require.Contains(t, geomErr.Available, "waterfall")
}

func TestCompileMissingColumn(t *testing.T) {
	t.Parallel()

	s := scatterSpec()
	s.Layers[0].Y = "absent"

	_, err := Compile(s)

	var missingErr *plotforgeerrors.MissingColumnError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "absent", missingErr.Column)
}

func TestCompileLowContrastOverrideRejected(t *testing.T) {
	t.Parallel()

	s := scatterSpec()
	s.Data.Columns["region"] = []any{"west", "east", "west"}
	s.Layers[0].Color = "region"
	// #DDDDDD on a white background is nowhere near the 3:1 graphical
	// minimum, so the override must fail the same gate as the palette.
	s.Layers[0].ColorMap = map[string]string{"west": "#DDDDDD"}

	_, err := Compile(s)

	var contrastErr *plotforgeerrors.ContrastError
	require.ErrorAs(t, err, &contrastErr)
	require.Equal(t, "#DDDDDD", contrastErr.Foreground)
	require.InDelta(t, 3.0, contrastErr.Threshold, 1e-9)
}

func TestCompileColorOverrideApplied(t *testing.T) {
	t.Parallel()

	s := scatterSpec()
	s.Data.Columns["region"] = []any{"west", "east", "west"}
	s.Layers[0].Color = "region"
	s.Layers[0].ColorMap = map[string]string{"west": "#17648D"}

	compiled, err := Compile(s)
	require.NoError(t, err)

	points := compiled.ByKind(primitive.KindPoint)
	require.Equal(t, "#17648D", points[0].(primitive.Point).Color)
	require.Equal(t, "west", points[0].(primitive.Point).Group)

	// Legend keeps first-seen order with the override color.
	require.Len(t, compiled.LegendEntries, 2)
	require.Equal(t, primitive.LegendEntry{Label: "west", Color: "#17648D"}, compiled.LegendEntries[0])
	require.Equal(t, "east", compiled.LegendEntries[1].Label)
	require.NotNil(t, compiled.LegendArea)
}

func TestCompileLegendHiddenWhenDisabled(t *testing.T) {
	t.Parallel()

	s := scatterSpec()
	s.Data.Columns["region"] = []any{"a", "b", "a"}
	s.Layers[0].Color = "region"
	s.Legend.Show = false

	compiled, err := Compile(s)
	require.NoError(t, err)
	require.Empty(t, compiled.LegendEntries)
	require.Nil(t, compiled.LegendArea)
}

func TestCompileWaterfallShape(t *testing.T) {
	t.Parallel()

	s := spec.New()
	s.Data.Columns = map[string][]any{
		"step":  {"Revenue", "COGS", "Opex", "Tax", "Profit"},
		"delta": {100.0, -30.0, -20.0, -10.0, 25.0},
	}
	s.Layers = []spec.LayerSpec{{Geom: "waterfall", X: "step", Y: "delta"}}

	compiled, err := Compile(&s)
	require.NoError(t, err)

	bars := compiled.ByKind(primitive.KindBar)
	require.Len(t, bars, 5)
	lines := compiled.ByKind(primitive.KindLine)
	require.Len(t, lines, 4)

	// Exactly two distinct bar colors: one up, one down.
	colorsSeen := map[string]bool{}
	for _, b := range bars {
		colorsSeen[b.(primitive.Bar).Color] = true
	}
	require.Len(t, colorsSeen, 2)

	// Categorical x axis: one tick per step.
	require.Len(t, compiled.XTicks, 5)
	require.Equal(t, "Revenue", compiled.XTicks[0].Label)
}

func TestCompileBarCurrencyLabel(t *testing.T) {
	t.Parallel()

	s := spec.New()
	s.Data.Columns = map[string][]any{
		"q": {"Q1"},
		"v": {38000.0},
	}
	s.Layers = []spec.LayerSpec{{
		Geom: "bar", X: "q", Y: "v",
		Labels: true, LabelFormat: "${:,.0f}",
	}}

	compiled, err := Compile(&s)
	require.NoError(t, err)

	texts := compiled.ByKind(primitive.KindText)
	found := false
	for _, tp := range texts {
		if tp.(primitive.Text).Content == "$38,000" {
			found = true
		}
	}
	require.True(t, found, "expected a $38,000 bar label, got %+v", texts)
}

func TestCompileAnnotationsPlaced(t *testing.T) {
	t.Parallel()

	s := scatterSpec()
	s.Labels = spec.LabelsSpec{
		Title:    "Growth",
		Subtitle: "All regions\nFY25",
		X:        "Week",
		Y:        "Visits",
		Footnote: "Source: internal analytics",
	}

	compiled, err := Compile(s)
	require.NoError(t, err)

	var contents []string
	var yLabel primitive.Text
	for _, tp := range compiled.ByKind(primitive.KindText) {
		text := tp.(primitive.Text)
		contents = append(contents, text.Content)
		if text.Content == "Visits" {
			yLabel = text
		}
	}
	require.Contains(t, contents, "Growth")
	require.Contains(t, contents, "All regions")
	require.Contains(t, contents, "FY25")
	require.Contains(t, contents, "Week")
	require.Contains(t, contents, "Source: internal analytics")

	// Side y label renders rotated.
	require.InDelta(t, -90.0, yLabel.Rotation, 1e-9)
}

func TestCompileEmptyDataStillProducesAxes(t *testing.T) {
	t.Parallel()

	s := spec.New()
	s.Layers = []spec.LayerSpec{{Geom: "scatter", X: "x", Y: "y"}}

	compiled, err := Compile(&s)
	require.NoError(t, err)
	require.Empty(t, compiled.ByKind(primitive.KindPoint))
	require.NotEmpty(t, compiled.YTicks)
}

func TestCompileEmptyDataStillRejectsUnknownGeom(t *testing.T) {
	t.Parallel()

	s := spec.New()
	s.Layers = []spec.LayerSpec{{Geom: "hexbin", X: "x", Y: "y"}}

	_, err := Compile(&s)

	var geomErr *plotforgeerrors.UnknownGeomError
	require.ErrorAs(t, err, &geomErr)
	require.Equal(t, "hexbin", geomErr.Name)
}

func TestCompileMultiLayerUnifiesScales(t *testing.T) {
	t.Parallel()

	s := spec.New()
	s.Data.Columns = map[string][]any{
		"x":  {1.0, 2.0, 3.0},
		"y1": {5.0, 6.0, 7.0},
		"y2": {100.0, 200.0, 300.0},
	}
	s.Layers = []spec.LayerSpec{
		{Geom: "line", X: "x", Y: "y1"},
		{Geom: "scatter", X: "x", Y: "y2"},
	}

	compiled, err := Compile(&s)
	require.NoError(t, err)

	// The shared y axis must cover both layers: its last tick reaches 300.
	last := compiled.YTicks[len(compiled.YTicks)-1]
	require.GreaterOrEqual(t, last.Value, 300.0)
}

func TestCompileWithLoggerTracesStages(t *testing.T) {
	t.Parallel()

	log, err := logger.New(logger.Options{Level: "debug", Writer: &discardWriter{}})
	require.NoError(t, err)

	_, err = New(log).Compile(scatterSpec())
	require.NoError(t, err)
}

type discardWriter struct{}

func (*discardWriter) Write(p []byte) (int, error) { return len(p), nil }
