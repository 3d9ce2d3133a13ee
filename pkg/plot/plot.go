// Package plot is the public convenience API: one call builds a complete
// figure from columnar data.
//
//	fig := plot.Scatter(plot.Data{
//	    "day":    {1, 2, 3},
//	    "visits": {120, 150, 90},
//	}, "day", "visits", plot.WithTitle("Traffic"))
//	svg, err := fig.SVG()
//
// Figures render to SVG and support layered composition; see Figure.
package plot

import (
	"sort"

	"github.com/plotforge/plotforge/internal/figure"
	_ "github.com/plotforge/plotforge/internal/geoms/builtin"
	"github.com/plotforge/plotforge/internal/spec"
)

// Figure is a plot that can be compiled, rendered, saved, and extended
// with further layers.
type Figure = figure.Figure

// Spec is the declarative plot specification underlying every figure.
type Spec = spec.PlotSpec

// Data is columnar data: column name to ordered values. Cells may be
// numbers or strings; geoms coerce per axis.
type Data map[string][]any

// FromRecords transposes row-oriented records into columnar Data. Columns
// missing from a record get a nil cell, so ragged records stay aligned.
func FromRecords(records []map[string]any) Data {
	if len(records) == 0 {
		return Data{}
	}
	keys := make(map[string]struct{})
	for _, record := range records {
		for key := range record {
			keys[key] = struct{}{}
		}
	}
	names := make([]string, 0, len(keys))
	for key := range keys {
		names = append(names, key)
	}
	sort.Strings(names)

	data := make(Data, len(names))
	for _, name := range names {
		column := make([]any, len(records))
		for i, record := range records {
			column[i] = record[name]
		}
		data[name] = column
	}
	return data
}

// Option adjusts the spec a convenience constructor builds.
type Option func(*spec.PlotSpec, *spec.LayerSpec)

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) { s.Labels.Title = title }
}

// WithSubtitle sets the subtitle below the title.
func WithSubtitle(subtitle string) Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) { s.Labels.Subtitle = subtitle }
}

// WithXLabel overrides the x-axis label, which defaults to the x column name.
func WithXLabel(label string) Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) { s.Labels.X = label }
}

// WithYLabel overrides the y-axis label, which defaults to the y column name.
func WithYLabel(label string) Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) { s.Labels.Y = label }
}

// WithFootnote sets the footer text below the plot.
func WithFootnote(footnote string) Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) { s.Labels.Footnote = footnote }
}

// WithTheme selects a named theme.
func WithTheme(name string) Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) { s.Theme = name }
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height float64) Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) {
		s.Size.Width = width
		s.Size.Height = height
	}
}

// WithColor groups marks by a column and enables the legend.
func WithColor(column string) Option {
	return func(s *spec.PlotSpec, layer *spec.LayerSpec) {
		layer.Color = column
		s.Legend.Show = true
	}
}

// WithColorMap pins specific groups to specific colors. Overrides pass
// the same contrast gate as theme palettes.
func WithColorMap(overrides map[string]string) Option {
	return func(_ *spec.PlotSpec, layer *spec.LayerSpec) { layer.ColorMap = overrides }
}

// WithValueLabels draws a value label on each bar. format is a brace
// template such as "${:,.0f}"; empty means plain numbers.
func WithValueLabels(format string) Option {
	return func(_ *spec.PlotSpec, layer *spec.LayerSpec) {
		layer.Labels = true
		layer.LabelFormat = format
	}
}

// WithoutLegend hides the legend even when marks are color-grouped.
func WithoutLegend() Option {
	return func(s *spec.PlotSpec, _ *spec.LayerSpec) { s.Legend.Show = false }
}

// Scatter creates a scatter plot: one marker per row.
func Scatter(data Data, x, y string, opts ...Option) *Figure {
	return build("scatter", data, x, y, opts)
}

// Line creates a line plot, optionally grouped into one polyline per color
// group.
func Line(data Data, x, y string, opts ...Option) *Figure {
	return build("line", data, x, y, opts)
}

// Bar creates a bar chart on a categorical x-axis.
func Bar(data Data, x, y string, opts ...Option) *Figure {
	return build("bar", data, x, y, opts)
}

// Waterfall creates a waterfall chart: x holds step labels, y holds signed
// step values.
func Waterfall(data Data, x, y string, opts ...Option) *Figure {
	return build("waterfall", data, x, y, opts)
}

// New creates an empty figure over data for layered composition via
// Figure.AddScatter, AddLine, and AddBar.
func New(data Data, opts ...Option) *Figure {
	s := spec.New()
	s.Data.Columns = map[string][]any(data)
	var layer spec.LayerSpec
	for _, opt := range opts {
		opt(&s, &layer)
	}
	return figure.New(s)
}

// Render wraps an already-built spec in a figure.
func Render(s Spec) *Figure {
	return figure.New(s)
}

func build(geomName string, data Data, x, y string, opts []Option) *Figure {
	s := spec.New()
	s.Data.Columns = map[string][]any(data)
	s.Labels.X = x
	s.Labels.Y = y
	s.Legend.Show = false

	layer := spec.LayerSpec{Geom: geomName, X: x, Y: y}
	for _, opt := range opts {
		opt(&s, &layer)
	}
	s.Layers = []spec.LayerSpec{layer}
	return figure.New(s)
}
