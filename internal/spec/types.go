// Package spec defines the declarative plot specification consumed by the
// compiler: columnar data, layers, labels, legend, size, and the named
// theme registry. Specs are JSON- and YAML-serializable; unknown fields in
// either format are ignored.
package spec

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 500.0
)

// DataSpec holds columnar data: column name to ordered values.
// Heterogeneous value types are permitted within a column.
type DataSpec struct {
	Columns map[string][]any `json:"columns" yaml:"columns"`
}

// ColumnNames returns the column names in sorted order, for error messages.
func (d DataSpec) ColumnNames() []string {
	names := make([]string, 0, len(d.Columns))
	for name := range d.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LayerSpec describes one visual layer of a plot.
type LayerSpec struct {
	Geom        string            `json:"geom" yaml:"geom" validate:"required"`
	X           string            `json:"x" yaml:"x" validate:"required"`
	Y           string            `json:"y" yaml:"y" validate:"required"`
	Color       string            `json:"color,omitempty" yaml:"color,omitempty"`
	ColorMap    map[string]string `json:"colorMap,omitempty" yaml:"colorMap,omitempty"`
	Labels      bool              `json:"labels,omitempty" yaml:"labels,omitempty"`
	LabelFormat string            `json:"labelFormat,omitempty" yaml:"labelFormat,omitempty"`
}

// LabelsSpec holds the optional text annotations. An empty string means
// the element is absent.
type LabelsSpec struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	X        string `json:"x,omitempty" yaml:"x,omitempty"`
	Y        string `json:"y,omitempty" yaml:"y,omitempty"`
	Footnote string `json:"footnote,omitempty" yaml:"footnote,omitempty"`
}

// LegendSpec configures legend visibility and placement.
type LegendSpec struct {
	Show     bool   `json:"show" yaml:"show"`
	Position string `json:"position" yaml:"position" validate:"oneof=top bottom left right"`
}

// UnmarshalJSON applies legend defaults: show=true, position=right.
func (l *LegendSpec) UnmarshalJSON(data []byte) error {
	type raw struct {
		Show     *bool  `json:"show"`
		Position string `json:"position"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	l.Show = r.Show == nil || *r.Show
	l.Position = r.Position
	if l.Position == "" {
		l.Position = "right"
	}
	return nil
}

// UnmarshalYAML applies the same defaults as UnmarshalJSON.
func (l *LegendSpec) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		Show     *bool  `yaml:"show"`
		Position string `yaml:"position"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	l.Show = r.Show == nil || *r.Show
	l.Position = r.Position
	if l.Position == "" {
		l.Position = "right"
	}
	return nil
}

// SizeSpec is the canvas size in pixels.
type SizeSpec struct {
	Width  float64 `json:"width" yaml:"width" validate:"gt=0"`
	Height float64 `json:"height" yaml:"height" validate:"gt=0"`
}

// PlotSpec is the complete specification for a plot. It is the only
// long-lived, caller-owned entity in the pipeline; everything the compiler
// produces is derived and immutable.
type PlotSpec struct {
	Data   DataSpec    `json:"data" yaml:"data"`
	Layers []LayerSpec `json:"layers" yaml:"layers" validate:"dive"`
	Labels LabelsSpec  `json:"labels" yaml:"labels"`
	Legend LegendSpec  `json:"legend" yaml:"legend"`
	Size   SizeSpec    `json:"size" yaml:"size"`
	Theme  string      `json:"theme" yaml:"theme"`
}

// New returns a PlotSpec with all defaults applied.
func New() PlotSpec {
	return PlotSpec{
		Data:   DataSpec{Columns: map[string][]any{}},
		Legend: LegendSpec{Show: true, Position: "right"},
		Size:   SizeSpec{Width: DefaultWidth, Height: DefaultHeight},
		Theme:  "default",
	}
}

// ApplyDefaults fills zero-valued fields that have non-zero defaults.
// Parsing a document that omits size or theme yields the same spec as one
// that spells out the defaults.
func (s *PlotSpec) ApplyDefaults() {
	if s.Data.Columns == nil {
		s.Data.Columns = map[string][]any{}
	}
	if s.Size.Width == 0 {
		s.Size.Width = DefaultWidth
	}
	if s.Size.Height == 0 {
		s.Size.Height = DefaultHeight
	}
	if s.Theme == "" {
		s.Theme = "default"
	}
	if s.Legend.Position == "" {
		s.Legend.Position = "right"
	}
}

