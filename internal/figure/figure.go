// Package figure provides the user-facing plot object: a spec plus
// lazily computed compilation and render results with explicit dirty
// tracking. Mutating the spec through a Figure method marks the cache
// dirty; the next Compiled or SVG call recompiles.
package figure

import (
	"os"

	"github.com/plotforge/plotforge/internal/compiler"
	"github.com/plotforge/plotforge/internal/primitive"
	"github.com/plotforge/plotforge/internal/render"
	"github.com/plotforge/plotforge/internal/spec"
)

// Figure wraps a plot spec and caches its compiled and rendered forms.
// Figures are not safe for concurrent mutation.
type Figure struct {
	spec     spec.PlotSpec
	compiled *primitive.CompiledPlot
	svg      string
	dirty    bool

	compiler *compiler.Compiler
}

// New creates a Figure over a spec. The spec is copied; later changes to
// the caller's value do not affect the figure.
func New(s spec.PlotSpec) *Figure {
	return &Figure{spec: s, dirty: true, compiler: compiler.New(nil)}
}

// WithCompiler replaces the figure's compiler, e.g. to attach a logger.
func (f *Figure) WithCompiler(c *compiler.Compiler) *Figure {
	f.compiler = c
	f.invalidate()
	return f
}

// Spec returns a copy of the underlying spec.
func (f *Figure) Spec() spec.PlotSpec {
	return f.spec
}

// invalidate drops cached results after a spec mutation.
func (f *Figure) invalidate() {
	f.compiled = nil
	f.svg = ""
	f.dirty = true
}

// Dirty reports whether the figure needs recompilation.
func (f *Figure) Dirty() bool {
	return f.dirty
}

// Compiled returns the compiled plot, compiling on first use and after
// any mutation.
func (f *Figure) Compiled() (*primitive.CompiledPlot, error) {
	if f.dirty || f.compiled == nil {
		compiled, err := f.compiler.Compile(&f.spec)
		if err != nil {
			return nil, err
		}
		f.compiled = compiled
		f.svg = ""
		f.dirty = false
	}
	return f.compiled, nil
}

// SVG returns the rendered SVG document, rendering on first use.
func (f *Figure) SVG() (string, error) {
	if f.svg == "" || f.dirty {
		compiled, err := f.Compiled()
		if err != nil {
			return "", err
		}
		f.svg = render.SVG(compiled)
	}
	return f.svg, nil
}

// SaveSVG writes the rendered SVG to a file.
func (f *Figure) SaveSVG(path string) error {
	out, err := f.SVG()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

// SetTitle updates the title and marks the figure dirty.
func (f *Figure) SetTitle(title string) *Figure {
	f.spec.Labels.Title = title
	f.invalidate()
	return f
}

// SetSubtitle updates the subtitle and marks the figure dirty.
func (f *Figure) SetSubtitle(subtitle string) *Figure {
	f.spec.Labels.Subtitle = subtitle
	f.invalidate()
	return f
}

// SetXLabel updates the x-axis label and marks the figure dirty.
func (f *Figure) SetXLabel(label string) *Figure {
	f.spec.Labels.X = label
	f.invalidate()
	return f
}

// SetYLabel updates the y-axis label and marks the figure dirty.
func (f *Figure) SetYLabel(label string) *Figure {
	f.spec.Labels.Y = label
	f.invalidate()
	return f
}

// SetFootnote updates the footnote and marks the figure dirty.
func (f *Figure) SetFootnote(footnote string) *Figure {
	f.spec.Labels.Footnote = footnote
	f.invalidate()
	return f
}

// SetTheme switches the theme and marks the figure dirty. Unknown theme
// names surface on the next compile.
func (f *Figure) SetTheme(name string) *Figure {
	f.spec.Theme = name
	f.invalidate()
	return f
}

// AddLayer appends a layer and marks the figure dirty.
func (f *Figure) AddLayer(layer spec.LayerSpec) *Figure {
	f.spec.Layers = append(f.spec.Layers, layer)
	f.invalidate()
	return f
}

// AddScatter appends a scatter layer. color may be empty.
func (f *Figure) AddScatter(x, y, color string) *Figure {
	return f.AddLayer(spec.LayerSpec{Geom: "scatter", X: x, Y: y, Color: color})
}

// AddLine appends a line layer. color may be empty.
func (f *Figure) AddLine(x, y, color string) *Figure {
	return f.AddLayer(spec.LayerSpec{Geom: "line", X: x, Y: y, Color: color})
}

// AddBar appends a bar layer. color may be empty.
func (f *Figure) AddBar(x, y, color string) *Figure {
	return f.AddLayer(spec.LayerSpec{Geom: "bar", X: x, Y: y, Color: color})
}
