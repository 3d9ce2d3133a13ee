// Package fonts estimates text dimensions from embedded character-width
// tables, without a font shaping engine. Widths are stored as fractions of
// the font size; multiplying by the size gives the pixel advance.
//
// Tables are loaded lazily with a load-once-per-key guarantee, so concurrent
// first access from multiple goroutines parses each table exactly once.
package fonts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/plotforge/plotforge/internal/geometry"
)

//go:embed tables/*.json
var tableFS embed.FS

// DefaultCharWidth is the advance, as a fraction of font size, used for
// characters absent from a table.
const DefaultCharWidth = 0.5

// lineHeightRatio matches CSS line-height: normal for most Western fonts.
const lineHeightRatio = 1.2

// aliases maps alternate font names onto the table that backs them.
var aliases = map[string]string{
	"helvetica": "arial",
}

// Table holds per-character advance widths for one font.
type Table struct {
	name   string
	widths map[rune]float64
}

// Name returns the canonical name of the font table.
func (t *Table) Name() string { return t.name }

// tableEntry guards a single table load so each key is parsed at most once.
type tableEntry struct {
	once  sync.Once
	table *Table
	err   error
}

var tableCache sync.Map // canonical name -> *tableEntry

// Load returns the width table for the named font. The result is memoized
// per font name; repeated and concurrent loads of the same name return the
// identical table.
func Load(name string) (*Table, error) {
	canonical := name
	if target, ok := aliases[name]; ok {
		canonical = target
	}

	v, _ := tableCache.LoadOrStore(canonical, &tableEntry{})
	entry := v.(*tableEntry)
	entry.once.Do(func() {
		entry.table, entry.err = parseTable(canonical)
	})
	return entry.table, entry.err
}

func parseTable(name string) (*Table, error) {
	data, err := tableFS.ReadFile("tables/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown font %q: %w", name, err)
	}

	raw := make(map[string]float64)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("font table %q: %w", name, err)
	}

	widths := make(map[rune]float64, len(raw))
	for s, w := range raw {
		for _, r := range s {
			widths[r] = w
		}
	}
	return &Table{name: name, widths: widths}, nil
}

// TextWidth returns the estimated pixel width of text at fontSize.
// Characters not present in the table use DefaultCharWidth.
func (t *Table) TextWidth(text string, fontSize float64) float64 {
	total := 0.0
	for _, r := range text {
		w, ok := t.widths[r]
		if !ok {
			w = DefaultCharWidth
		}
		total += w
	}
	return total * fontSize
}

// TextHeight returns the estimated line height for fontSize.
func TextHeight(fontSize float64) float64 {
	return fontSize * lineHeightRatio
}

// TextBBox returns the bounding box of text anchored at (x, y), where y is
// the top of the text line. Anchor is "start", "middle", or "end";
// unrecognized values fall back to "start".
func (t *Table) TextBBox(text string, fontSize, x, y float64, anchor string) geometry.Rect {
	w := t.TextWidth(text, fontSize)
	h := TextHeight(fontSize)

	rectX := x
	switch anchor {
	case "middle":
		rectX = x - w/2
	case "end":
		rectX = x - w
	}
	return geometry.Rect{X: rectX, Y: y, Width: w, Height: h}
}
