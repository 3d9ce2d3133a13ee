// Package colors provides hex color parsing, deterministic group-to-color
// palette assignment, and WCAG relative luminance and contrast calculations.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

// DefaultPalette is a colorblind-friendly palette whose entries all meet
// WCAG AA graphical-element contrast (3.0:1) against a white background.
var DefaultPalette = []string{
	"#4E79A7", // steel blue
	"#C56A00", // orange
	"#E15759", // red
	"#4A8B86", // teal
	"#59A14F", // green
	"#A68B00", // gold
	"#B07AA1", // purple
	"#C4636E", // rose
	"#9C755F", // brown
	"#7B7573", // gray
}

// HexToRGB parses a hex color string into its 8-bit channel values.
// Accepts #RGB, RGB, #RRGGBB, and RRGGBB forms.
func HexToRGB(hex string) (r, g, b int, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = strings.Repeat(string(h[0]), 2) +
			strings.Repeat(string(h[1]), 2) +
			strings.Repeat(string(h[2]), 2)
	}
	if len(h) != 6 {
		return 0, 0, 0, plotforgeerrors.NewInvalidColorError(hex)
	}
	channels := [3]int{}
	for i := 0; i < 3; i++ {
		v, parseErr := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if parseErr != nil {
			return 0, 0, 0, plotforgeerrors.NewInvalidColorError(hex)
		}
		channels[i] = int(v)
	}
	return channels[0], channels[1], channels[2], nil
}

// RGBToHex formats 8-bit channel values as an uppercase #RRGGBB string.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Assignment is one group-to-color pairing in first-seen order.
type Assignment struct {
	Group string
	Color string
}

// ColorMap is an insertion-ordered mapping from group name to hex color.
// Iteration order is first-seen group order, which determines both palette
// assignment and legend entry order.
type ColorMap struct {
	order  []string
	colors map[string]string
}

// NewColorMap creates an empty ColorMap.
func NewColorMap() *ColorMap {
	return &ColorMap{colors: make(map[string]string)}
}

// Set assigns a color to a group. The first Set for a group fixes its
// position in iteration order; later Sets overwrite the color in place.
func (m *ColorMap) Set(group, color string) {
	if _, ok := m.colors[group]; !ok {
		m.order = append(m.order, group)
	}
	m.colors[group] = color
}

// Get returns the color assigned to a group.
func (m *ColorMap) Get(group string) (string, bool) {
	if m == nil {
		return "", false
	}
	color, ok := m.colors[group]
	return color, ok
}

// GetOr returns the color assigned to a group, or fallback when absent.
func (m *ColorMap) GetOr(group, fallback string) string {
	if color, ok := m.Get(group); ok {
		return color
	}
	return fallback
}

// Len returns the number of groups.
func (m *ColorMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Entries returns the assignments in first-seen group order.
func (m *ColorMap) Entries() []Assignment {
	if m == nil {
		return nil
	}
	entries := make([]Assignment, 0, len(m.order))
	for _, group := range m.order {
		entries = append(entries, Assignment{Group: group, Color: m.colors[group]})
	}
	return entries
}

// AssignColors maps each unique group name to a palette color. First-seen
// order determines assignment order; the palette cycles when there are more
// groups than entries. Duplicate groups do not create new entries.
func AssignColors(groups []string, palette []string) *ColorMap {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	m := NewColorMap()
	for _, group := range groups {
		if _, ok := m.Get(group); ok {
			continue
		}
		m.Set(group, palette[m.Len()%len(palette)])
	}
	return m
}

// linearize converts an sRGB channel in [0, 1] to linear light.
func linearize(channel float64) float64 {
	if channel <= 0.04045 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// RelativeLuminance computes the WCAG relative luminance of a hex color,
// a value between 0.0 (black) and 1.0 (white).
//
// See https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func RelativeLuminance(hex string) (float64, error) {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return 0, err
	}
	rLin := linearize(float64(r) / 255.0)
	gLin := linearize(float64(g) / 255.0)
	bLin := linearize(float64(b) / 255.0)
	return 0.2126*rLin + 0.7152*gLin + 0.0722*bLin, nil
}

// ContrastRatio computes the WCAG contrast ratio between two hex colors,
// a value between 1.0 (identical luminance) and 21.0 (black vs white).
//
// See https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio
func ContrastRatio(colorA, colorB string) (float64, error) {
	lumA, err := RelativeLuminance(colorA)
	if err != nil {
		return 0, err
	}
	lumB, err := RelativeLuminance(colorB)
	if err != nil {
		return 0, err
	}
	if lumB > lumA {
		lumA, lumB = lumB, lumA
	}
	return (lumA + 0.05) / (lumB + 0.05), nil
}
