// Package scales maps data domains (numeric ranges or category sets) onto
// pixel ranges.
package scales

import (
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

// Scale is the common capability of the x-axis scale union. Bar-like geoms
// type-assert to *Categorical and fail with a TypeMismatchError when the
// compiler resolved a different kind.
type Scale interface {
	// Kind returns a human-readable scale kind for error messages.
	Kind() string
}

// Linear maps a numeric data range onto a pixel range by linear
// interpolation. The mapping is invertible whenever both ranges are
// non-degenerate.
type Linear struct {
	DataMin  float64
	DataMax  float64
	PixelMin float64
	PixelMax float64
}

// Kind implements Scale.
func (s *Linear) Kind() string { return "linear scale" }

// Map converts a data value to a pixel position. A degenerate data range
// maps everything to the pixel midpoint.
func (s *Linear) Map(value float64) float64 {
	if s.DataMax == s.DataMin {
		return (s.PixelMin + s.PixelMax) / 2
	}
	t := (value - s.DataMin) / (s.DataMax - s.DataMin)
	return s.PixelMin + t*(s.PixelMax-s.PixelMin)
}

// Invert converts a pixel position back to a data value. A degenerate
// pixel range maps everything to the data midpoint.
func (s *Linear) Invert(pixel float64) float64 {
	if s.PixelMax == s.PixelMin {
		return (s.DataMin + s.DataMax) / 2
	}
	t := (pixel - s.PixelMin) / (s.PixelMax - s.PixelMin)
	return s.DataMin + t*(s.DataMax-s.DataMin)
}

// Categorical maps a fixed, ordered category list onto evenly spaced bands
// across a pixel range. Each category maps to its band center.
type Categorical struct {
	Categories []string
	PixelMin   float64
	PixelMax   float64

	index map[string]int
}

// NewCategorical builds a categorical scale over an ordered, unique
// category list.
func NewCategorical(categories []string, pixelMin, pixelMax float64) *Categorical {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c] = i
	}
	return &Categorical{
		Categories: categories,
		PixelMin:   pixelMin,
		PixelMax:   pixelMax,
		index:      index,
	}
}

// Kind implements Scale.
func (s *Categorical) Kind() string { return "categorical scale" }

// BandWidth returns the pixel width of one category band.
func (s *Categorical) BandWidth() float64 {
	return (s.PixelMax - s.PixelMin) / float64(len(s.Categories))
}

// Map converts a category to its band-center pixel position. Mapping a
// category outside the fixed domain is a fatal lookup error.
func (s *Categorical) Map(category string) (float64, error) {
	idx, ok := s.index[category]
	if !ok {
		return 0, plotforgeerrors.NewUnknownCategoryError(category, s.Categories)
	}
	return s.PixelMin + s.BandWidth()*(float64(idx)+0.5), nil
}
