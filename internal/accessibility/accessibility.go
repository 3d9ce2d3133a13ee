// Package accessibility enforces WCAG 2.1 AA contrast requirements on
// themes. The check is a structural gate, not a configurable lint: a theme
// that fails can never produce output, and there is no bypass path.
package accessibility

import (
	"fmt"

	"github.com/plotforge/plotforge/internal/colors"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

// WCAG 2.1 AA minimum contrast ratios.
const (
	NormalTextRatio    = 4.5 // text below the large-text threshold
	LargeTextRatio     = 3.0 // text at or above 18px
	GraphicalRatio     = 3.0 // non-text graphical elements
	LargeTextThreshold = 18.0
)

// textThreshold returns the AA ratio required for text at fontSize.
func textThreshold(fontSize float64) float64 {
	if fontSize >= LargeTextThreshold {
		return LargeTextRatio
	}
	return NormalTextRatio
}

// CheckTextContrast verifies that text meets WCAG AA contrast against its
// background at the given font size.
func CheckTextContrast(textColor, backgroundColor string, fontSize float64) error {
	ratio, err := colors.ContrastRatio(textColor, backgroundColor)
	if err != nil {
		return err
	}
	threshold := textThreshold(fontSize)
	if ratio < threshold {
		return plotforgeerrors.NewContrastError(
			fmt.Sprintf("text at font size %g", fontSize),
			textColor, backgroundColor, ratio, threshold)
	}
	return nil
}

// CheckPaletteContrast verifies that every palette color has at least the
// graphical-element contrast ratio against the background.
func CheckPaletteContrast(palette []string, backgroundColor string) error {
	for i, color := range palette {
		ratio, err := colors.ContrastRatio(color, backgroundColor)
		if err != nil {
			return err
		}
		if ratio < GraphicalRatio {
			return plotforgeerrors.NewContrastError(
				fmt.Sprintf("palette color %d (%s)", i, color),
				color, backgroundColor, ratio, GraphicalRatio)
		}
	}
	return nil
}

// CheckColorOverrides verifies user-supplied color map overrides against
// the background. Overrides are subject to the same structural gate as the
// theme palette.
func CheckColorOverrides(overrides map[string]string, backgroundColor string) error {
	for group, color := range overrides {
		ratio, err := colors.ContrastRatio(color, backgroundColor)
		if err != nil {
			return err
		}
		if ratio < GraphicalRatio {
			return plotforgeerrors.NewContrastError(
				fmt.Sprintf("color override for group %q (%s)", group, color),
				color, backgroundColor, ratio, GraphicalRatio)
		}
	}
	return nil
}

// CheckAdjacentContrast reports whether consecutive palette entries are
// visually distinguishable from each other. This is an advisory helper for
// palette authors; it is not part of the hard compile gate.
func CheckAdjacentContrast(palette []string, minRatio float64) error {
	for i := 0; i+1 < len(palette); i++ {
		ratio, err := colors.ContrastRatio(palette[i], palette[i+1])
		if err != nil {
			return err
		}
		if ratio < minRatio {
			return plotforgeerrors.NewContrastError(
				fmt.Sprintf("adjacent palette colors %d (%s) and %d (%s)", i, palette[i], i+1, palette[i+1]),
				palette[i], palette[i+1], ratio, minRatio)
		}
	}
	return nil
}

// ValidateTheme runs the full accessibility gate for a theme: text contrast
// at the title, label, and tick font sizes, then every palette color against
// the background. Invoked unconditionally at the start of every compile.
func ValidateTheme(textColor, backgroundColor string, palette []string, titleSize, labelSize, tickSize float64) error {
	for _, size := range []float64{titleSize, labelSize, tickSize} {
		if err := CheckTextContrast(textColor, backgroundColor, size); err != nil {
			return err
		}
	}
	return CheckPaletteContrast(palette, backgroundColor)
}
