// Package ticks generates human-friendly axis tick values using the
// Heckbert nice-numbers algorithm.
//
// Reference: Paul S. Heckbert, "Nice Numbers for Graph Labels",
// Graphics Gems, Academic Press, 1990, pp. 61-63.
package ticks

import (
	"math"
	"strconv"

	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

// DefaultMaxTicks is the tick count target used when a caller has no
// stronger preference.
const DefaultMaxTicks = 7

// NiceNum returns a "nice" number (1, 2, or 5 times a power of 10)
// approximately equal to x. When roundDown is false the result is >= x;
// when true the result is <= x. x must be positive.
func NiceNum(x float64, roundDown bool) (float64, error) {
	if x <= 0 {
		return 0, plotforgeerrors.NewNiceNumDomainError(x)
	}

	exp := math.Floor(math.Log10(x))
	pow := math.Pow(10, exp)
	frac := x / pow // in [1, 10)

	var nice float64
	if roundDown {
		switch {
		case frac < 2:
			nice = 1
		case frac < 5:
			nice = 2
		default:
			nice = 5
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * pow, nil
}

// NiceTicks generates nicely spaced tick values covering dataMin..dataMax.
// maxTicks is clamped to at least 2. The result is sorted, duplicate-free,
// and spans the data range: the first tick is <= dataMin and the last is
// >= dataMax. Reversed arguments are swapped; an equal min/max pair is
// padded symmetrically so real ticks are still produced.
func NiceTicks(dataMin, dataMax float64, maxTicks int) []float64 {
	if maxTicks < 2 {
		maxTicks = 2
	}

	if dataMin == dataMax {
		if dataMin == 0 {
			dataMin, dataMax = -1, 1
		} else {
			pad := math.Abs(dataMin)
			dataMin -= pad
			dataMax += pad
		}
	}

	if dataMin > dataMax {
		dataMin, dataMax = dataMax, dataMin
	}

	dataRange := dataMax - dataMin
	if dataRange < 1e-15 {
		return []float64{dataMin}
	}

	// Cannot fail: the range is positive here.
	spacing, _ := NiceNum(dataRange/float64(maxTicks-1), false)
	graphMin := math.Floor(dataMin/spacing) * spacing
	graphMax := math.Ceil(dataMax/spacing) * spacing

	// Round each tick to enough decimal places to represent the spacing
	// faithfully, suppressing float accumulation noise.
	nfrac := int(math.Max(0, -math.Floor(math.Log10(spacing)))) + 1
	roundFactor := math.Pow(10, float64(nfrac))

	var out []float64
	seen := make(map[float64]struct{})
	// The half-spacing guard keeps float drift from dropping the last tick.
	for t := graphMin; t <= graphMax+spacing*0.5; t += spacing {
		v := math.Round(t*roundFactor) / roundFactor
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// FormatTick formats a tick value for axis display. Integral values render
// without a decimal point; fractional values use up to 10 significant
// digits with trailing zeros stripped.
func FormatTick(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) && !math.IsNaN(value) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'g', 10, 64)
}
