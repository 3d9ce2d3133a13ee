package ticks

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

func TestNiceNumRoundUp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want float64
	}{
		{1.5, 2},
		{3.5, 5},
		{7, 10},
		{0.15, 0.2},
		{1, 1},
		{2, 2},
		{5, 5},
		{10, 10},
		{0.03, 0.05},
		{750, 1000},
	}
	for _, tc := range cases {
		got, err := NiceNum(tc.in, false)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-12, "NiceNum(%v)", tc.in)
	}
}

func TestNiceNumRoundDown(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want float64
	}{
		{1.5, 1},
		{3.5, 2},
		{7, 5},
		{0.15, 0.1},
		{750, 500},
	}
	for _, tc := range cases {
		got, err := NiceNum(tc.in, true)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-12, "NiceNum(%v, down)", tc.in)
	}
}

func TestNiceNumRejectsNonPositive(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, -5} {
		_, err := NiceNum(x, false)

		var domainErr *plotforgeerrors.NiceNumDomainError
		require.ErrorAs(t, err, &domainErr)
		require.InDelta(t, x, domainErr.Value, 1e-12)
	}
}

func TestNiceTicksCoverRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		min, max float64
	}{
		{"0 to 10", 0, 10},
		{"0 to 100", 0, 100},
		{"negative range", -50, 50},
		{"fractional", 0.001, 0.009},
		{"large", 12345, 987654},
		{"tiny offset", 1.0001, 1.0002},
		{"all negative", -90, -10},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := NiceTicks(tc.min, tc.max, DefaultMaxTicks)
			require.NotEmpty(t, result)
			require.True(t, sort.Float64sAreSorted(result))
			require.LessOrEqual(t, result[0], tc.min)
			require.GreaterOrEqual(t, result[len(result)-1], tc.max)

			seen := make(map[float64]struct{})
			for _, v := range result {
				_, dup := seen[v]
				require.False(t, dup, "duplicate tick %v", v)
				seen[v] = struct{}{}
			}
		})
	}
}

func TestNiceTicks0To10(t *testing.T) {
	t.Parallel()

	result := NiceTicks(0, 10, DefaultMaxTicks)
	require.Equal(t, []float64{0, 2, 4, 6, 8, 10}, result)
}

func TestNiceTicksEqualMinMaxZero(t *testing.T) {
	t.Parallel()

	result := NiceTicks(0, 0, DefaultMaxTicks)
	require.True(t, sort.Float64sAreSorted(result))
	require.LessOrEqual(t, result[0], -1.0)
	require.GreaterOrEqual(t, result[len(result)-1], 1.0)
}

func TestNiceTicksEqualMinMaxNonZero(t *testing.T) {
	t.Parallel()

	result := NiceTicks(5, 5, DefaultMaxTicks)
	require.LessOrEqual(t, result[0], 0.0)
	require.GreaterOrEqual(t, result[len(result)-1], 10.0)
}

func TestNiceTicksReversedArguments(t *testing.T) {
	t.Parallel()

	require.Equal(t, NiceTicks(0, 10, DefaultMaxTicks), NiceTicks(10, 0, DefaultMaxTicks))
}

func TestNiceTicksMaxTicksClamped(t *testing.T) {
	t.Parallel()

	result := NiceTicks(0, 10, 0)
	require.NotEmpty(t, result)
	require.LessOrEqual(t, result[0], 0.0)
	require.GreaterOrEqual(t, result[len(result)-1], 10.0)
}

func TestNiceTicksNoFloatNoise(t *testing.T) {
	t.Parallel()

	for _, v := range NiceTicks(0, 0.3, DefaultMaxTicks) {
		label := FormatTick(v)
		require.LessOrEqual(t, len(label), 5, "tick %v formats as %q", v, label)
	}
}

func TestFormatTickIntegral(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2", FormatTick(2.0))
	require.Equal(t, "0", FormatTick(0))
	require.Equal(t, "-15", FormatTick(-15.0))
	require.Equal(t, "1000000", FormatTick(1e6))
}

func TestFormatTickFractional(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.1", FormatTick(0.1))
	require.Equal(t, "2.5", FormatTick(2.5))
	require.Equal(t, "-0.25", FormatTick(-0.25))
}
