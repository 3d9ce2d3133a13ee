package colors

import (
	"testing"

	"github.com/stretchr/testify/require"

	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

func TestHexToRGBLongForm(t *testing.T) {
	t.Parallel()

	r, g, b, err := HexToRGB("#4E79A7")
	require.NoError(t, err)
	require.Equal(t, []int{0x4E, 0x79, 0xA7}, []int{r, g, b})
}

func TestHexToRGBShortForm(t *testing.T) {
	t.Parallel()

	r, g, b, err := HexToRGB("#abc")
	require.NoError(t, err)
	require.Equal(t, []int{0xAA, 0xBB, 0xCC}, []int{r, g, b})
}

func TestHexToRGBWithoutHash(t *testing.T) {
	t.Parallel()

	r, g, b, err := HexToRGB("FFFFFF")
	require.NoError(t, err)
	require.Equal(t, []int{255, 255, 255}, []int{r, g, b})
}

func TestHexToRGBRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12345", "#GGGGGG", "#12", "not a color"} {
		_, _, _, err := HexToRGB(input)

		var colorErr *plotforgeerrors.InvalidColorError
		require.ErrorAs(t, err, &colorErr, "input %q", input)
	}
}

func TestRGBToHexUppercaseZeroPadded(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#000000", RGBToHex(0, 0, 0))
	require.Equal(t, "#FFFFFF", RGBToHex(255, 255, 255))
	require.Equal(t, "#0A0B0C", RGBToHex(10, 11, 12))
}

func TestHexRGBRoundTrip(t *testing.T) {
	t.Parallel()

	for _, rgb := range [][3]int{{0, 0, 0}, {255, 255, 255}, {78, 121, 167}, {1, 2, 3}, {200, 100, 50}} {
		hex := RGBToHex(rgb[0], rgb[1], rgb[2])
		r, g, b, err := HexToRGB(hex)
		require.NoError(t, err)
		require.Equal(t, rgb, [3]int{r, g, b})
	}
}

func TestAssignColorsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	m := AssignColors([]string{"b", "a", "b", "c", "a"}, []string{"#111111", "#222222", "#333333"})

	require.Equal(t, []Assignment{
		{Group: "b", Color: "#111111"},
		{Group: "a", Color: "#222222"},
		{Group: "c", Color: "#333333"},
	}, m.Entries())
}

func TestAssignColorsCyclesPalette(t *testing.T) {
	t.Parallel()

	m := AssignColors([]string{"a", "b", "c"}, []string{"#111111", "#222222"})

	require.Equal(t, "#111111", m.GetOr("a", ""))
	require.Equal(t, "#222222", m.GetOr("b", ""))
	require.Equal(t, "#111111", m.GetOr("c", ""))
}

func TestAssignColorsDeterministic(t *testing.T) {
	t.Parallel()

	groups := []string{"x", "y", "x", "z", "y", "w"}
	first := AssignColors(groups, nil)
	second := AssignColors(groups, nil)
	require.Equal(t, first.Entries(), second.Entries())
}

func TestColorMapSetPreservesPosition(t *testing.T) {
	t.Parallel()

	m := NewColorMap()
	m.Set("a", "#111111")
	m.Set("b", "#222222")
	m.Set("a", "#333333")

	require.Equal(t, []Assignment{
		{Group: "a", Color: "#333333"},
		{Group: "b", Color: "#222222"},
	}, m.Entries())
}

func TestRelativeLuminanceExtremes(t *testing.T) {
	t.Parallel()

	black, err := RelativeLuminance("#000000")
	require.NoError(t, err)
	require.InDelta(t, 0.0, black, 1e-9)

	white, err := RelativeLuminance("#FFFFFF")
	require.NoError(t, err)
	require.InDelta(t, 1.0, white, 1e-9)
}

func TestContrastRatioBlackWhite(t *testing.T) {
	t.Parallel()

	ratio, err := ContrastRatio("#000000", "#FFFFFF")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 0.05)
}

func TestContrastRatioSymmetric(t *testing.T) {
	t.Parallel()

	forward, err := ContrastRatio("#4E79A7", "#FFFFFF")
	require.NoError(t, err)
	backward, err := ContrastRatio("#FFFFFF", "#4E79A7")
	require.NoError(t, err)
	require.InDelta(t, forward, backward, 1e-12)
}

func TestContrastRatioIdenticalColors(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#000000", "#FFFFFF", "#4E79A7", "#abc"} {
		ratio, err := ContrastRatio(hex, hex)
		require.NoError(t, err)
		require.InDelta(t, 1.0, ratio, 1e-12)
	}
}

func TestDefaultPaletteMeetsGraphicalContrast(t *testing.T) {
	t.Parallel()

	for _, color := range DefaultPalette {
		ratio, err := ContrastRatio(color, "#FFFFFF")
		require.NoError(t, err)
		require.GreaterOrEqual(t, ratio, 3.0, "palette color %s", color)
	}
}
