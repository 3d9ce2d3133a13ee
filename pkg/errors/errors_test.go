package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("spec.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "spec.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "spec.yaml")
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("layers[1].geom", "geom is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "layers[1].geom", validationErr.Field)
	require.Contains(t, validationErr.Message, "geom is required")
}

func TestUnknownThemeErrorListsAvailable(t *testing.T) {
	t.Parallel()

	err := NewUnknownThemeError("neon", []string{"bluesky", "default", "print"})

	var themeErr *UnknownThemeError
	require.ErrorAs(t, err, &themeErr)
	require.Equal(t, "neon", themeErr.Name)
	require.Contains(t, err.Error(), "bluesky, default, print")
}

func TestContrastErrorCarriesRatioAndThreshold(t *testing.T) {
	t.Parallel()

	err := NewContrastError("text at title size 16", "#DDDDDD", "#FFFFFF", 1.35, 4.5)

	var contrastErr *ContrastError
	require.ErrorAs(t, err, &contrastErr)
	require.Equal(t, "#DDDDDD", contrastErr.Foreground)
	require.Equal(t, "#FFFFFF", contrastErr.Background)
	require.InDelta(t, 1.35, contrastErr.Ratio, 1e-9)
	require.InDelta(t, 4.5, contrastErr.Threshold, 1e-9)
	require.Contains(t, err.Error(), "1.35:1")
	require.Contains(t, err.Error(), "4.5:1")
}

func TestMissingColumnErrorListsColumns(t *testing.T) {
	t.Parallel()

	err := NewMissingColumnError("scatter", "price", "y", []string{"date", "volume"})

	var colErr *MissingColumnError
	require.ErrorAs(t, err, &colErr)
	require.Equal(t, "price", colErr.Column)
	require.Equal(t, "y", colErr.Role)
	require.Contains(t, err.Error(), "date, volume")
}

func TestTypeMismatchErrorNamesScaleKinds(t *testing.T) {
	t.Parallel()

	err := NewTypeMismatchError("bar", "categorical scale", "linear scale")

	var mismatchErr *TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	require.Contains(t, err.Error(), "bar geom requires a categorical scale")
	require.Contains(t, err.Error(), "got linear scale")
}

func TestUnknownCategoryErrorListsDomain(t *testing.T) {
	t.Parallel()

	err := NewUnknownCategoryError("D", []string{"A", "B", "C"})

	var catErr *UnknownCategoryError
	require.ErrorAs(t, err, &catErr)
	require.Equal(t, "D", catErr.Category)
	require.Contains(t, err.Error(), "A, B, C")
}

func TestUnknownGeomErrorListsAvailable(t *testing.T) {
	t.Parallel()

	err := NewUnknownGeomError("violin", []string{"bar", "line", "scatter", "waterfall"})

	var geomErr *UnknownGeomError
	require.ErrorAs(t, err, &geomErr)
	require.Equal(t, "violin", geomErr.Name)
	require.Contains(t, err.Error(), "bar, line, scatter, waterfall")
}

func TestInvalidColorErrorShowsValue(t *testing.T) {
	t.Parallel()

	err := NewInvalidColorError("#12345")

	var colorErr *InvalidColorError
	require.ErrorAs(t, err, &colorErr)
	require.Contains(t, err.Error(), "#12345")
	require.Contains(t, err.Error(), "#RRGGBB")
}

func TestNiceNumDomainErrorShowsValue(t *testing.T) {
	t.Parallel()

	err := NewNiceNumDomainError(-5)

	var domainErr *NiceNumDomainError
	require.ErrorAs(t, err, &domainErr)
	require.InDelta(t, -5.0, domainErr.Value, 1e-9)
	require.Contains(t, err.Error(), "-5")
}
