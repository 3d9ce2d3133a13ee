package geom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotforge/plotforge/internal/spec"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

func TestFloat64Coercion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{3.5, 3.5, true},
		{int(7), 7, true},
		{int64(-2), -2, true},
		{"12.5", 12.5, true},
		{"not a number", 0, false},
		{true, 1, true},
		{nil, 0, false},
		{[]any{1}, 0, false},
	}
	for _, tc := range cases {
		got, ok := Float64(tc.in)
		require.Equal(t, tc.ok, ok, "input %v", tc.in)
		if ok {
			require.InDelta(t, tc.want, got, 1e-9, "input %v", tc.in)
		}
	}
}

func TestNumericValuesSkipsBadCells(t *testing.T) {
	t.Parallel()

	got := NumericValues([]any{1, "2", "oops", 3.5, nil})
	require.Equal(t, []float64{1, 2, 3.5}, got)
}

func TestCategoryValues(t *testing.T) {
	t.Parallel()

	got := CategoryValues([]any{"Q1", 2, 2.5, true})
	require.Equal(t, []string{"Q1", "2", "2.5", "true"}, got)
}

func TestNumericPairsTruncatesAndSkips(t *testing.T) {
	t.Parallel()

	xs, ys, rows := NumericPairs(
		[]any{1, 2, "bad", 4, 5},
		[]any{10, 20, 30, 40},
	)
	require.Equal(t, []float64{1, 2, 4}, xs)
	require.Equal(t, []float64{10, 20, 40}, ys)
	require.Equal(t, []int{0, 1, 3}, rows)
}

func TestCategoryValuePairs(t *testing.T) {
	t.Parallel()

	cats, vals, rows := CategoryValuePairs(
		[]any{"a", "b", "c"},
		[]any{1, "nope", 3},
	)
	require.Equal(t, []string{"a", "c"}, cats)
	require.Equal(t, []float64{1, 3}, vals)
	require.Equal(t, []int{0, 2}, rows)
}

func TestRequireColumns(t *testing.T) {
	t.Parallel()

	data := &spec.DataSpec{Columns: map[string][]any{
		"month": {"Jan"},
		"sales": {100},
	}}

	require.NoError(t, RequireColumns("bar", data,
		ColumnRef{Column: "month", Role: "x"},
		ColumnRef{Column: "sales", Role: "y"},
	))

	err := RequireColumns("bar", data,
		ColumnRef{Column: "month", Role: "x"},
		ColumnRef{Column: "revenue", Role: "y"},
	)
	var missingErr *plotforgeerrors.MissingColumnError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "revenue", missingErr.Column)
	require.Equal(t, "y", missingErr.Role)
	require.Equal(t, []string{"month", "sales"}, missingErr.Available)

	// Empty refs are skipped, so optional columns can be passed through.
	require.NoError(t, RequireColumns("bar", data, ColumnRef{Column: "", Role: "color"}))
}

func TestGroupColumn(t *testing.T) {
	t.Parallel()

	data := &spec.DataSpec{Columns: map[string][]any{
		"region": {"west", "east", "west"},
	}}

	layer := &spec.LayerSpec{Color: "region"}
	require.Equal(t, []string{"west", "east", "west"}, GroupColumn(layer, data))

	require.Nil(t, GroupColumn(&spec.LayerSpec{}, data))
	require.Nil(t, GroupColumn(&spec.LayerSpec{Color: "absent"}, data))
}
