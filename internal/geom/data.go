package geom

import (
	"strconv"

	"github.com/plotforge/plotforge/internal/spec"
	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

// Float64 coerces one data cell to a number. JSON decoding yields float64,
// YAML yields int or float64, and numeric strings are parsed; anything
// else fails coercion.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// CellString renders one data cell as a category label.
func CellString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return ""
	}
}

// NumericValues extracts the coercible numbers from a column, skipping
// cells that cannot be read as numbers. Used for scale hints, which only
// have to bound the axis.
func NumericValues(column []any) []float64 {
	out := make([]float64, 0, len(column))
	for _, v := range column {
		if f, ok := Float64(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// CategoryValues renders every cell of a column as a category label.
func CategoryValues(column []any) []string {
	out := make([]string, 0, len(column))
	for _, v := range column {
		out = append(out, CellString(v))
	}
	return out
}

// NumericPairs pairs the x and y columns row by row, up to the shorter
// column's length, dropping rows where either cell fails numeric coercion.
// Keeping the skip behavior aligned with NumericValues means compiled
// geometry never exceeds the hinted axis range. The returned rows are the
// original row indices of the kept pairs, for aligning per-row columns
// such as the color column.
func NumericPairs(xColumn, yColumn []any) (xs, ys []float64, rows []int) {
	n := len(xColumn)
	if len(yColumn) < n {
		n = len(yColumn)
	}
	for i := 0; i < n; i++ {
		x, okX := Float64(xColumn[i])
		y, okY := Float64(yColumn[i])
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
		rows = append(rows, i)
	}
	return xs, ys, rows
}

// CategoryValuePairs pairs a categorical x column with a numeric y column
// row by row, dropping rows where the y cell fails coercion. The returned
// rows are the original row indices of the kept pairs.
func CategoryValuePairs(xColumn, yColumn []any) (categories []string, values []float64, rows []int) {
	n := len(xColumn)
	if len(yColumn) < n {
		n = len(yColumn)
	}
	for i := 0; i < n; i++ {
		y, ok := Float64(yColumn[i])
		if !ok {
			continue
		}
		categories = append(categories, CellString(xColumn[i]))
		values = append(values, y)
		rows = append(rows, i)
	}
	return categories, values, rows
}

// RequireColumns verifies that every referenced column exists in the data,
// reporting the first missing one with its axis role.
func RequireColumns(geomName string, data *spec.DataSpec, refs ...ColumnRef) error {
	for _, ref := range refs {
		if ref.Column == "" {
			continue
		}
		if _, ok := data.Columns[ref.Column]; !ok {
			return plotforgeerrors.NewMissingColumnError(geomName, ref.Column, ref.Role, data.ColumnNames())
		}
	}
	return nil
}

// ColumnRef names a column and the axis role it fills.
type ColumnRef struct {
	Column string
	Role   string
}

// GroupColumn returns the layer's color column as strings, or nil when the
// layer is ungrouped or the column is absent.
func GroupColumn(layer *spec.LayerSpec, data *spec.DataSpec) []string {
	if layer.Color == "" {
		return nil
	}
	column, ok := data.Columns[layer.Color]
	if !ok {
		return nil
	}
	return CategoryValues(column)
}
