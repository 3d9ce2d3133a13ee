// Package errors defines the typed error taxonomy for the plot compiler.
//
// Every error carries enough context (offending value, threshold, available
// alternatives) to be actionable without reading source code. Errors are
// raised at their point of detection and propagate unmodified to the
// top-level compile caller; there is no local recovery anywhere in the core.
package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a spec document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures spec validation issues found at the boundary,
// before the compiler runs.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownThemeError indicates a spec referenced a theme name that is not
// registered.
type UnknownThemeError struct {
	Name      string
	Available []string
}

// NewUnknownThemeError constructs an UnknownThemeError listing the themes
// that do exist.
func NewUnknownThemeError(name string, available []string) error {
	return &UnknownThemeError{Name: name, Available: available}
}

func (e *UnknownThemeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown theme %q; available themes: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// ContrastError indicates a theme (or a color map override) fails WCAG AA
// contrast requirements. The accessibility gate is structural: a theme that
// fails can never produce output.
type ContrastError struct {
	Foreground string
	Background string
	Ratio      float64
	Threshold  float64
	Context    string
}

// NewContrastError constructs a ContrastError. The context string names the
// element being checked, e.g. "text at title size 16" or "palette color 3".
func NewContrastError(context, foreground, background string, ratio, threshold float64) error {
	return &ContrastError{
		Foreground: foreground,
		Background: background,
		Ratio:      ratio,
		Threshold:  threshold,
		Context:    context,
	}
}

func (e *ContrastError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf(
		"contrast error: %s: %s on %s has contrast ratio %.2f:1, below the required %.2g:1; darken the foreground or lighten the background",
		e.Context, e.Foreground, e.Background, e.Ratio, e.Threshold)
}

// MissingColumnError indicates a layer references a column absent from the
// data map.
type MissingColumnError struct {
	Geom      string
	Column    string
	Role      string
	Available []string
}

// NewMissingColumnError constructs a MissingColumnError. Role is the axis
// role the column was meant to fill ("x", "y", "color").
func NewMissingColumnError(geom, column, role string, available []string) error {
	return &MissingColumnError{Geom: geom, Column: column, Role: role, Available: available}
}

func (e *MissingColumnError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s geom requires column %q for the %s axis, but data has columns: %s",
		e.Geom, e.Column, e.Role, strings.Join(e.Available, ", "))
}

// TypeMismatchError indicates a geom received the wrong scale kind, e.g. a
// bar geom given a numeric x scale.
type TypeMismatchError struct {
	Geom     string
	Expected string
	Got      string
}

// NewTypeMismatchError constructs a TypeMismatchError.
func NewTypeMismatchError(geom, expected, got string) error {
	return &TypeMismatchError{Geom: geom, Expected: expected, Got: got}
}

func (e *TypeMismatchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s geom requires a %s for the x axis, got %s", e.Geom, e.Expected, e.Got)
}

// UnknownCategoryError indicates a categorical scale was asked to map a
// value outside its fixed domain.
type UnknownCategoryError struct {
	Category   string
	Categories []string
}

// NewUnknownCategoryError constructs an UnknownCategoryError.
func NewUnknownCategoryError(category string, categories []string) error {
	return &UnknownCategoryError{Category: category, Categories: categories}
}

func (e *UnknownCategoryError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown category %q; scale domain is: %s",
		e.Category, strings.Join(e.Categories, ", "))
}

// UnknownGeomError indicates a layer referenced a geom name that is not
// registered.
type UnknownGeomError struct {
	Name      string
	Available []string
}

// NewUnknownGeomError constructs an UnknownGeomError listing registered geoms.
func NewUnknownGeomError(name string, available []string) error {
	return &UnknownGeomError{Name: name, Available: available}
}

func (e *UnknownGeomError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown geom %q; available geoms: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// InvalidColorError indicates a malformed hex color string.
type InvalidColorError struct {
	Value string
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value string) error {
	return &InvalidColorError{Value: value}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid hex color %q; expected format #RRGGBB or #RGB", e.Value)
}

// NiceNumDomainError indicates a non-positive input to the nice-number
// algorithm, which is only defined for positive values.
type NiceNumDomainError struct {
	Value float64
}

// NewNiceNumDomainError constructs a NiceNumDomainError.
func NewNiceNumDomainError(value float64) error {
	return &NiceNumDomainError{Value: value}
}

func (e *NiceNumDomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("nice number input must be positive, got %g", e.Value)
}
