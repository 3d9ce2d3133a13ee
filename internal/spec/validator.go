package spec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used across the spec package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate runs the boundary checks on a parsed spec: every layer must
// name a geom and both axis columns, the legend position must be one of
// top/bottom/left/right, and the canvas size must be positive. Geom and
// theme name resolution stays with the compiler, which reports richer
// errors listing the registered alternatives.
func Validate(s *PlotSpec) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError translates validator failures into the package's
// typed ValidationError with a JSON-path style field name.
func convertValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return plotforgeerrors.NewValidationError("", err.Error(), err)
	}

	first := validationErrs[0]
	field := namespaceToPath(first.StructNamespace())

	message := ""
	switch first.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", first.StructField())
	case "oneof":
		message = fmt.Sprintf("must be one of: %s", strings.ReplaceAll(first.Param(), " ", ", "))
	case "gt":
		message = fmt.Sprintf("must be greater than %s", first.Param())
	default:
		message = fmt.Sprintf("failed %q validation", first.Tag())
	}

	return plotforgeerrors.NewValidationError(field, message, err)
}

// namespaceToPath converts "PlotSpec.Layers[0].Geom" into "layers[0].geom".
func namespaceToPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the root struct name
	}
	for i, part := range parts {
		idx := strings.IndexByte(part, '[')
		if idx < 0 {
			parts[i] = lowerFirst(part)
			continue
		}
		parts[i] = lowerFirst(part[:idx]) + part[idx:]
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
