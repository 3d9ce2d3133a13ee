package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	plotforgeerrors "github.com/plotforge/plotforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseJSON decodes a JSON spec document, applies defaults, and validates
// it. Unknown fields are ignored.
func ParseJSON(data []byte) (*PlotSpec, error) {
	// Start from the default spec so omitted sections keep their defaults
	// (legend shown on the right, 800x500 canvas, default theme).
	s := New()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, plotforgeerrors.NewParseError("spec", 0, err)
	}
	s.ApplyDefaults()
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseYAML decodes a YAML spec document, applies defaults, and validates
// it. Unknown fields are ignored.
func ParseYAML(data []byte) (*PlotSpec, error) {
	s := New()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, plotforgeerrors.NewParseError("spec", extractLine(err), err)
	}
	s.ApplyDefaults()
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseFile loads a spec document from disk, choosing the decoder by file
// extension: .json is JSON, .yaml/.yml is YAML.
func ParseFile(path string) (*PlotSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, plotforgeerrors.NewParseError(path, 0, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, plotforgeerrors.NewParseError(path, 0,
			fmt.Errorf("unsupported spec extension %q (want .json, .yaml, or .yml)", filepath.Ext(path)))
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
