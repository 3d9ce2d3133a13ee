package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCommand_ValidSpec(t *testing.T) {
	path := writeSpecFile(t, "scatter.yaml", scatterSpecYAML)

	output, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, output, "valid")
	require.Contains(t, output, "1 layers")
}

func TestValidateCommand_MissingColumnFails(t *testing.T) {
	path := writeSpecFile(t, "bad.yaml", `
data:
  columns:
    revenue: [10, 20]
layers:
  - geom: scatter
    x: revenue
    y: profit
`)

	_, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "profit")
}

func TestValidateCommand_UnknownGeomFails(t *testing.T) {
	path := writeSpecFile(t, "bad.yaml", `
data:
  columns:
    revenue: [10, 20]
    cost: [1, 2]
layers:
  - geom: hexbin
    x: revenue
    y: cost
`)

	_, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "hexbin")
}
