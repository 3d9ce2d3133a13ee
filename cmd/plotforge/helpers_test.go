package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// executeCommand runs the root command with args and captures its combined
// output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// writeSpecFile writes a spec document into a temp directory and returns
// its path.
func writeSpecFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing spec fixture: %v", err)
	}
	return path
}

const scatterSpecYAML = `
data:
  columns:
    revenue: [10, 20, 30, 40]
    cost: [5, 15, 10, 25]
layers:
  - geom: scatter
    x: revenue
    y: cost
labels:
  title: Revenue vs Cost
theme: default
`
