package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotforge/plotforge/internal/compiler"
	"github.com/plotforge/plotforge/internal/spec"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <spec-file>",
		Short: "Check a plot spec without writing output",
		Long: "Validate parses the spec, resolves its theme and geoms, runs the " +
			"WCAG contrast gate, and compiles the full plot. Success means " +
			"render would succeed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], rootFlags)
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, path string, rootFlags *rootFlags) error {
	log, err := newCommandLogger(rootFlags)
	if err != nil {
		return err
	}

	s, err := spec.ParseFile(path)
	if err != nil {
		return err
	}

	compiled, err := compiler.New(log).Compile(s)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d layers, %d primitives, theme %q\n",
		okStyle.Render("valid"), path, len(s.Layers), len(compiled.Primitives), s.Theme)
	return nil
}
