package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plotforge/plotforge/internal/compiler"
	"github.com/plotforge/plotforge/internal/logger"
	"github.com/plotforge/plotforge/internal/render"
	"github.com/plotforge/plotforge/internal/spec"
)

type renderOptions struct {
	output string
	theme  string
	width  float64
	height float64
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <spec-file>",
		Short: "Compile a plot spec (JSON or YAML) and write the SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, rootFlags)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Override the spec's theme")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Override the canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Override the canvas height in pixels")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions, rootFlags *rootFlags) error {
	log, err := newCommandLogger(rootFlags)
	if err != nil {
		return err
	}

	s, err := spec.ParseFile(path)
	if err != nil {
		return err
	}
	if opts.theme != "" {
		s.Theme = opts.theme
	}
	if opts.width > 0 {
		s.Size.Width = opts.width
	}
	if opts.height > 0 {
		s.Size.Height = opts.height
	}

	compiled, err := compiler.New(log).Compile(s)
	if err != nil {
		return err
	}

	if opts.output == "" {
		render.WriteSVG(cmd.OutOrStdout(), compiled)
		return nil
	}

	file, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	render.WriteSVG(file, compiled)
	if err := file.Close(); err != nil {
		return err
	}

	log.WithFields(map[string]any{"path": opts.output}).Info("plot written")
	return nil
}

// newCommandLogger builds the per-command logger: silent unless --verbose.
func newCommandLogger(rootFlags *rootFlags) (*logger.Logger, error) {
	if !rootFlags.verbose {
		return nil, nil
	}
	return logger.New(logger.Options{Level: "debug", HumanReadable: true})
}
