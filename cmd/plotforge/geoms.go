package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotforge/plotforge/internal/geom"
)

func newGeomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geoms",
		Short: "List the registered geometry types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render("Geoms"))
			for _, name := range geom.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+nameStyle.Render(name))
			}
			return nil
		},
	}

	return cmd
}
