package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plotforge/plotforge/internal/spec"
)

type themesOptions struct {
	jsonOutput bool
}

func newThemesCmd() *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type themeInfo struct {
	Name       string `json:"name"`
	AliasFor   string `json:"alias_for,omitempty"`
	FontFamily string `json:"font_family"`
	Background string `json:"background"`
	Colors     int    `json:"palette_colors"`
}

func runThemes(cmd *cobra.Command, opts *themesOptions) error {
	infos := make([]themeInfo, 0, len(spec.ThemeNames()))
	for _, name := range spec.ThemeNames() {
		theme, err := spec.ResolveTheme(name)
		if err != nil {
			return err
		}
		info := themeInfo{
			Name:       name,
			FontFamily: theme.FontFamily,
			Background: theme.BackgroundColor,
			Colors:     len(theme.Palette),
		}
		if canonical, ok := spec.ThemeAlias(name); ok {
			info.AliasFor = canonical
		}
		infos = append(infos, info)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render("Themes"))

	// Font stacks are long; keep the table readable on narrow terminals.
	maxFont := terminalWidth() / 3
	if maxFont < 16 {
		maxFont = 16
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tFONT\tBACKGROUND\tCOLORS")
	for _, info := range infos {
		name := nameStyle.Render(info.Name)
		if info.AliasFor != "" {
			name = info.Name + " " + aliasStyle.Render("(alias for "+info.AliasFor+")")
		}
		font := info.FontFamily
		if len(font) > maxFont {
			font = font[:maxFont-3] + "..."
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n", name, font, info.Background, info.Colors)
	}
	return writer.Flush()
}
