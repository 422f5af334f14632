package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewCSSCommand creates the css command.
func NewCSSCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "css",
		Short:   "Print the stylesheet for the active theme",
		Example: `  tint css --theme "Paper Light" > tint.css`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := GetRuntime(cmd.Context())
			_, err := fmt.Fprint(cmd.OutOrStdout(), rt.Themes.Current().CSS())
			return err
		},
	}
}

// NewThemesCommand creates the themes command.
func NewThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long: `List the built-in themes and those loaded from the themes directory.
The active theme is marked with '*'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := GetRuntime(cmd.Context())
			current := rt.Themes.Current().Name
			out := cmd.OutOrStdout()
			for _, name := range rt.Themes.ListThemes() {
				marker := " "
				if strings.EqualFold(name, current) {
					marker = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %s\n", marker, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
