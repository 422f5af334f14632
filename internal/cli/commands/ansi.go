package commands

import (
	"fmt"

	"github.com/bethropolis/tint/internal/render"
	"github.com/spf13/cobra"
)

// NewANSICommand creates the ansi command.
func NewANSICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ansi [files...]",
		Short: "Print sources highlighted for the terminal",
		Example: `  tint ansi app.js
  tint ansi --color 256 --theme "Paper Light" app.js
  cat app.js | tint ansi --color none`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := GetRuntime(cmd.Context())
			inputs, err := readInputs(cmd.Context(), cmd, rt.Highlighter, args, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			profile, err := render.ColorProfile(rt.Config.Render.Color, out)
			if err != nil {
				return err
			}

			th := rt.Themes.Current()
			for i, in := range inputs {
				if len(inputs) > 1 {
					if i > 0 {
						_, _ = fmt.Fprintln(out)
					}
					_, _ = fmt.Fprintf(out, "==> %s <==\n", in.Name)
				}
				if _, err := fmt.Fprintln(out, render.ANSI(in.Doc, th, profile)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
