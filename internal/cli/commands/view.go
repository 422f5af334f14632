package commands

import (
	"github.com/bethropolis/tint/internal/clipboard"
	"github.com/bethropolis/tint/internal/highlighter/lang"
	"github.com/bethropolis/tint/internal/logger"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/bethropolis/tint/internal/tui"
	"github.com/spf13/cobra"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Open a source in the interactive viewer",
		Long: `Open a source in a scrollable terminal viewer.

Keys: arrows or h/j/k/l scroll, PgUp/PgDn page, Home/End jump,
y or c copy the source, q, Esc or Ctrl+C quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := GetRuntime(cmd.Context())
			inputs, err := readInputs(cmd.Context(), cmd, rt.Highlighter, args, rt.Config.Render.Trim)
			if err != nil {
				return err
			}
			in := inputs[0]

			language := lang.JavaScript.Name
			if l := lang.ForFile(in.Name); l != nil {
				language = l.Name
			}

			th := rt.Themes.Current()
			screen, err := tui.New(th.GetStyle(theme.StyleDefault))
			if err != nil {
				return err
			}
			defer screen.Close()

			viewer := tui.NewViewer(screen, in.Source, in.Doc, tui.Options{
				Header:    in.Label(),
				FileName:  in.Label(),
				Language:  language,
				TabWidth:  rt.Config.Highlight.TabWidth,
				Theme:     th,
				Clipboard: clipboard.NewManager(rt.Config.Render.SystemClipboard),
			})
			logger.Debugf("opening viewer for %s", in.Name)
			return viewer.Run()
		},
	}
}
