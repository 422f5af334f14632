package commands

import (
	"fmt"

	"github.com/bethropolis/tint/internal/render"
	"github.com/spf13/cobra"
)

// NewMarkdownCommand creates the markdown command.
func NewMarkdownCommand() *cobra.Command {
	var fragment bool

	cmd := &cobra.Command{
		Use:   "markdown [file]",
		Short: "Convert Markdown to HTML with highlighted code blocks",
		Long: `Convert a Markdown document (GitHub flavored) to HTML. Fenced code
blocks in a registered language become highlighted code blocks labelled
with the fence language; other fences are escaped as-is.`,
		Example: `  tint markdown README.md > readme.html
  tint markdown --fragment notes.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := GetRuntime(cmd.Context())

			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}
			var stdin = cmd.InOrStdin()
			if name != stdinName {
				stdin = nil
			}
			src, err := readSource(name, stdin)
			if err != nil {
				return err
			}

			conv := render.NewMarkdownConverter(render.BlockOptions{
				Trim:       rt.Config.Render.Trim,
				Classifier: rt.Highlighter,
			})
			body, err := conv.ToHTML(cmd.Context(), src)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if fragment {
				_, err = fmt.Fprint(out, body)
				return err
			}
			title := input{Name: name}.Label()
			if title == "" {
				title = "tint"
			}
			page, err := render.Page(title, []string{body}, rt.Themes.Current())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, page)
			return err
		},
	}

	cmd.Flags().BoolVar(&fragment, "fragment", false, "Print only the converted body, without the page wrapper")
	return cmd
}
