package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tint/internal/render"
	"github.com/spf13/cobra"
)

// NewHTMLCommand creates the html command.
func NewHTMLCommand() *cobra.Command {
	var (
		standalone bool
		header     string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "html [files...]",
		Short: "Render sources as highlighted HTML code blocks",
		Long: `Render each source as a code block: an optional header with window
dots, the highlighted code, and a copy button carrying the original text.

Reads standard input when no file is given.`,
		Example: `  # Fragment for embedding
  tint html app.js

  # Complete page with the theme's stylesheet
  tint html --standalone --theme "Paper Light" a.js b.ts > snippets.html

  # From stdin with a custom label
  echo 'const x = 5;' | tint html --header example.js`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := GetRuntime(cmd.Context())
			inputs, err := readInputs(cmd.Context(), cmd, rt.Highlighter, args, rt.Config.Render.Trim)
			if err != nil {
				return err
			}

			blocks := make([]string, len(inputs))
			for i, in := range inputs {
				label := in.Label()
				if cmd.Flags().Changed("header") {
					label = header
				}
				blocks[i] = render.DocumentBlock(in.Source, in.Doc, label)
			}

			out := cmd.OutOrStdout()
			if !standalone {
				_, err := fmt.Fprintln(out, strings.Join(blocks, "\n"))
				return err
			}

			if title == "" {
				title = pageTitle(inputs)
			}
			page, err := render.Page(title, blocks, rt.Themes.Current())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, page)
			return err
		},
	}

	cmd.Flags().BoolVar(&standalone, "standalone", false, "Wrap the blocks in a complete HTML page with the theme stylesheet")
	cmd.Flags().StringVar(&header, "header", "", "Header label for every block (default: the file name)")
	cmd.Flags().StringVar(&title, "title", "", "Page title with --standalone (default: the file names)")
	return cmd
}

func pageTitle(inputs []input) string {
	var names []string
	for _, in := range inputs {
		if label := in.Label(); label != "" {
			names = append(names, label)
		}
	}
	if len(names) == 0 {
		return "tint"
	}
	return strings.Join(names, ", ")
}
