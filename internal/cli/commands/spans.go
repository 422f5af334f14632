package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/tint/internal/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// NewSpansCommand creates the spans command.
func NewSpansCommand() *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "spans [files...]",
		Short: "Dump the classified spans as a table",
		Long: `Dump every span: its line number, category and escaped text.
Useful for checking how a snippet is classified.`,
		Example: `  echo 'const x = 5; // note' | tint spans
  tint spans --only keyword,type app.ts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseCategories(only)
			if err != nil {
				return err
			}

			rt := GetRuntime(cmd.Context())
			inputs, err := readInputs(cmd.Context(), cmd, rt.Highlighter, args, false)
			if err != nil {
				return err
			}

			multi := len(inputs) > 1
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.Style().Format.Footer = text.FormatDefault
			if multi {
				t.AppendHeader(table.Row{"File", "Line", "Category", "Text"})
			} else {
				t.AppendHeader(table.Row{"Line", "Category", "Text"})
			}

			spanCount := 0
			for _, in := range inputs {
				for lineIdx, line := range in.Doc {
					for _, span := range line {
						if filter != nil && !filter[span.Category] {
							continue
						}
						row := table.Row{lineIdx + 1, span.Category.String(), strconv.Quote(span.Text)}
						if multi {
							row = append(table.Row{in.Name}, row...)
						}
						t.AppendRow(row)
						spanCount++
					}
				}
			}
			footer := table.Row{"", "", strconv.Itoa(spanCount) + " spans"}
			if multi {
				footer = append(table.Row{""}, footer...)
			}
			t.AppendFooter(footer)
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "Show only these categories (e.g. keyword,type)")
	_ = cmd.RegisterFlagCompletionFunc("only", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(types.Categories()))
		for _, c := range types.Categories() {
			names = append(names, c.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// parseCategories turns category names into a set. No names means no filter.
func parseCategories(names []string) (map[types.Category]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	set := make(map[types.Category]bool, len(names))
	for _, name := range names {
		c, ok := types.ParseCategory(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		set[c] = true
	}
	return set, nil
}
