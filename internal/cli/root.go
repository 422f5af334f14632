// Package cli provides the command-line interface for tint.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/tint/internal/cli/commands"
	"github.com/bethropolis/tint/internal/config"
	"github.com/bethropolis/tint/internal/highlighter"
	"github.com/bethropolis/tint/internal/highlighter/lang"
	"github.com/bethropolis/tint/internal/logger"
	"github.com/bethropolis/tint/internal/render"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	flags := &config.Flags{}
	var logOutput io.Closer

	rootCmd := &cobra.Command{
		Use:   "tint",
		Short: "tint - syntax highlighting for JavaScript-like snippets",
		Long: `tint classifies JavaScript and TypeScript snippets into comments,
strings, keywords, type names, numbers, calls and property keys, and
renders them as HTML code blocks, terminal colors or an interactive view.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(flags.ConfigFilePath, flags)
			if err != nil {
				return err
			}

			out, err := logger.OpenOutput(cfg.Logger.LogFilePath)
			if err != nil {
				return err
			}
			logOutput = out
			logger.Init(cfg.Logger, out)
			for _, w := range cfg.Warnings {
				logger.Warnf("%s", w)
			}

			lang.Initialize()

			themes := theme.NewManager(cfg.Render.ThemesDir)
			if err := themes.SetTheme(cfg.Render.Theme); err != nil {
				return fmt.Errorf("%w (available: %v)", err, themes.ListThemes())
			}

			cmd.SetContext(commands.WithRuntime(cmd.Context(), &commands.Runtime{
				Config:      cfg,
				Themes:      themes,
				Highlighter: highlighter.New(cfg.HighlighterOptions()),
			}))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logOutput != nil {
				return logOutput.Close()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	flags.DefineFlags(rootCmd.PersistentFlags())

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return render.ColorModes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewHTMLCommand())
	rootCmd.AddCommand(commands.NewANSICommand())
	rootCmd.AddCommand(commands.NewSpansCommand())
	rootCmd.AddCommand(commands.NewMarkdownCommand())
	rootCmd.AddCommand(commands.NewCSSCommand())
	rootCmd.AddCommand(commands.NewThemesCommand())
	rootCmd.AddCommand(commands.NewViewCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
