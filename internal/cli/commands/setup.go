// Package commands implements the tint subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bethropolis/tint/internal/config"
	"github.com/bethropolis/tint/internal/highlighter"
	"github.com/bethropolis/tint/internal/highlighter/lang"
	"github.com/bethropolis/tint/internal/logger"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/bethropolis/tint/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Runtime is the state shared by every subcommand, built once the config
// has been loaded.
type Runtime struct {
	Config      *config.Config
	Themes      *theme.Manager
	Highlighter *highlighter.Highlighter
}

type runtimeKey struct{}

// WithRuntime stores rt in ctx.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// GetRuntime retrieves the runtime from the command context, falling back
// to defaults when none was stored.
func GetRuntime(ctx context.Context) *Runtime {
	if ctx != nil {
		if rt, ok := ctx.Value(runtimeKey{}).(*Runtime); ok {
			return rt
		}
	}
	cfg := config.NewDefaultConfig()
	return &Runtime{
		Config:      cfg,
		Themes:      theme.NewManager(""),
		Highlighter: highlighter.New(cfg.HighlighterOptions()),
	}
}

// stdinName marks input read from standard input.
const stdinName = "-"

// input is one source file and its classification.
type input struct {
	Name   string
	Source string
	Doc    types.Document
}

// Label is the name shown in headers; empty for stdin.
func (in input) Label() string {
	if in.Name == stdinName {
		return ""
	}
	return filepath.Base(in.Name)
}

// readInputs reads and classifies every named file concurrently, keeping
// argument order. No names, or "-", reads stdin. With trim set, surrounding
// whitespace is removed before classification and Source holds the trimmed
// text.
func readInputs(ctx context.Context, cmd *cobra.Command, h *highlighter.Highlighter, names []string, trim bool) ([]input, error) {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	inputs := make([]input, len(names))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range names {
		i, name := i, name
		var stdin io.Reader
		if name == stdinName {
			stdin = cmd.InOrStdin()
		}
		g.Go(func() error {
			src, err := readSource(name, stdin)
			if err != nil {
				return err
			}
			if trim {
				src = strings.TrimSpace(src)
			}
			if name != stdinName && lang.ForFile(name) == nil {
				logger.Warnf("%s: not a registered language, highlighting as %s", name, lang.JavaScript.Name)
			}
			inputs[i] = input{Name: name, Source: src, Doc: h.Highlight(src)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.WithTag("cli").Debugf("classified %d inputs", len(inputs))
	return inputs, nil
}

func readSource(name string, stdin io.Reader) (string, error) {
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}
