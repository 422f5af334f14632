package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filterTrace receives filtering diagnostics when Config.DebugFilter is set.
var filterTrace io.Writer = os.Stderr

// filteringHandler wraps a base slog.Handler to add custom filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

func (h *filteringHandler) tracef(format string, args ...any) {
	if h.cfg != nil && h.cfg.DebugFilter {
		fmt.Fprintf(filterTrace, "[FILTER] "+format+"\n", args...)
	}
}

// allowed applies the enable/disable pair for one dimension. Disabled wins.
// An empty value only passes when no enable list is configured.
func allowed(enabled, disabled map[string]struct{}, value string) bool {
	if _, found := disabled[value]; found {
		return false
	}
	if enabled == nil {
		return true
	}
	_, found := enabled[value]
	return found
}

// source returns the package directory and file name of the record's caller.
func source(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}
	h.tracef("Message: Level=%s, Msg=%s", r.Level, r.Message)

	if pkg, file, ok := source(r); ok {
		if !allowed(h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet, strings.ToLower(pkg)) {
			h.tracef("FILTERED OUT: package '%s'", pkg)
			return nil
		}
		if !allowed(h.cfg.enabledFilesSet, h.cfg.disabledFilesSet, strings.ToLower(file)) {
			h.tracef("FILTERED OUT: file '%s'", file)
			return nil
		}
	}

	var tag string
	var tagFound bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			tagFound = true
			return false // Stop iteration
		}
		return true
	})

	if tagFound {
		if !allowed(h.cfg.enabledTagsSet, h.cfg.disabledTagsSet, tag) {
			h.tracef("FILTERED OUT: tag '%s'", tag)
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Filtering for specific tags drops untagged messages.
		h.tracef("FILTERED OUT: no tag but specific tags are enabled")
		return nil
	}

	h.tracef("PASSED")
	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
