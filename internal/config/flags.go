// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tint/internal/render"
	"github.com/spf13/pflag"
)

// Flags holds values bound to the persistent command-line flags. Only flags
// the user actually set override the config.
type Flags struct {
	set *pflag.FlagSet

	ConfigFilePath  string
	Theme           string
	LogLevel        string
	LogFilePath     string
	EnableTags      []string
	DisableTags     []string
	EnablePkgs      []string
	DisablePkgs     []string
	MaxLineLength   int
	TabWidth        int
	Color           string
	SystemClipboard bool
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.set = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.Theme, "theme", "", "Theme name - Overrides config file and "+EnvTheme)
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - Overrides config file and "+EnvLogLevel)
	fs.StringVar(&f.LogFilePath, "log-file", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.StringSliceVar(&f.EnableTags, "log-tags", nil, "Comma-separated list of tags to enable")
	fs.StringSliceVar(&f.DisableTags, "log-disable-tags", nil, "Comma-separated list of tags to disable")
	fs.StringSliceVar(&f.EnablePkgs, "log-packages", nil, "Comma-separated list of packages to enable")
	fs.StringSliceVar(&f.DisablePkgs, "log-disable-packages", nil, "Comma-separated list of packages to disable")
	fs.IntVar(&f.MaxLineLength, "max-line-length", 0, "Lines longer than this are not classified (0 disables the limit)")
	fs.IntVar(&f.TabWidth, "tab-width", DefaultTabWidth, "Number of columns per tab in the viewer")
	fs.StringVar(&f.Color, "color", DefaultColor, "Terminal colors: "+ColorModesHelp()+" - Overrides config file and "+EnvColor)
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "Copy to the system clipboard in the viewer")
}

// ColorModesHelp lists the accepted --color values.
func ColorModesHelp() string {
	return strings.Join(render.ColorModes(), ", ")
}

func (f *Flags) changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}

// ApplyOverrides updates cfg with the flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.changed("theme") {
		cfg.Render.Theme = f.Theme
	}
	if f.changed("log-level") {
		cfg.Logger.LogLevel = f.LogLevel
	}
	if f.changed("log-file") {
		cfg.Logger.LogFilePath = f.LogFilePath
	}
	if f.changed("log-tags") {
		cfg.Logger.EnabledTags = trimList(f.EnableTags)
	}
	if f.changed("log-disable-tags") {
		cfg.Logger.DisabledTags = trimList(f.DisableTags)
	}
	if f.changed("log-packages") {
		cfg.Logger.EnabledPackages = trimList(f.EnablePkgs)
	}
	if f.changed("log-disable-packages") {
		cfg.Logger.DisabledPackages = trimList(f.DisablePkgs)
	}
	if f.changed("max-line-length") {
		cfg.Highlight.MaxLineLength = f.MaxLineLength
	}
	if f.changed("tab-width") {
		cfg.Highlight.TabWidth = f.TabWidth
	}
	if f.changed("color") {
		cfg.Render.Color = f.Color
	}
	if f.changed("system-clipboard") {
		cfg.Render.SystemClipboard = f.SystemClipboard
	}
}

func trimList(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
