// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tint/internal/highlighter"
	"github.com/bethropolis/tint/internal/logger"
	"github.com/bethropolis/tint/internal/render"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/joho/godotenv"
)

// ErrConfigParse is wrapped when the config file exists but cannot be decoded.
var ErrConfigParse = errors.New("config parse error")

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`
	Highlight HighlightConfig `toml:"highlight"`
	Render    RenderConfig    `toml:"render"`

	// Warnings collects problems found while loading. They are logged once
	// the logger is initialized.
	Warnings []string `toml:"-"`
}

// HighlightConfig holds classifier settings.
type HighlightConfig struct {
	MaxLineLength int `toml:"max_line_length"`
	TabWidth      int `toml:"tab_width"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Theme           string `toml:"theme"`
	ThemesDir       string `toml:"themes_dir"`
	Color           string `toml:"color"`
	Trim            bool   `toml:"trim"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	themesDir := ""
	if configDir, err := os.UserConfigDir(); err == nil {
		themesDir = filepath.Join(configDir, AppName, ThemesDirName)
	}

	return &Config{
		Logger: logger.NewConfig(),
		Highlight: HighlightConfig{
			MaxLineLength: highlighter.DefaultMaxLineLength,
			TabWidth:      DefaultTabWidth,
		},
		Render: RenderConfig{
			Theme:           theme.DefaultThemeName,
			ThemesDir:       themesDir,
			Color:           DefaultColor,
			Trim:            TrimSource,
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultConfigPath returns the config file location used when --config is
// not given, or "" when the user config dir is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("%w: '%s': %v", ErrConfigParse, filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		cfg.warnf("config file '%s': unrecognized keys: %s", filePath, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv loads the .env file, if any, and applies TINT_* overrides.
// Variables already set in the environment win over the file.
func (c *Config) applyEnv() {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.warnf("reading %s: %v", DotEnvFile, err)
	}

	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		c.Render.Theme = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Logger.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvColor); ok && v != "" {
		c.Render.Color = v
	}
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Highlight.MaxLineLength < 0 {
		c.warnf("max_line_length %d is negative, using %d", c.Highlight.MaxLineLength, defaults.Highlight.MaxLineLength)
		c.Highlight.MaxLineLength = defaults.Highlight.MaxLineLength
	}
	if c.Highlight.TabWidth <= 0 {
		c.warnf("tab_width %d is not positive, using %d", c.Highlight.TabWidth, defaults.Highlight.TabWidth)
		c.Highlight.TabWidth = defaults.Highlight.TabWidth
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	} else if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.warnf("unknown log level %q, using %q", c.Logger.LogLevel, DefaultLogLevel)
		c.Logger.LogLevel = DefaultLogLevel
	}

	if c.Render.Theme == "" {
		c.Render.Theme = defaults.Render.Theme
	}
	c.Render.Color = strings.ToLower(c.Render.Color)
	if !slices.Contains(render.ColorModes(), c.Render.Color) {
		c.warnf("unknown color mode %q, using %q", c.Render.Color, DefaultColor)
		c.Render.Color = DefaultColor
	}
}

// Load builds the configuration from defaults, the TOML file, the
// environment and finally the flags that were set. configFilePath "" means
// the default location. The returned Config is usable even when err is
// non-nil.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		if err := loadFromFile(cfg, effectivePath); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	cfg.applyEnv()

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}

// HighlighterOptions converts the [highlight] section.
func (c *Config) HighlighterOptions() highlighter.Options {
	return highlighter.Options{MaxLineLength: c.Highlight.MaxLineLength}
}
