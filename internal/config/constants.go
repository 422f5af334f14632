package config

// Base application details
const AppName = "tint"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tint.log"

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Environment overrides
const (
	EnvTheme    = "TINT_THEME"
	EnvLogLevel = "TINT_LOG_LEVEL"
	EnvColor    = "TINT_COLOR"
)

// Defaults applied by NewDefaultConfig and validate
const DefaultTabWidth = 4
const DefaultColor = "auto"
const DefaultLogLevel = "info"
const SystemClipboard = true
const TrimSource = true
