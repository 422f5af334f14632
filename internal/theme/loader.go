// internal/theme/loader.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tint/internal/logger"
	"github.com/gdamore/tcell/v2"
	"github.com/goccy/go-yaml"
)

// ErrInvalidColor is wrapped by every colour parsing failure.
var ErrInvalidColor = errors.New("invalid color")

// StyleDef is a single style entry in a theme file. Pointers distinguish
// unset fields from explicit zero values.
type StyleDef struct {
	Fg        *string `toml:"fg" yaml:"fg"`
	Bg        *string `toml:"bg" yaml:"bg"`
	Bold      *bool   `toml:"bold" yaml:"bold"`
	Italic    *bool   `toml:"italic" yaml:"italic"`
	Underline *bool   `toml:"underline" yaml:"underline"`
	Reverse   *bool   `toml:"reverse" yaml:"reverse"`
}

// ThemeFile is the on-disk layout shared by TOML and YAML themes.
type ThemeFile struct {
	Name   string              `toml:"name" yaml:"name"`
	IsDark bool                `toml:"is_dark" yaml:"is_dark"`
	Styles map[string]StyleDef `toml:"styles" yaml:"styles"`
}

// IsThemeFile reports whether path has an extension the loader understands.
func IsThemeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadThemeFromFile parses a .toml, .yaml or .yml theme file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var file ThemeFile
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".toml":
		metadata, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
		}
		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", file.Name, filePath, undecoded)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML theme file '%s': %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported theme file extension %q", ext)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' missing 'name', using filename '%s'", filePath, file.Name)
	}

	theme := file.Theme()
	logger.Debugf("Successfully loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// Theme converts the file definition. Every style inherits unset fields from
// the "Default" entry; entries that fail to parse are logged and skipped.
func (f ThemeFile) Theme() *Theme {
	theme := &Theme{
		Name:   f.Name,
		IsDark: f.IsDark,
		Styles: make(map[string]tcell.Style, len(f.Styles)+1),
	}

	baseStyle := tcell.StyleDefault
	if def, ok := f.Styles[StyleDefault]; ok {
		var err error
		baseStyle, err = convertStyle(def, tcell.StyleDefault)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse 'Default' style, using tcell default as base: %v", theme.Name, err)
			baseStyle = tcell.StyleDefault
		}
	}
	theme.Styles[StyleDefault] = baseStyle

	for name, def := range f.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertStyle(def, baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}
	return theme
}

func convertStyle(def StyleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle

	if def.Fg != nil {
		color, err := ParseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("foreground: %w", err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := ParseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("background: %w", err)
		}
		style = style.Background(color)
	}

	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// ParseColor accepts "#RRGGBB", "reset", "default" and tcell's colour names.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("%w: '%s' must be #RRGGBB", ErrInvalidColor, s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("%w: bad hex value '%s'", ErrInvalidColor, s)
		}
		return tcell.NewHexColor(int32(val)), nil
	}

	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}

	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("%w: unknown color '%s'", ErrInvalidColor, s)
}
