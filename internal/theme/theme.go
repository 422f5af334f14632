// internal/theme/theme.go
package theme

import (
	"github.com/bethropolis/tint/internal/logger"
	"github.com/gdamore/tcell/v2"

	"strings"
)

// Theme maps style names to tcell styles. Syntax styles are keyed by
// types.Category.StyleName; chrome styles use capitalised names.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// Chrome style names used by the renderers and the viewer.
const (
	StyleDefault          = "Default"
	StyleHeader           = "Header"
	StyleLineNumber       = "LineNumber"
	StyleDotClose         = "DotClose"
	StyleDotMinimize      = "DotMinimize"
	StyleDotMaximize      = "DotMaximize"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
)

// GetStyle resolves name: exact match, then the base name before the first
// dot, then "Default", then tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Built-in themes ---

var (
	ComfortDark Theme
	PaperLight  Theme
)

func init() {
	// --- Palette for Comfort Dark ---
	dcBackground := tcell.NewHexColor(0x0d1117)
	dcChrome := tcell.NewHexColor(0x1f2937)
	dcForeground := tcell.NewHexColor(0xcdd5e0)
	dcMuted := tcell.NewHexColor(0x6b7280)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcOrange := tcell.NewHexColor(0xf78c6c)
	dcYellow := tcell.NewHexColor(0xffcb6b)
	dcGreen := tcell.NewHexColor(0xc3e88d)
	dcCyan := tcell.NewHexColor(0x89ddff)
	dcBlue := tcell.NewHexColor(0x82aaff)
	dcMagenta := tcell.NewHexColor(0xc792ea)

	baseStyle := tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground)
	chrome := tcell.StyleDefault.Background(dcChrome)

	ComfortDark = Theme{
		Name:   "Comfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StyleHeader:           chrome.Foreground(dcMuted),
			StyleLineNumber:       baseStyle.Foreground(dcMuted),
			StyleDotClose:         chrome.Foreground(tcell.NewHexColor(0xef4444)),
			StyleDotMinimize:      chrome.Foreground(tcell.NewHexColor(0xf59e0b)),
			StyleDotMaximize:      chrome.Foreground(tcell.NewHexColor(0x22c55e)),
			StyleStatusBar:        chrome.Foreground(dcForeground),
			StyleStatusBarMessage: chrome.Foreground(tcell.NewHexColor(0x4ade80)).Bold(true),

			"comment":         baseStyle.Foreground(dcComment).Italic(true),
			"string":          baseStyle.Foreground(dcGreen),
			"string.template": baseStyle.Foreground(dcGreen),
			"keyword":         baseStyle.Foreground(dcMagenta),
			"type":            baseStyle.Foreground(dcYellow),
			"number":          baseStyle.Foreground(dcOrange),
			"function":        baseStyle.Foreground(dcBlue),
			"property":        baseStyle.Foreground(dcCyan),
		},
	}

	// --- Palette for Paper Light ---
	plBackground := tcell.NewHexColor(0xfafafa)
	plChrome := tcell.NewHexColor(0xe5e7eb)
	plForeground := tcell.NewHexColor(0x383a42)
	plMuted := tcell.NewHexColor(0x6b7280)

	paperBase := tcell.StyleDefault.Background(plBackground).Foreground(plForeground)
	paperChrome := tcell.StyleDefault.Background(plChrome)

	PaperLight = Theme{
		Name:   "Paper Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          paperBase,
			StyleHeader:           paperChrome.Foreground(plMuted),
			StyleLineNumber:       paperBase.Foreground(tcell.NewHexColor(0x9d9d9f)),
			StyleDotClose:         paperChrome.Foreground(tcell.NewHexColor(0xef4444)),
			StyleDotMinimize:      paperChrome.Foreground(tcell.NewHexColor(0xf59e0b)),
			StyleDotMaximize:      paperChrome.Foreground(tcell.NewHexColor(0x22c55e)),
			StyleStatusBar:        paperChrome.Foreground(plForeground),
			StyleStatusBarMessage: paperChrome.Foreground(tcell.NewHexColor(0x15803d)).Bold(true),

			"comment":  paperBase.Foreground(tcell.NewHexColor(0xa0a1a7)).Italic(true),
			"string":   paperBase.Foreground(tcell.NewHexColor(0x50a14f)),
			"keyword":  paperBase.Foreground(tcell.NewHexColor(0xa626a4)),
			"type":     paperBase.Foreground(tcell.NewHexColor(0xc18401)),
			"number":   paperBase.Foreground(tcell.NewHexColor(0x986801)),
			"function": paperBase.Foreground(tcell.NewHexColor(0x4078f2)),
			"property": paperBase.Foreground(tcell.NewHexColor(0xe45649)),
		},
	}
}
