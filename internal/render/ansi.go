package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/tint/internal/theme"
	"github.com/bethropolis/tint/internal/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// Color modes accepted by ColorProfile.
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
	Color16        = "16"
	ColorNone      = "none"
)

// ColorModes lists the accepted color modes.
func ColorModes() []string {
	return []string{ColorAuto, ColorTrueColor, Color256, Color16, ColorNone}
}

// ColorProfile maps a color mode to a termenv profile. "auto" inspects the
// environment and out.
func ColorProfile(mode string, out io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case ColorAuto, "":
		return termenv.NewOutput(out).EnvColorProfile(), nil
	case ColorTrueColor:
		return termenv.TrueColor, nil
	case Color256:
		return termenv.ANSI256, nil
	case Color16:
		return termenv.ANSI, nil
	case ColorNone:
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color mode %q (want one of %s)", mode, strings.Join(ColorModes(), ", "))
}

// ANSI renders doc for a terminal. Span text is unescaped and styled with
// the theme's foreground and attributes for its category; backgrounds are
// left to the terminal.
func ANSI(doc types.Document, th *theme.Theme, profile termenv.Profile) string {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	r.SetColorProfile(profile)

	styles := make(map[types.Category]lipgloss.Style)
	for _, c := range types.Categories() {
		styles[c] = lipglossStyle(r, th.CategoryStyle(c))
	}

	var sb strings.Builder
	for i, line := range doc {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, span := range line {
			sb.WriteString(styles[span.Category].Render(span.Raw()))
		}
	}
	return sb.String()
}

func lipglossStyle(r *lipgloss.Renderer, style tcell.Style) lipgloss.Style {
	fg, _, attrs := style.Decompose()
	ls := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if hex, ok := theme.HexColor(fg); ok {
		ls = ls.Foreground(lipgloss.Color(hex))
	}
	if attrs&tcell.AttrBold != 0 {
		ls = ls.Bold(true)
	}
	if attrs&tcell.AttrItalic != 0 {
		ls = ls.Italic(true)
	}
	if attrs&tcell.AttrUnderline != 0 {
		ls = ls.Underline(true)
	}
	return ls
}
