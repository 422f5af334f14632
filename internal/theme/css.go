// internal/theme/css.go
package theme

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tint/internal/types"
	"github.com/gdamore/tcell/v2"
)

// HexColor returns c as "#rrggbb". ok is false for colours without an RGB
// value, such as tcell.ColorDefault and tcell.ColorReset.
func HexColor(c tcell.Color) (hex string, ok bool) {
	if !c.Valid() {
		return "", false
	}
	v := c.Hex()
	if v < 0 {
		return "", false
	}
	return fmt.Sprintf("#%06x", v), true
}

// CategoryStyle returns the style the theme assigns to category.
func (t *Theme) CategoryStyle(category types.Category) tcell.Style {
	return t.GetStyle(category.StyleName())
}

// CSS renders a stylesheet for the code-block chrome and every hl-* class.
// Categories that share a class use the first category's style.
func (t *Theme) CSS() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "/* tint theme: %s */\n", t.Name)

	writeRule(&sb, ".code-block", t.GetStyle(StyleDefault), true,
		"border-radius: 8px", "overflow: hidden", "margin: 1em 0", "position: relative")
	writeRule(&sb, ".code-block-header", t.GetStyle(StyleHeader), true,
		"display: flex", "align-items: center", "justify-content: space-between", "padding: 8px 12px",
		"font-family: sans-serif", "font-size: 12px")
	writeRule(&sb, ".code-block-dots", tcell.StyleDefault, false, "display: flex", "gap: 6px")
	writeRule(&sb, ".code-block-dots span", tcell.StyleDefault, false,
		"width: 12px", "height: 12px", "border-radius: 50%", "display: inline-block")
	writeDot(&sb, ".dot-close", t.GetStyle(StyleDotClose))
	writeDot(&sb, ".dot-minimize", t.GetStyle(StyleDotMinimize))
	writeDot(&sb, ".dot-maximize", t.GetStyle(StyleDotMaximize))
	writeRule(&sb, ".code-block-label", tcell.StyleDefault, false, "font-family: ui-monospace, monospace", "letter-spacing: 0.05em")
	writeRule(&sb, ".code-block pre", tcell.StyleDefault, false,
		"margin: 0", "padding: 12px 16px", "overflow-x: auto",
		"font-family: ui-monospace, SFMono-Regular, Menlo, monospace", "font-size: 13px", "line-height: 1.5")
	writeRule(&sb, ".code-block-copy", t.GetStyle(StyleHeader), true,
		"position: absolute", "top: 4px", "right: 8px", "border: none", "cursor: pointer", "font-size: 12px")

	seen := make(map[string]bool)
	for _, c := range types.Categories() {
		class := c.CSSClass()
		if class == "" || seen[class] {
			continue
		}
		seen[class] = true
		writeRule(&sb, "."+class, t.CategoryStyle(c), false)
	}
	return sb.String()
}

func writeRule(sb *strings.Builder, selector string, style tcell.Style, withBackground bool, extra ...string) {
	decls := styleDeclarations(style, withBackground)
	decls = append(decls, extra...)
	if len(decls) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s { %s; }\n", selector, strings.Join(decls, "; "))
}

func writeDot(sb *strings.Builder, selector string, style tcell.Style) {
	fg, _, _ := style.Decompose()
	if hex, ok := HexColor(fg); ok {
		fmt.Fprintf(sb, "%s { background: %s; }\n", selector, hex)
	}
}

func styleDeclarations(style tcell.Style, withBackground bool) []string {
	fg, bg, attrs := style.Decompose()
	var decls []string
	if hex, ok := HexColor(fg); ok {
		decls = append(decls, "color: "+hex)
	}
	if withBackground {
		if hex, ok := HexColor(bg); ok {
			decls = append(decls, "background: "+hex)
		}
	}
	if attrs&tcell.AttrBold != 0 {
		decls = append(decls, "font-weight: bold")
	}
	if attrs&tcell.AttrItalic != 0 {
		decls = append(decls, "font-style: italic")
	}
	if attrs&tcell.AttrUnderline != 0 {
		decls = append(decls, "text-decoration: underline")
	}
	return decls
}
