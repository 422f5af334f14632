// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/bethropolis/tint/internal/theme"
	"github.com/bethropolis/tint/internal/types"
	"github.com/rivo/uniseg"
)

const lineNumberPadding = 1

type layout struct {
	width, height int
	headerRows    int
	bodyHeight    int
	gutterWidth   int
	maxDigits     int
	textWidth     int
}

func (v *Viewer) layout() layout {
	width, height := v.tui.Size()
	l := layout{width: width, height: height}
	if v.opts.Header != "" {
		l.headerRows = 1
	}
	l.bodyHeight = max(0, height-l.headerRows-1)

	lineCount := max(len(v.doc), 1)
	l.maxDigits = int(math.Log10(float64(lineCount))) + 1
	l.gutterWidth = l.maxDigits + lineNumberPadding
	if l.gutterWidth >= width {
		l.gutterWidth = 0
	}
	l.textWidth = max(0, width-l.gutterWidth)
	return l
}

// clusterWidth returns the cells a grapheme occupies at visual column col.
// Tabs advance to the next tab stop.
func clusterWidth(runes []rune, width, col, tabWidth int) int {
	if len(runes) > 0 && runes[0] == '\t' {
		return tabWidth - col%tabWidth
	}
	return width
}

func lineWidth(line types.Line, tabWidth int) int {
	col := 0
	for _, span := range line {
		gr := uniseg.NewGraphemes(span.Raw())
		for gr.Next() {
			col += clusterWidth(gr.Runes(), gr.Width(), col, tabWidth)
		}
	}
	return col
}

// Draw renders the header, body and status bar.
func (v *Viewer) Draw() {
	l := v.layout()
	if l.width <= 0 || l.height <= 0 {
		return
	}
	v.tui.Clear()
	if l.headerRows > 0 {
		v.drawHeader(l)
	}
	v.drawBody(l)

	v.statusBar.SetScrollInfo(v.view, l.bodyHeight, len(v.doc))
	v.statusBar.Draw(v.tui.screen, l.width, l.height)
	v.tui.Show()
}

func (v *Viewer) drawHeader(l layout) {
	screen := v.tui.screen
	style := v.theme.GetStyle(theme.StyleHeader)
	for x := 0; x < l.width; x++ {
		screen.SetContent(x, 0, ' ', nil, style)
	}

	x := 1
	gr := uniseg.NewGraphemes(v.opts.Header)
	for gr.Next() {
		// Leave room for the dots.
		if x+gr.Width() > l.width-8 {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, 0, runes[0], runes[1:], style)
		x += gr.Width()
	}

	dots := []string{theme.StyleDotClose, theme.StyleDotMinimize, theme.StyleDotMaximize}
	for i, name := range dots {
		dx := l.width - 6 + i*2
		if dx > x {
			screen.SetContent(dx, 0, '●', nil, v.theme.GetStyle(name))
		}
	}
}

func (v *Viewer) drawBody(l layout) {
	screen := v.tui.screen
	defaultStyle := v.theme.GetStyle(theme.StyleDefault)
	lineNumberStyle := v.theme.GetStyle(theme.StyleLineNumber)

	for row := 0; row < l.bodyHeight; row++ {
		screenY := row + l.headerRows
		lineIdx := row + v.view.Line

		for x := 0; x < l.width; x++ {
			screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}
		if lineIdx >= len(v.doc) {
			continue
		}

		if l.gutterWidth > 0 {
			num := fmt.Sprintf("%*d", l.maxDigits, lineIdx+1)
			for i, r := range num {
				screen.SetContent(i, screenY, r, nil, lineNumberStyle)
			}
		}
		v.drawLine(l, screenY, v.doc[lineIdx])
	}
}

func (v *Viewer) drawLine(l layout, screenY int, line types.Line) {
	screen := v.tui.screen
	viewX := v.view.Col
	col := 0

	for _, span := range line {
		style := v.theme.CategoryStyle(span.Category)
		gr := uniseg.NewGraphemes(span.Raw())
		for gr.Next() {
			runes := gr.Runes()
			width := clusterWidth(runes, gr.Width(), col, v.opts.TabWidth)
			start := col
			col += width

			if start < viewX {
				continue
			}
			screenX := start - viewX + l.gutterWidth
			if screenX+width > l.width {
				return
			}

			if runes[0] == '\t' {
				for i := 0; i < width; i++ {
					screen.SetContent(screenX+i, screenY, ' ', nil, style)
				}
				continue
			}
			if width == 0 {
				continue
			}
			screen.SetContent(screenX, screenY, runes[0], runes[1:], style)
		}
	}
}
