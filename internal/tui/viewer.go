// internal/tui/viewer.go
package tui

import (
	"time"

	"github.com/bethropolis/tint/internal/clipboard"
	"github.com/bethropolis/tint/internal/input"
	"github.com/bethropolis/tint/internal/logger"
	"github.com/bethropolis/tint/internal/statusbar"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/bethropolis/tint/internal/types"
	"github.com/gdamore/tcell/v2"
)

// DefaultTabWidth is used when Options.TabWidth is not positive.
const DefaultTabWidth = 4

// Options configures a Viewer.
type Options struct {
	// Header is drawn with the window dots on the first row; empty hides
	// the row.
	Header    string
	FileName  string
	Language  string
	TabWidth  int
	Theme     *theme.Theme
	Clipboard *clipboard.Manager
}

// Viewer is a read-only, scrollable view of a classified document.
type Viewer struct {
	tui       *TUI
	source    string
	doc       types.Document
	opts      Options
	theme     *theme.Theme
	statusBar *statusbar.StatusBar
	input     *input.InputProcessor
	clipboard *clipboard.Manager

	// view is the top-left corner: Line is the first visible line, Col the
	// first visible column in cells.
	view       types.Position
	lineWidths []int
	maxWidth   int
}

// NewViewer prepares a viewer for doc. source is what the copy action puts
// on the clipboard.
func NewViewer(t *TUI, source string, doc types.Document, opts Options) *Viewer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}
	if opts.Theme == nil {
		opts.Theme = &theme.ComfortDark
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewManager(false)
	}

	sbConfig := statusbar.DefaultConfig()
	sbConfig.StyleDefault = opts.Theme.GetStyle(theme.StyleStatusBar)
	sbConfig.StyleMessage = opts.Theme.GetStyle(theme.StyleStatusBarMessage)

	v := &Viewer{
		tui:       t,
		source:    source,
		doc:       doc,
		opts:      opts,
		theme:     opts.Theme,
		statusBar: statusbar.New(sbConfig),
		input:     input.NewInputProcessor(),
		clipboard: opts.Clipboard,
	}
	v.statusBar.SetFileInfo(opts.FileName, opts.Language)

	v.lineWidths = make([]int, len(doc))
	for i, line := range doc {
		v.lineWidths[i] = lineWidth(line, opts.TabWidth)
		v.maxWidth = max(v.maxWidth, v.lineWidths[i])
	}
	return v
}

// Run draws and processes events until a quit action.
func (v *Viewer) Run() error {
	v.Draw()
	for {
		ev := v.tui.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			logger.Debugf("Viewer: quit")
			return nil
		}
		v.Draw()
	}
}

// HandleEvent applies ev and reports whether the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.tui.Sync()
		v.scrollTo(v.view.Line, v.view.Col)
	case *tcell.EventKey:
		return v.handleAction(v.input.ProcessEvent(ev))
	}
	return false
}

func (v *Viewer) handleAction(ae input.ActionEvent) bool {
	l := v.layout()
	switch ae.Action {
	case input.ActionQuit:
		return true
	case input.ActionScrollUp:
		v.scrollTo(v.view.Line-1, v.view.Col)
	case input.ActionScrollDown:
		v.scrollTo(v.view.Line+1, v.view.Col)
	case input.ActionScrollLeft:
		v.scrollTo(v.view.Line, v.view.Col-1)
	case input.ActionScrollRight:
		v.scrollTo(v.view.Line, v.view.Col+1)
	case input.ActionPageUp:
		v.scrollTo(v.view.Line-l.bodyHeight, v.view.Col)
	case input.ActionPageDown:
		v.scrollTo(v.view.Line+l.bodyHeight, v.view.Col)
	case input.ActionTop:
		v.scrollTo(0, 0)
	case input.ActionBottom:
		v.scrollTo(len(v.doc), v.view.Col)
	case input.ActionCopy:
		v.copySource()
	default:
		logger.Debugf("Viewer: unbound key %q", ae.Rune)
	}
	return false
}

// scrollTo moves the viewport, clamped so the last line and the widest
// line can still fill the body.
func (v *Viewer) scrollTo(line, col int) {
	l := v.layout()
	maxLine := max(0, len(v.doc)-l.bodyHeight)
	maxCol := max(0, v.maxWidth-l.textWidth)
	v.view.Line = min(max(line, 0), maxLine)
	v.view.Col = min(max(col, 0), maxCol)
}

func (v *Viewer) copySource() {
	if err := v.clipboard.Copy(v.source); err != nil {
		logger.Warnf("Viewer: %v", err)
		v.statusBar.SetTemporaryMessage("Copied (internal only): %v", err)
	} else {
		v.statusBar.SetTemporaryMessage("Copied!")
	}
	// Redraw once the message has expired.
	time.AfterFunc(v.statusBar.Config().MessageTimeout+50*time.Millisecond, v.tui.Wake)
}

// View returns the current top-left corner of the viewport.
func (v *Viewer) View() types.Position {
	return v.view
}
