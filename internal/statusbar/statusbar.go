// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tint/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 2 * time.Second,
	}
}

// StatusBar is the bottom line of the viewer.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	fileName  string
	language  string
	scrollPos types.Position
	lineCount int
	visible   int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// Config returns the bar's configuration.
func (sb *StatusBar) Config() Config {
	return sb.config
}

// SetFileInfo updates the file name and language shown.
func (sb *StatusBar) SetFileInfo(name, language string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fileName = name
	sb.language = language
}

// SetScrollInfo updates the visible range: pos is the top-left corner of the
// viewport, visible the number of body rows.
func (sb *StatusBar) SetScrollInfo(pos types.Position, visible, lineCount int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.scrollPos = pos
	sb.visible = visible
	sb.lineCount = lineCount
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns what Draw would show now, expiring a stale message first.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	active := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if active {
		return sb.tempMessage, true
	}
	return sb.defaultText(), false
}

func (sb *StatusBar) defaultText() string {
	name := sb.fileName
	if name == "" {
		name = "[stdin]"
	}
	lang := ""
	if sb.language != "" {
		lang = " -- " + sb.language
	}

	first, last := 0, 0
	if sb.lineCount > 0 {
		first = sb.scrollPos.Line + 1
		last = min(sb.scrollPos.Line+sb.visible, sb.lineCount)
	}
	return fmt.Sprintf("%s%s -- Lines %d-%d of %d -- y copy, q quit", name, lang, first, last, sb.lineCount)
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, isMessage := sb.Text()
	style := sb.config.StyleDefault
	if isMessage {
		style = sb.config.StyleMessage
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
