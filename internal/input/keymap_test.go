package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionScrollUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionScrollDown},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), ActionScrollRight},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), ActionPageDown},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), ActionTop},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), ActionBottom},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), ActionScrollDown},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), ActionScrollUp},
		{"y", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), ActionCopy},
		{"c", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), ActionCopy},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"alt-q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), ActionUnknown},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionUnknown},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev).Action)
		})
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind('x', ActionQuit)
	assert.Equal(t, ActionQuit, p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)).Action)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "copy", ActionCopy.String())
	assert.Equal(t, "unknown", Action(99).String())
}
