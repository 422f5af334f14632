package statusbar

import (
	"testing"
	"time"

	"github.com/bethropolis/tint/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultText(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetFileInfo("app.js", "JavaScript")
	sb.SetScrollInfo(types.Position{Line: 10}, 5, 12)

	text, isMessage := sb.Text()
	assert.False(t, isMessage)
	assert.Equal(t, "app.js -- JavaScript -- Lines 11-12 of 12 -- y copy, q quit", text)
}

func TestDefaultTextEmpty(t *testing.T) {
	sb := New(DefaultConfig())
	text, _ := sb.Text()
	assert.Equal(t, "[stdin] -- Lines 0-0 of 0 -- y copy, q quit", text)
}

func TestTemporaryMessageExpires(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MessageTimeout = 20 * time.Millisecond
	sb := New(cfg)

	sb.SetTemporaryMessage("Copied!")
	text, isMessage := sb.Text()
	assert.True(t, isMessage)
	assert.Equal(t, "Copied!", text)

	time.Sleep(40 * time.Millisecond)
	_, isMessage = sb.Text()
	assert.False(t, isMessage)
}

func TestResetTemporaryMessage(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("x %d", 1)
	sb.ResetTemporaryMessage()
	_, isMessage := sb.Text()
	assert.False(t, isMessage)
}

func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(12, 3)

	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("héllo wörld!!")
	sb.Draw(s, 12, 3)
	s.Show()

	cells, w, _ := s.GetContents()
	var row []rune
	for x := 0; x < w; x++ {
		row = append(row, cells[2*w+x].Runes...)
	}
	assert.Equal(t, "héllo wörld!", string(row), "text is clipped to the width")

	_, _, style, _ := s.GetContent(0, 2)
	assert.Equal(t, DefaultConfig().StyleMessage, style)
}
