package render

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/bethropolis/tint/internal/highlighter"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestANSINoColor(t *testing.T) {
	src := "const a = b < c; // done\n\n\tfoo(`x`)"
	doc := highlighter.Highlight(src)
	assert.Equal(t, src, ANSI(doc, &theme.ComfortDark, termenv.Ascii))
}

func TestANSITrueColor(t *testing.T) {
	src := "return x && y;"
	out := ANSI(highlighter.Highlight(src), &theme.ComfortDark, termenv.TrueColor)

	assert.Contains(t, out, "\x1b[")
	// Comfort Dark keyword foreground #c792ea.
	assert.Contains(t, out, "38;2;199;146;234")
	assert.Equal(t, src, sgrPattern.ReplaceAllString(out, ""))
}

func TestColorProfile(t *testing.T) {
	tests := []struct {
		mode    string
		want    termenv.Profile
		wantErr bool
	}{
		{"truecolor", termenv.TrueColor, false},
		{"256", termenv.ANSI256, false},
		{"16", termenv.ANSI, false},
		{"NONE", termenv.Ascii, false},
		{"sepia", termenv.Ascii, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := ColorProfile(tt.mode, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// A buffer is not a terminal.
	t.Setenv("CLICOLOR_FORCE", "0")
	got, err := ColorProfile("auto", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, termenv.Ascii, got)
}
