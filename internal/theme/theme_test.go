package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/tint/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStyleFallback(t *testing.T) {
	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x111111))
	str := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x222222))
	tmpl := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x333333))

	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault:      base,
		"string":          str,
		"string.template": tmpl,
	}}

	tests := []struct {
		name string
		want tcell.Style
	}{
		{"string.template", tmpl},
		{"string", str},
		{"string.other", str},
		{"keyword", base},
		{"function.call", base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.GetStyle(tt.name))
		})
	}

	empty := &Theme{Name: "empty", Styles: map[string]tcell.Style{}}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle("keyword"))
}

func TestBuiltinThemesCoverCategories(t *testing.T) {
	for _, th := range []*Theme{&ComfortDark, &PaperLight} {
		for _, c := range types.Categories() {
			if c == types.Plain {
				continue
			}
			assert.NotEqual(t, th.GetStyle(StyleDefault), th.CategoryStyle(c),
				"%s: %s should not fall back to Default", th.Name, c)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{"  #00FF00 ", tcell.NewHexColor(0x00ff00), false},
		{"reset", tcell.ColorReset, false},
		{"Default", tcell.ColorDefault, false},
		{"red", tcell.ColorRed, false},
		{"#fff", tcell.ColorDefault, true},
		{"#gggggg", tcell.ColorDefault, true},
		{"notacolor", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const tomlTheme = `
name = "Test Toml"
is_dark = true

[styles.Default]
fg = "#101010"
bg = "#202020"

[styles.keyword]
fg = "#ff0000"
bold = true

[styles.number]
fg = "nope"
`

const yamlTheme = `
name: Test Yaml
styles:
  Default:
    fg: "#101010"
  comment:
    fg: "#00ff00"
    italic: true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml", func(t *testing.T) {
		th, err := LoadThemeFromFile(writeFile(t, dir, "a.toml", tomlTheme))
		require.NoError(t, err)
		assert.Equal(t, "Test Toml", th.Name)
		assert.True(t, th.IsDark)

		fg, bg, attrs := th.GetStyle("keyword").Decompose()
		assert.Equal(t, tcell.NewHexColor(0xff0000), fg)
		assert.Equal(t, tcell.NewHexColor(0x202020), bg, "inherits Default background")
		assert.NotZero(t, attrs&tcell.AttrBold)

		_, ok := th.Styles["number"]
		assert.False(t, ok, "invalid entries are skipped")
	})

	t.Run("yaml", func(t *testing.T) {
		th, err := LoadThemeFromFile(writeFile(t, dir, "b.yml", yamlTheme))
		require.NoError(t, err)
		assert.Equal(t, "Test Yaml", th.Name)
		fg, _, attrs := th.GetStyle("comment").Decompose()
		assert.Equal(t, tcell.NewHexColor(0x00ff00), fg)
		assert.NotZero(t, attrs&tcell.AttrItalic)
	})

	t.Run("name from file", func(t *testing.T) {
		th, err := LoadThemeFromFile(writeFile(t, dir, "unnamed.toml", "[styles.Default]\nfg = \"#000000\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "unnamed", th.Name)
	})

	t.Run("bad syntax", func(t *testing.T) {
		_, err := LoadThemeFromFile(writeFile(t, dir, "bad.toml", "name = "))
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadThemeFromFile(filepath.Join(dir, "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.toml", tomlTheme)
	writeFile(t, dir, "b.yaml", yamlTheme)
	writeFile(t, dir, "notes.txt", "ignored")

	mgr := NewManager(dir)
	assert.Equal(t, DefaultThemeName, mgr.Current().Name)
	assert.Equal(t, []string{"Comfort Dark", "Paper Light", "Test Toml", "Test Yaml"}, mgr.ListThemes())

	require.NoError(t, mgr.SetTheme("paper light"))
	assert.Equal(t, "Paper Light", mgr.Current().Name)

	err := mgr.SetTheme("nope")
	assert.ErrorIs(t, err, ErrThemeNotFound)
	assert.Equal(t, "Paper Light", mgr.Current().Name)

	th, ok := mgr.GetTheme("TEST YAML")
	require.True(t, ok)
	assert.Equal(t, "Test Yaml", th.Name)
}

func TestManagerMissingDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, []string{"Comfort Dark", "Paper Light"}, mgr.ListThemes())

	mgr = NewManager("")
	assert.Len(t, mgr.ListThemes(), 2)
}

func TestCSS(t *testing.T) {
	css := ComfortDark.CSS()
	for _, c := range types.Categories() {
		if class := c.CSSClass(); class != "" {
			assert.Contains(t, css, "."+class+" {")
		}
	}
	assert.Contains(t, css, ".code-block {")
	assert.Contains(t, css, "background: #0d1117")
	assert.Contains(t, css, ".dot-close { background: #")
	assert.Equal(t, 1, strings.Count(css, ".hl-str {"))
	assert.Contains(t, css, "font-style: italic")
}

func TestHexColor(t *testing.T) {
	hex, ok := HexColor(tcell.NewHexColor(0x0a0b0c))
	assert.True(t, ok)
	assert.Equal(t, "#0a0b0c", hex)

	_, ok = HexColor(tcell.ColorDefault)
	assert.False(t, ok)
	_, ok = HexColor(tcell.ColorReset)
	assert.False(t, ok)
}
