package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "no escape needed", input: `const s = "it's" + x`, expected: `const s = "it's" + x`},
		{name: "angle brackets", input: "a < b > c", expected: "a &lt; b &gt; c"},
		{name: "ampersand first", input: "a && b", expected: "a &amp;&amp; b"},
		{name: "entity text is escaped once", input: "&lt;", expected: "&amp;lt;"},
		{name: "arrow", input: "=>", expected: "=&gt;"},
		{name: "backticks and unicode untouched", input: "`ü` → é", expected: "`ü` → é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.input, Unescape(got))
		})
	}
}

func TestUnescapeLeavesOtherEntities(t *testing.T) {
	assert.Equal(t, "&quot; <", Unescape("&quot; &lt;"))
}

func TestEscapeUnits(t *testing.T) {
	units := escapeUnits("a<\xff&")
	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.text
	}
	assert.Equal(t, []string{"a", "&lt;", "\xff", "&amp;"}, texts)
	assert.Equal(t, '<', units[1].r)
}
