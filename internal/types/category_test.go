package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryNames(t *testing.T) {
	tests := []struct {
		category Category
		name     string
		style    string
		class    string
	}{
		{Plain, "plain", "Default", ""},
		{Comment, "comment", "comment", "hl-cmt"},
		{TemplateString, "template", "string.template", "hl-str"},
		{String, "string", "string", "hl-str"},
		{Keyword, "keyword", "keyword", "hl-kw"},
		{TypeName, "type", "type", "hl-cls"},
		{Number, "number", "number", "hl-num"},
		{FunctionCall, "call", "function.call", "hl-fn"},
		{PropertyKey, "property", "property", "hl-prop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.category.String())
			assert.Equal(t, tt.style, tt.category.StyleName())
			assert.Equal(t, tt.class, tt.category.CSSClass())

			parsed, ok := ParseCategory(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.category, parsed)
		})
	}
	assert.Len(t, Categories(), len(tests))
}

func TestInvalidCategory(t *testing.T) {
	c := Category(42)
	assert.False(t, c.Valid())
	assert.Equal(t, "unknown", c.String())
	assert.Equal(t, "Default", c.StyleName())
	assert.Empty(t, c.CSSClass())

	_, ok := ParseCategory("nope")
	assert.False(t, ok)
}

func TestLineRaw(t *testing.T) {
	line := Line{
		{Text: "a ", Category: Plain},
		{Text: "&amp;&lt;", Category: String},
		{Text: "&gt;", Category: Plain},
	}
	assert.Equal(t, "a &amp;&lt;&gt;", line.Text())
	assert.Equal(t, "a &<>", line.Raw())
	assert.Equal(t, "&<", line[1].Raw())

	doc := Document{line, nil, {{Text: "&amp;lt;", Category: Plain}}}
	assert.Equal(t, "a &<>\n\n&lt;", doc.Raw())
	assert.Equal(t, 4, doc.SpanCount())
}
