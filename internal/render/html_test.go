package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/bethropolis/tint/internal/highlighter"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/bethropolis/tint/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func TestHTML(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "keyword and number",
			src:  "const x = 5; // note",
			want: `<span class="hl-kw">const</span> x = <span class="hl-num">5</span>; <span class="hl-cmt">// note</span>`,
		},
		{
			name: "template",
			src:  "`Hello ${name}`",
			want: `<span class="hl-str">` + "`Hello ${name}`" + `</span>`,
		},
		{
			name: "lines joined",
			src:  "a\n\nb",
			want: "a\n\nb",
		},
		{
			name: "escaped comparison",
			src:  "if (a < b) {}",
			want: `<span class="hl-kw">if</span> (a &lt; b) {}`,
		},
		{
			name: "empty",
			src:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTML(highlighter.Highlight(tt.src)))
		})
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	inputs := []string{
		"function foo(): Promise<void> {}",
		"const s = \"a && b\" + '<tag>';",
		"x = a >> 2 & 0xff; // shift <<",
		"obj = { key: value, other: fn(1_000) };",
	}
	for _, src := range inputs {
		out := HTML(highlighter.Highlight(src))
		stripped := tagPattern.ReplaceAllString(out, "")
		assert.Equal(t, src, highlighter.Unescape(stripped))
	}
}

func TestCodeBlock(t *testing.T) {
	got := CodeBlock("\n  const x = 5;\n", BlockOptions{Header: "app.js", Trim: true})
	want := `<div class="code-block">` +
		`<div class="code-block-header"><span class="code-block-label">app.js</span>` +
		`<div class="code-block-dots"><span class="dot-close"></span><span class="dot-minimize"></span><span class="dot-maximize"></span></div></div>` +
		`<pre><code><span class="hl-kw">const</span> x = <span class="hl-num">5</span>;</code></pre>` +
		`<button class="code-block-copy" type="button" data-copy="const x = 5;">Copy</button>` +
		`</div>`
	assert.Equal(t, want, got)
}

func TestCodeBlockOptions(t *testing.T) {
	t.Run("no header", func(t *testing.T) {
		got := CodeBlock("x", DefaultBlockOptions())
		assert.NotContains(t, got, "code-block-header")
		assert.NotContains(t, got, "dot-close")
	})

	t.Run("header escaped", func(t *testing.T) {
		got := CodeBlock("x", BlockOptions{Header: "<b>"})
		assert.Contains(t, got, `<span class="code-block-label">&lt;b&gt;</span>`)
	})

	t.Run("copy attribute holds raw source", func(t *testing.T) {
		got := CodeBlock(`if (a < b && c) { s = "q"; }`, DefaultBlockOptions())
		assert.Contains(t, got, `data-copy="if (a &lt; b &amp;&amp; c) { s = &#34;q&#34;; }"`)
	})

	t.Run("untrimmed", func(t *testing.T) {
		got := CodeBlock(" x \n", BlockOptions{})
		assert.Contains(t, got, "<pre><code> x \n</code></pre>")
	})

	t.Run("custom classifier", func(t *testing.T) {
		h := highlighter.New(highlighter.Options{MaxLineLength: 3})
		got := CodeBlock("const", BlockOptions{Classifier: h})
		assert.Contains(t, got, "<pre><code>const</code></pre>")
	})
}

func TestDocumentBlock(t *testing.T) {
	doc := types.Document{{{Text: "a &lt; b", Category: types.Keyword}}}
	got := DocumentBlock("a < b", doc, "")
	assert.Equal(t, `<div class="code-block"><pre><code><span class="hl-kw">a &lt; b</span></code></pre>`+
		`<button class="code-block-copy" type="button" data-copy="a &lt; b">Copy</button></div>`, got)
	assert.Equal(t, CodeBlock("const x;", BlockOptions{Header: "h"}),
		DocumentBlock("const x;", highlighter.Highlight("const x;"), "h"))
}

func TestPage(t *testing.T) {
	blocks := []string{CodeBlock("let a = 1;", DefaultBlockOptions()), CodeBlock("b()", DefaultBlockOptions())}
	page, err := Page("demo <1>", blocks, &theme.ComfortDark)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>demo &lt;1&gt;</title>")
	assert.Contains(t, page, ".hl-kw {")
	assert.Contains(t, page, blocks[0])
	assert.Contains(t, page, blocks[1])
	assert.Contains(t, page, "navigator.clipboard.writeText")
}

func TestSanitizeCSS(t *testing.T) {
	assert.Equal(t, `a { } <\/style>`, sanitizeCSS("a { } </style>"))
}

func TestHTMLCoversEveryClass(t *testing.T) {
	doc := types.Document{types.Line{}}
	for _, c := range types.Categories() {
		doc[0] = append(doc[0], types.Span{Text: "x", Category: c})
	}
	out := HTML(doc)
	for _, c := range types.Categories() {
		if class := c.CSSClass(); class != "" {
			assert.Contains(t, out, `class="`+class+`"`)
		}
	}
}
