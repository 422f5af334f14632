package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/bethropolis/tint/internal/highlighter"
	"github.com/bethropolis/tint/internal/theme"
	"github.com/bethropolis/tint/internal/types"
)

// Classifier turns source text into a classified document.
// *highlighter.Highlighter satisfies it.
type Classifier interface {
	Highlight(src string) types.Document
}

// BlockOptions configures CodeBlock.
type BlockOptions struct {
	// Header is the label shown above the code. The header row, window dots
	// included, is omitted when Header is empty.
	Header string
	// Trim strips leading and trailing whitespace before highlighting.
	Trim bool
	// Classifier defaults to a highlighter with default options.
	Classifier Classifier
}

// DefaultBlockOptions returns options with trimming enabled.
func DefaultBlockOptions() BlockOptions {
	return BlockOptions{Trim: true}
}

// HTML renders doc as markup. Span text is already escaped and is written
// as-is; Plain spans carry no wrapper element.
func HTML(doc types.Document) string {
	var sb strings.Builder
	for i, line := range doc {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeLine(&sb, line)
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, line types.Line) {
	for _, span := range line {
		class := span.Category.CSSClass()
		if class == "" {
			sb.WriteString(span.Text)
			continue
		}
		sb.WriteString(`<span class="`)
		sb.WriteString(class)
		sb.WriteString(`">`)
		sb.WriteString(span.Text)
		sb.WriteString(`</span>`)
	}
}

// CodeBlock highlights src and wraps it in the code-block chrome. The copy
// button's data-copy attribute holds the unescaped source.
func CodeBlock(src string, opts BlockOptions) string {
	if opts.Trim {
		src = strings.TrimSpace(src)
	}

	var doc types.Document
	if opts.Classifier != nil {
		doc = opts.Classifier.Highlight(src)
	} else {
		doc = highlighter.Highlight(src)
	}
	return DocumentBlock(src, doc, opts.Header)
}

// DocumentBlock wraps an already classified doc in the code-block chrome.
// src is the text doc was classified from; it fills the copy button.
func DocumentBlock(src string, doc types.Document, header string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="code-block">`)
	if header != "" {
		sb.WriteString(`<div class="code-block-header">`)
		fmt.Fprintf(&sb, `<span class="code-block-label">%s</span>`, html.EscapeString(header))
		sb.WriteString(`<div class="code-block-dots">`)
		sb.WriteString(`<span class="dot-close"></span><span class="dot-minimize"></span><span class="dot-maximize"></span>`)
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`<pre><code>`)
	sb.WriteString(HTML(doc))
	sb.WriteString(`</code></pre>`)
	fmt.Fprintf(&sb, `<button class="code-block-copy" type="button" data-copy="%s">Copy</button>`, html.EscapeString(src))
	sb.WriteString(`</div>`)
	return sb.String()
}

// copyScript wires every copy button to the clipboard API.
const copyScript = `document.querySelectorAll(".code-block-copy").forEach(function (btn) {
  btn.addEventListener("click", function () {
    navigator.clipboard.writeText(btn.dataset.copy).then(function () {
      btn.textContent = "Copied!";
      setTimeout(function () { btn.textContent = "Copy"; }, 2000);
    });
  });
});`

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 2em auto; max-width: 960px; padding: 0 1em; }
{{.CSS}}</style>
</head>
<body>
{{range .Blocks}}{{.}}
{{end}}<script>{{.Script}}</script>
</body>
</html>
`))

type pageData struct {
	Title  string
	CSS    template.CSS
	Blocks []template.HTML
	Script template.JS
}

// Page wraps pre-rendered blocks in a standalone HTML5 document styled with
// th. Blocks are trusted markup.
func Page(title string, blocks []string, th *theme.Theme) (string, error) {
	data := pageData{
		Title:  title,
		CSS:    template.CSS(sanitizeCSS(th.CSS())),
		Blocks: make([]template.HTML, len(blocks)),
		Script: template.JS(copyScript),
	}
	for i, b := range blocks {
		data.Blocks[i] = template.HTML(b)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
