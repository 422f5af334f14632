package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/bethropolis/tint/internal/highlighter/lang"
	"github.com/bethropolis/tint/internal/logger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// ErrMarkdown indicates Markdown conversion failed.
var ErrMarkdown = errors.New("markdown conversion failed")

// MarkdownConverter turns Markdown into HTML fragments. Fenced code in a
// registered language is rendered as a highlighted code block.
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter creates a converter with GFM extensions. opts is used
// for every highlighted block; its Header is replaced by the fence language.
func NewMarkdownConverter(opts BlockOptions) *MarkdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(&codeBlockRenderer{opts: opts}, 200)),
		),
	)
	return &MarkdownConverter{md: md}
}

// ToHTML converts content to an HTML fragment. goldmark has no context
// support, so cancellation is checked around the conversion.
func (c *MarkdownConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdown, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// codeBlockRenderer overrides goldmark's fenced code block rendering.
type codeBlockRenderer struct {
	opts BlockOptions
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	info := string(n.Language(source))
	if lang.ForFence(info) == nil {
		logger.WithTag("markdown").Debugf("fence %q not highlighted", info)
		_, _ = w.WriteString("<pre><code")
		if info != "" {
			_, _ = fmt.Fprintf(w, ` class="language-%s"`, html.EscapeString(info))
		}
		_, _ = w.WriteString(">")
		_, _ = w.WriteString(html.EscapeString(code.String()))
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkSkipChildren, nil
	}

	opts := r.opts
	opts.Header = info
	_, _ = w.WriteString(CodeBlock(code.String(), opts))
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}
