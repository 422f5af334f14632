// internal/types/span.go
package types

import "strings"

// entityReplacer reverses the three entities the classifier introduces.
// It lives here so Line and Document can reconstruct raw text without
// importing the highlighter.
var entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// Span is a run of escaped text tagged with one category.
type Span struct {
	Text     string
	Category Category
}

// Raw returns the span text with escaping reversed.
func (s Span) Raw() string {
	return entityReplacer.Replace(s.Text)
}

// Line is the ordered span sequence for one input line.
// Concatenating span texts yields the escaped line.
type Line []Span

// Text returns the escaped line.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Raw returns the original, unescaped line.
func (l Line) Raw() string {
	return entityReplacer.Replace(l.Text())
}

// Document holds one Line per input line.
type Document []Line

// Raw rebuilds the original input text.
func (d Document) Raw() string {
	lines := make([]string, len(d))
	for i, l := range d {
		lines[i] = l.Raw()
	}
	return strings.Join(lines, "\n")
}

// SpanCount returns the total number of spans across all lines.
func (d Document) SpanCount() int {
	n := 0
	for _, l := range d {
		n += len(l)
	}
	return n
}
