package highlighter

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/tint/internal/logger"
	"github.com/bethropolis/tint/internal/types"
)

// DefaultMaxLineLength is the line length, in characters, past which a line
// is emitted as a single Plain span instead of being classified.
const DefaultMaxLineLength = 10000

// Options configures a Highlighter.
type Options struct {
	// MaxLineLength caps the characters classified per line. Zero means no cap.
	MaxLineLength int
}

// DefaultOptions returns the options used by the package-level Highlight.
func DefaultOptions() Options {
	return Options{MaxLineLength: DefaultMaxLineLength}
}

// Highlighter classifies snippets into spans. It holds only its options, so a
// single value can be shared between goroutines.
type Highlighter struct {
	opts Options
}

// New creates a Highlighter. A negative MaxLineLength is treated as zero.
func New(opts Options) *Highlighter {
	if opts.MaxLineLength < 0 {
		opts.MaxLineLength = 0
	}
	return &Highlighter{opts: opts}
}

var defaultHighlighter = New(DefaultOptions())

// Highlight classifies src with the default options.
func Highlight(src string) types.Document {
	return defaultHighlighter.Highlight(src)
}

// Options returns the highlighter's configuration.
func (h *Highlighter) Options() Options {
	return h.opts
}

// Highlight splits src into lines and classifies each one independently.
// It never fails: any input, including empty or malformed text, yields a
// Document whose lines reconstruct the input after unescaping.
func (h *Highlighter) Highlight(src string) types.Document {
	lines := SplitLines(src)
	if len(lines) == 0 {
		return types.Document{}
	}
	doc := make(types.Document, len(lines))
	spans := 0
	for i, line := range lines {
		doc[i] = h.ClassifyLine(line)
		spans += len(doc[i])
	}
	logger.WithTag("classify").Debugf("Highlight: %d lines, %d spans", len(doc), spans)
	return doc
}

// ClassifyLine classifies a single line. The line must not contain '\n'; if
// it does, the line feed is treated as an ordinary character.
func (h *Highlighter) ClassifyLine(line string) types.Line {
	if line == "" {
		return nil
	}
	if h.opts.MaxLineLength > 0 && utf8.RuneCountInString(line) > h.opts.MaxLineLength {
		logger.WithTag("classify").Debugf("ClassifyLine: %d-byte line over limit %d, left unclassified", len(line), h.opts.MaxLineLength)
		return types.Line{{Text: Escape(line), Category: types.Plain}}
	}

	ls := newLineState(escapeUnits(line))
	ls.claimLiterals()
	ls.claimKeywords()
	ls.claimTypeNames()
	ls.claimNumbers()
	ls.claimCallsAndProperties()
	return ls.spans()
}

// ClassifyLine classifies line with the default options.
func ClassifyLine(line string) types.Line {
	return defaultHighlighter.ClassifyLine(line)
}

// SplitLines splits src on line feeds, keeping empty lines. Carriage returns
// stay on their line. Empty input has no lines.
func SplitLines(src string) []string {
	if src == "" {
		return nil
	}
	return strings.Split(src, "\n")
}
