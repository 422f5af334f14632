package highlighter

import (
	"strings"
	"unicode/utf8"
)

var (
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	unescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
)

// Escape replaces &, < and > with their entities in a single left-to-right
// pass. Entities produced for < and > are never escaped a second time.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape. Only the three entities Escape produces are
// recognised; any other entity is left untouched.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

// unit is one source character together with its escaped form. Rules work on
// units so an entity can never be split across two spans.
type unit struct {
	r    rune
	text string
}

// escapeUnits splits line into units. Invalid UTF-8 bytes become units of
// their own carrying the original byte, so the round trip stays exact.
func escapeUnits(line string) []unit {
	units := make([]unit, 0, len(line))
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		u := unit{r: r, text: line[i : i+size]}
		switch r {
		case '&':
			u.text = "&amp;"
		case '<':
			u.text = "&lt;"
		case '>':
			u.text = "&gt;"
		}
		units = append(units, u)
		i += size
	}
	return units
}
