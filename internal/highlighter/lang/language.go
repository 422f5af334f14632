package lang

import "strings"

// Language describes a grammar the classifier understands and the names it
// is known by.
type Language struct {
	// Name is the display name of the language
	Name string

	// Extensions maps file extensions to this language
	Extensions []string

	// Aliases are the markdown fence info strings that select this language.
	Aliases []string
}

// MatchesFence reports whether a fence info string names this language.
// Only the first word of the info string is considered.
func (l *Language) MatchesFence(info string) bool {
	name := fenceName(info)
	if name == "" {
		return false
	}
	for _, a := range l.Aliases {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

func fenceName(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	name := fields[0]
	// "{.js}" style attribute blocks.
	name = strings.TrimPrefix(strings.TrimSuffix(name, "}"), "{")
	return strings.TrimPrefix(name, ".")
}
