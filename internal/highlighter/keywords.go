package highlighter

// keywordList is the closed keyword vocabulary, in the order it is documented.
var keywordList = []string{
	"import", "export", "from", "const", "let", "var", "async", "await",
	"return", "new", "class", "interface", "type", "function", "extends",
	"implements", "typeof", "void", "null", "undefined", "true", "false",
	"default", "if", "else", "for", "while", "of", "in", "break", "continue",
}

var keywords = func() map[string]struct{} {
	set := make(map[string]struct{}, len(keywordList))
	for _, kw := range keywordList {
		set[kw] = struct{}{}
	}
	return set
}()

// maxKeywordLen bounds the lookup; longer words are never keywords.
var maxKeywordLen = func() int {
	longest := 0
	for _, kw := range keywordList {
		if len(kw) > longest {
			longest = len(kw)
		}
	}
	return longest
}()

// IsKeyword reports whether word is in the keyword vocabulary. Matching is
// exact and case-sensitive.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns a copy of the keyword vocabulary.
func Keywords() []string {
	out := make([]string, len(keywordList))
	copy(out, keywordList)
	return out
}
