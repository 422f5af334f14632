package highlighter

import (
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/tint/internal/types"
)

// region is a literal found before the comment boundary is known.
type region struct {
	start, end int
	category   types.Category
}

// claimLiterals runs the comment, template and string rules. Literal regions
// are located first so that "//" inside them is not mistaken for a comment;
// regions at or after the comment start are then discarded.
func (ls *lineState) claimLiterals() {
	regions, inLiteral := ls.literalRegions()
	cut := ls.commentStart(inLiteral)
	for _, r := range regions {
		if r.start < cut {
			ls.claim(r.start, r.end, r.category)
		}
	}
	ls.claim(cut, ls.size(), types.Comment)
}

// literalRegions finds template regions, then quoted strings in the gaps
// between them. A template region is a barrier for a quoted string: an
// unterminated string stops where the next template begins.
func (ls *lineState) literalRegions() ([]region, []bool) {
	n := ls.size()
	taken := make([]bool, n)
	var regions []region

	for i := 0; i < n; i++ {
		if ls.at(i) != '`' {
			continue
		}
		end := n
		for j := i + 1; j < n; j++ {
			if ls.at(j) == '`' {
				end = j + 1
				break
			}
		}
		regions = append(regions, region{start: i, end: end, category: types.TemplateString})
		for k := i; k < end; k++ {
			taken[k] = true
		}
		i = end - 1
	}

	for i := 0; i < n; i++ {
		quote := ls.at(i)
		if taken[i] || (quote != '"' && quote != '\'') {
			continue
		}
		end := i + 1
		for end < n && !taken[end] {
			r := ls.at(end)
			if r == '\\' {
				if end+1 < n && !taken[end+1] {
					end += 2
				} else {
					end++
				}
				continue
			}
			end++
			if r == quote {
				break
			}
		}
		regions = append(regions, region{start: i, end: end, category: types.String})
		for k := i; k < end; k++ {
			taken[k] = true
		}
		i = end - 1
	}
	return regions, taken
}

// commentStart returns the index of the first "//" outside any literal, or
// the line length when there is none.
func (ls *lineState) commentStart(inLiteral []bool) int {
	n := ls.size()
	for i := 0; i+1 < n; i++ {
		if ls.at(i) == '/' && ls.at(i+1) == '/' && !inLiteral[i] && !inLiteral[i+1] {
			return i
		}
	}
	return n
}

func (ls *lineState) claimKeywords() {
	ls.eachWord(func(start, end int) {
		if end-start > maxKeywordLen || !isLowerASCII(ls.at(start)) {
			return
		}
		if IsKeyword(ls.word(start, end)) {
			ls.claim(start, end, types.Keyword)
		}
	})
}

// claimTypeNames tags capitalised identifiers. A candidate is skipped when it
// sits inside what looks like a generic argument list: scanning forward, a
// '>' turns up before any '<' and before any unit claimed by an earlier rule.
func (ls *lineState) claimTypeNames() {
	ls.eachWord(func(start, end int) {
		r := ls.at(start)
		if r < 'A' || r > 'Z' {
			return
		}
		if ls.closesGeneric(end) {
			return
		}
		ls.claim(start, end, types.TypeName)
	})
}

func (ls *lineState) closesGeneric(from int) bool {
	for i := from; i < ls.size(); i++ {
		if !ls.free(i) {
			return false
		}
		switch ls.at(i) {
		case '>':
			return true
		case '<':
			return false
		}
	}
	return false
}

// claimNumbers tags decimal literals: digits and underscores with an optional
// fraction. Neighbours are checked on the raw character, so entities never
// affect the boundary.
func (ls *lineState) claimNumbers() {
	n := ls.size()
	for i := 0; i < n; i++ {
		if !ls.free(i) || !isDigit(ls.at(i)) {
			continue
		}
		if i > 0 && isNumberGuard(ls.at(i-1)) {
			continue
		}
		end := i + 1
		for end < n && ls.free(end) && (isDigit(ls.at(end)) || ls.at(end) == '_') {
			end++
		}
		if end+1 < n && ls.at(end) == '.' && ls.free(end) && ls.free(end+1) && isDigit(ls.at(end+1)) {
			end += 2
			for end < n && ls.free(end) && isDigit(ls.at(end)) {
				end++
			}
		}
		if end < n && isNumberGuard(ls.at(end)) {
			i = end
			continue
		}
		ls.claim(i, end, types.Number)
		i = end - 1
	}
}

// claimCallsAndProperties tags lower-case identifiers followed by '(' as
// calls and, failing that, identifiers followed by ':' as property keys.
func (ls *lineState) claimCallsAndProperties() {
	ls.eachWord(func(start, end int) {
		if !isCallStart(ls.at(start)) {
			return
		}
		next := end
		for next < ls.size() && ls.free(next) && unicode.IsSpace(ls.at(next)) {
			next++
		}
		if !ls.free(next) {
			return
		}
		switch ls.at(next) {
		case '(':
			ls.claim(start, end, types.FunctionCall)
		case ':':
			ls.claim(start, end, types.PropertyKey)
		}
	})
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLowerASCII(r rune) bool { return r >= 'a' && r <= 'z' }

func isCallStart(r rune) bool { return isLowerASCII(r) || r == '_' || r == '$' }

// isIdentRune reports whether r can appear inside an identifier.
func isIdentRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || r == '$' || isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isNumberGuard(r rune) bool {
	return isIdentRune(r) || r == '"' || r == '\'' || r == '`'
}
