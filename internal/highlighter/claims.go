package highlighter

import (
	"strings"

	"github.com/bethropolis/tint/internal/types"
)

const unowned = -1

// claim is a half-open range [start, end) of units owned by one category.
type claim struct {
	start, end int
	category   types.Category
}

// lineState is the ownership map for a single line. owner[i] indexes into
// claims, or is unowned. A unit is claimed at most once; later rules only
// look at unowned units.
type lineState struct {
	units  []unit
	owner  []int
	claims []claim
}

func newLineState(units []unit) *lineState {
	owner := make([]int, len(units))
	for i := range owner {
		owner[i] = unowned
	}
	return &lineState{units: units, owner: owner}
}

func (ls *lineState) size() int { return len(ls.units) }

func (ls *lineState) free(i int) bool {
	return i >= 0 && i < len(ls.owner) && ls.owner[i] == unowned
}

func (ls *lineState) at(i int) rune { return ls.units[i].r }

// claim assigns [start, end) to category. Callers only pass unowned ranges;
// a range that overlaps an existing claim is a programming error.
func (ls *lineState) claim(start, end int, category types.Category) {
	if start >= end {
		return
	}
	id := len(ls.claims)
	for i := start; i < end; i++ {
		if ls.owner[i] != unowned {
			panic("highlighter: overlapping claim")
		}
		ls.owner[i] = id
	}
	ls.claims = append(ls.claims, claim{start: start, end: end, category: category})
}

// word returns the raw text of units [start, end).
func (ls *lineState) word(start, end int) string {
	var sb strings.Builder
	for i := start; i < end; i++ {
		sb.WriteRune(ls.units[i].r)
	}
	return sb.String()
}

// eachWord calls fn for every maximal run of unowned identifier units.
// Owned units act as boundaries.
func (ls *lineState) eachWord(fn func(start, end int)) {
	n := ls.size()
	for i := 0; i < n; {
		if !ls.free(i) || !isIdentRune(ls.at(i)) {
			i++
			continue
		}
		j := i + 1
		for j < n && ls.free(j) && isIdentRune(ls.at(j)) {
			j++
		}
		fn(i, j)
		i = j
	}
}

// spans walks the ownership map and emits the line's spans. Unowned units
// coalesce into Plain spans; each claim becomes exactly one span.
func (ls *lineState) spans() types.Line {
	if ls.size() == 0 {
		return nil
	}
	var line types.Line
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			line = append(line, types.Span{Text: plain.String(), Category: types.Plain})
			plain.Reset()
		}
	}
	for i := 0; i < ls.size(); {
		id := ls.owner[i]
		if id == unowned {
			plain.WriteString(ls.units[i].text)
			i++
			continue
		}
		flush()
		c := ls.claims[id]
		var sb strings.Builder
		for k := c.start; k < c.end; k++ {
			sb.WriteString(ls.units[k].text)
		}
		line = append(line, types.Span{Text: sb.String(), Category: c.category})
		i = c.end
	}
	flush()
	return line
}
