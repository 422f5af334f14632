// internal/types/category.go
package types

// Category is the lexical class a span carries.
type Category int

// Categories, in no particular precedence order. Precedence lives in the
// classifier pipeline, not here.
const (
	Plain Category = iota
	Comment
	TemplateString
	String
	Keyword
	TypeName
	Number
	FunctionCall
	PropertyKey
)

var categoryNames = [...]string{
	Plain:          "plain",
	Comment:        "comment",
	TemplateString: "template",
	String:         "string",
	Keyword:        "keyword",
	TypeName:       "type",
	Number:         "number",
	FunctionCall:   "call",
	PropertyKey:    "property",
}

// styleNames maps categories onto theme style keys. Dotted names fall back to
// their base name in theme lookups, so "string.template" inherits "string".
var styleNames = [...]string{
	Plain:          "Default",
	Comment:        "comment",
	TemplateString: "string.template",
	String:         "string",
	Keyword:        "keyword",
	TypeName:       "type",
	Number:         "number",
	FunctionCall:   "function.call",
	PropertyKey:    "property",
}

var cssClasses = [...]string{
	Plain:          "",
	Comment:        "hl-cmt",
	TemplateString: "hl-str",
	String:         "hl-str",
	Keyword:        "hl-kw",
	TypeName:       "hl-cls",
	Number:         "hl-num",
	FunctionCall:   "hl-fn",
	PropertyKey:    "hl-prop",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Plain, Comment, TemplateString, String, Keyword, TypeName, Number, FunctionCall, PropertyKey}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Plain && c <= PropertyKey
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// StyleName returns the theme style key used to render c.
func (c Category) StyleName() string {
	if !c.Valid() {
		return styleNames[Plain]
	}
	return styleNames[c]
}

// CSSClass returns the presentation class for c. Plain has none.
func (c Category) CSSClass() string {
	if !c.Valid() {
		return ""
	}
	return cssClasses[c]
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return Plain, false
}
