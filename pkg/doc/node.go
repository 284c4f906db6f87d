package doc

import "strings"

// Kind identifies an element by its lower-case tag name.
type Kind string

// Element kinds the converter has formatting rules for. Any other tag parses
// fine and carries its own Kind; rejecting it is the formatter's decision.
const (
	KindDocument Kind = "#document"

	KindP        Kind = "p"
	KindBr       Kind = "br"
	KindDiv      Kind = "div"
	KindSpan     Kind = "span"
	KindPre      Kind = "pre"
	KindCode     Kind = "code"
	KindEm       Kind = "em"
	KindI        Kind = "i"
	KindU        Kind = "u"
	KindB        Kind = "b"
	KindStrong   Kind = "strong"
	KindS        Kind = "s"
	KindDel      Kind = "del"
	KindA        Kind = "a"
	KindUl       Kind = "ul"
	KindOl       Kind = "ol"
	KindLi       Kind = "li"
	KindH1       Kind = "h1"
	KindH2       Kind = "h2"
	KindH3       Kind = "h3"
	KindTable    Kind = "table"
	KindColgroup Kind = "colgroup"
	KindCol      Kind = "col"
	KindThead    Kind = "thead"
	KindTbody    Kind = "tbody"
	KindTr       Kind = "tr"
	KindTd       Kind = "td"
	KindTh       Kind = "th"
)

// Node is either a *Element or a Text run. The set is closed: only this
// package implements it.
type Node interface {
	node()
}

// Text is a literal character run. It is always a leaf.
type Text string

func (Text) node() {}

// Element is one tag instance with its attributes and ordered children.
type Element struct {
	Kind     Kind
	Attrs    map[string]string
	Children []Node
}

func (*Element) node() {}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(key string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[key]
	return v, ok
}

// FirstElement returns the first child element, skipping whitespace-only
// text runs left by pretty-printed markup. It is nil when the element has no
// child element or a non-blank text run comes first.
func (e *Element) FirstElement() *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		switch c := c.(type) {
		case *Element:
			return c
		case Text:
			if strings.TrimSpace(string(c)) != "" {
				return nil
			}
		}
	}
	return nil
}

// El builds an element. It exists mainly for tests and examples.
func El(kind Kind, children ...Node) *Element {
	return &Element{Kind: kind, Children: children}
}

// WithAttr sets an attribute and returns e for chaining.
func (e *Element) WithAttr(key, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
	return e
}

// TextContent returns the concatenated text of n and all its descendants.
func TextContent(n Node) string {
	var sb strings.Builder
	appendText(&sb, n)
	return sb.String()
}

func appendText(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		sb.WriteString(string(n))
	case *Element:
		for _, c := range n.Children {
			appendText(sb, c)
		}
	}
}
