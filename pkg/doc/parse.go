package doc

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/matzehuels/epntex/pkg/errors"
)

// Document is a parsed page. It keeps the original DOM next to the converted
// tree so CSS selectors can be evaluated against the page.
type Document struct {
	Root *Element

	dom   *html.Node
	index map[*html.Node]*Element
}

// Parse reads an HTML page and converts it into a Document.
// Comments and doctype nodes are dropped; everything else is kept, including
// whitespace-only text runs.
func Parse(r io.Reader) (*Document, error) {
	dom, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse HTML")
	}
	d := &Document{dom: dom, index: make(map[*html.Node]*Element)}
	root, _ := d.convert(dom).(*Element)
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "document has no root element")
	}
	d.Root = root
	return d, nil
}

// ParseBytes is Parse over an in-memory page.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// fromHTML converts a single DOM subtree. The result is nil for node types
// that carry no content (comments, doctypes).
func fromHTML(n *html.Node) Node {
	d := &Document{index: make(map[*html.Node]*Element)}
	return d.convert(n)
}

func (d *Document) convert(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return Text(n.Data)
	case html.ElementNode, html.DocumentNode:
	default:
		return nil
	}

	el := &Element{Kind: KindDocument}
	if n.Type == html.ElementNode {
		el.Kind = Kind(strings.ToLower(n.Data))
	}
	if len(n.Attr) > 0 {
		el.Attrs = make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			el.Attrs[a.Key] = a.Val
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := d.convert(c); child != nil {
			el.Children = append(el.Children, child)
		}
	}
	d.index[n] = el
	return el
}

// Select evaluates a CSS selector against the page and returns the matching
// elements in document order.
func (d *Document) Select(selector string) []*Element {
	if d.dom == nil {
		return nil
	}
	var out []*Element
	goquery.NewDocumentFromNode(d.dom).Find(selector).Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			if el, ok := d.index[n]; ok {
				out = append(out, el)
			}
		}
	})
	return out
}

// FindAll returns the positions of all elements of the given kinds below the
// document root, in document order.
func (d *Document) FindAll(kinds ...Kind) []Position {
	return FindAll(d.Root, kinds...)
}
