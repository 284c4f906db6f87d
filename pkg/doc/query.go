package doc

import (
	"iter"
	"slices"
)

// Position addresses a node by its parent and index among the parent's
// children, which is what sibling scans need.
type Position struct {
	Parent *Element
	Index  int
}

// Node returns the node at p, or nil if p is out of range.
func (p Position) Node() Node {
	if p.Parent == nil || p.Index < 0 || p.Index >= len(p.Parent.Children) {
		return nil
	}
	return p.Parent.Children[p.Index]
}

// Element returns the element at p, or nil if p holds a text run.
func (p Position) Element() *Element {
	el, _ := p.Node().(*Element)
	return el
}

// FindAll returns the positions of all descendants of root whose kind is one
// of kinds, in document order. root itself is never included.
func FindAll(root *Element, kinds ...Kind) []Position {
	var out []Position
	var walk func(parent *Element)
	walk = func(parent *Element) {
		for i, c := range parent.Children {
			el, ok := c.(*Element)
			if !ok {
				continue
			}
			if slices.Contains(kinds, el.Kind) {
				out = append(out, Position{Parent: parent, Index: i})
			}
			walk(el)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// FindElements is FindAll returning the elements themselves.
func FindElements(root *Element, kinds ...Kind) []*Element {
	pos := FindAll(root, kinds...)
	out := make([]*Element, 0, len(pos))
	for _, p := range pos {
		out = append(out, p.Element())
	}
	return out
}

// SiblingsAtLevel scans the siblings following start and yields those of kind
// level. The scan ends at the first sibling of kind stop, which is not
// yielded, or at the end of the sibling list. Text runs are skipped.
//
// The sequence is a one-shot forward scan; ranging over it again restarts
// from start.
func SiblingsAtLevel(start Position, level, stop Kind) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if start.Parent == nil {
			return
		}
		for i := start.Index + 1; i < len(start.Parent.Children); i++ {
			el, ok := start.Parent.Children[i].(*Element)
			if !ok {
				continue
			}
			switch el.Kind {
			case level:
				if !yield(Position{Parent: start.Parent, Index: i}) {
					return
				}
			case stop:
				return
			}
		}
	}
}

// CollectUntil returns every sibling following start, text runs included,
// up to the first element whose kind is in stop or the end of the list.
func CollectUntil(start Position, stop ...Kind) []Node {
	if start.Parent == nil || start.Index+1 > len(start.Parent.Children) {
		return nil
	}
	var out []Node
	for _, c := range start.Parent.Children[start.Index+1:] {
		if el, ok := c.(*Element); ok && slices.Contains(stop, el.Kind) {
			break
		}
		out = append(out, c)
	}
	return out
}
