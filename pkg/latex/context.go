package latex

import "github.com/matzehuels/epntex/pkg/doc"

// Ancestors is the chain of element kinds from the document root down to the
// element currently being rendered. It is immutable: Push returns a new
// chain and never changes the receiver, so a chain can be shared between
// sibling renders and nothing has to be popped on the way out.
//
// The zero value is the empty chain of the true document root.
type Ancestors struct {
	top *frame
}

type frame struct {
	kind   doc.Kind
	parent *frame
	depth  int
}

// Push returns the chain extended by kind.
func (a Ancestors) Push(kind doc.Kind) Ancestors {
	f := &frame{kind: kind, parent: a.top, depth: 1}
	if a.top != nil {
		f.depth = a.top.depth + 1
	}
	return Ancestors{top: f}
}

// Top returns the innermost kind, or "" for the empty chain.
func (a Ancestors) Top() doc.Kind {
	if a.top == nil {
		return ""
	}
	return a.top.kind
}

// Depth returns the number of kinds in the chain.
func (a Ancestors) Depth() int {
	if a.top == nil {
		return 0
	}
	return a.top.depth
}

// Empty reports whether the chain is the document root.
func (a Ancestors) Empty() bool { return a.top == nil }

// Contains reports whether kind appears anywhere in the chain.
func (a Ancestors) Contains(kind doc.Kind) bool {
	for f := a.top; f != nil; f = f.parent {
		if f.kind == kind {
			return true
		}
	}
	return false
}

// Kinds returns the chain outermost first.
func (a Ancestors) Kinds() []doc.Kind {
	out := make([]doc.Kind, a.Depth())
	for f := a.top; f != nil; f = f.parent {
		out[f.depth-1] = f.kind
	}
	return out
}
