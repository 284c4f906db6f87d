package doc

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kindsAt(ps []Position) []Kind {
	var out []Kind
	for _, p := range ps {
		if el := p.Element(); el != nil {
			out = append(out, el.Kind)
		}
	}
	return out
}

func TestSiblingsAtLevel(t *testing.T) {
	first := El(KindH2, Text("a"))
	second := El(KindH2, Text("b"))
	body := El(KindDiv,
		El(KindH1, Text("top")),
		first,
		Text("loose text"),
		second,
		El(KindH1, Text("next")),
		El(KindH2, Text("unreachable")),
	)

	got := slices.Collect(SiblingsAtLevel(Position{Parent: body, Index: 0}, KindH2, KindH1))
	if len(got) != 2 {
		t.Fatalf("got %d siblings, want 2", len(got))
	}
	if got[0].Element() != first || got[1].Element() != second {
		t.Errorf("got %v, want the two h2 nodes in order", kindsAt(got))
	}
}

func TestSiblingsAtLevelSkipsOtherKinds(t *testing.T) {
	body := El(KindDiv,
		El(KindH2),
		El(KindP),
		El(KindH3),
		El(KindTable),
		El(KindH3),
	)
	got := slices.Collect(SiblingsAtLevel(Position{Parent: body, Index: 0}, KindH3, KindH2))
	if diff := cmp.Diff([]int{2, 4}, indexes(got)); diff != "" {
		t.Errorf("indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestSiblingsAtLevelEndOfDocument(t *testing.T) {
	body := El(KindDiv, El(KindH2))
	got := slices.Collect(SiblingsAtLevel(Position{Parent: body, Index: 0}, KindH2, KindH1))
	if len(got) != 0 {
		t.Errorf("got %d siblings, want none", len(got))
	}

	got = slices.Collect(SiblingsAtLevel(Position{}, KindH2, KindH1))
	if len(got) != 0 {
		t.Errorf("zero position yielded %d siblings", len(got))
	}
}

func TestSiblingsAtLevelEarlyBreak(t *testing.T) {
	body := El(KindDiv, El(KindH1), El(KindH2), El(KindH2), El(KindH2))
	n := 0
	for range SiblingsAtLevel(Position{Parent: body, Index: 0}, KindH2, KindH1) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times after break, want 1", n)
	}
}

func TestCollectUntil(t *testing.T) {
	p := El(KindP, Text("para"))
	tbl := El(KindTable)
	body := El(KindDiv,
		El(KindH3),
		Text("intro "),
		p,
		tbl,
		El(KindH2),
		El(KindP),
	)

	got := CollectUntil(Position{Parent: body, Index: 0}, KindH1, KindH2, KindH3)
	want := []Node{Text("intro "), p, tbl}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollectUntil mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectUntilEndOfDocument(t *testing.T) {
	body := El(KindDiv, El(KindH3), Text("tail"))
	got := CollectUntil(Position{Parent: body, Index: 0}, KindH3)
	if diff := cmp.Diff([]Node{Text("tail")}, got); diff != "" {
		t.Errorf("CollectUntil mismatch (-want +got):\n%s", diff)
	}

	if got := CollectUntil(Position{Parent: body, Index: 1}, KindH3); len(got) != 0 {
		t.Errorf("last sibling collected %d nodes, want 0", len(got))
	}
}

func TestFindAll(t *testing.T) {
	root := El(KindDocument,
		El(KindDiv,
			El(KindH1),
			El(KindP, El(KindTable, El(KindTr, El(KindTd), El(KindTh)))),
			El(KindH1),
		),
	)

	if got := kindsAt(FindAll(root, KindH1)); !slices.Equal(got, []Kind{KindH1, KindH1}) {
		t.Errorf("FindAll(h1) = %v", got)
	}
	if got := kindsAt(FindAll(root, KindTd, KindTh)); !slices.Equal(got, []Kind{KindTd, KindTh}) {
		t.Errorf("FindAll(td, th) = %v, want document order", got)
	}
	if got := FindAll(root, KindDocument); len(got) != 0 {
		t.Errorf("FindAll included the root")
	}
	if got := FindAll(nil, KindH1); got != nil {
		t.Errorf("FindAll(nil) = %v, want nil", got)
	}
}

func TestTextContent(t *testing.T) {
	n := El(KindH1, Text("EPN-TAP "), El(KindStrong, Text("v2")), Text(" parameter description"))
	if got, want := TextContent(n), "EPN-TAP v2 parameter description"; got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
}

func TestAttr(t *testing.T) {
	a := El(KindA, Text("x")).WithAttr("href", "https://example.org")
	if v, ok := a.Attr("href"); !ok || v != "https://example.org" {
		t.Errorf("Attr(href) = %q, %v", v, ok)
	}
	if _, ok := a.Attr("style"); ok {
		t.Error("Attr(style) reported present")
	}
	var nilEl *Element
	if _, ok := nilEl.Attr("href"); ok {
		t.Error("nil element reported an attribute")
	}
}

func indexes(ps []Position) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Index)
	}
	return out
}

func TestFirstElement(t *testing.T) {
	td := El(KindTd)
	tests := []struct {
		name string
		el   *Element
		want *Element
	}{
		{"first child", El(KindTr, td, El(KindTd)), td},
		{"after blank text", El(KindTr, Text("\n  "), td), td},
		{"after content text", El(KindTr, Text("x"), td), nil},
		{"text only", El(KindTr, Text("\n")), nil},
		{"no children", El(KindTr), nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.FirstElement(); got != tt.want {
				t.Errorf("FirstElement() = %v, want %v", got, tt.want)
			}
		})
	}
}
