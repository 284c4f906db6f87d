package latex

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/epntex/pkg/doc"
	"github.com/matzehuels/epntex/pkg/errors"
)

// Options configures a Renderer.
type Options struct {
	// TablePolicy decides what happens to tables no hack recognizes.
	TablePolicy TablePolicy

	// Hacks are the table corrections to try, in order. Nil means
	// DefaultHacks(); an empty non-nil slice disables all hacks.
	Hacks []TableHack

	// Logger receives debug output. Nil means log.Default().
	Logger *log.Logger
}

// Renderer converts element trees into LaTeX. A Renderer holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	policy TablePolicy
	hacks  []TableHack
	logger *log.Logger
}

// New creates a Renderer from opts.
func New(opts Options) *Renderer {
	hacks := opts.Hacks
	if hacks == nil {
		hacks = DefaultHacks()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{policy: opts.TablePolicy, hacks: hacks, logger: logger}
}

// Policy returns the table policy the renderer was built with.
func (r *Renderer) Policy() TablePolicy { return r.policy }

// Render renders el as a top-level element.
func (r *Renderer) Render(el *doc.Element) (string, error) {
	return r.RenderIn(Ancestors{}, el)
}

// RenderNodes renders a run of top-level nodes and concatenates the result.
func (r *Renderer) RenderNodes(nodes []doc.Node) (string, error) {
	return r.RenderNodesIn(Ancestors{}, nodes)
}

// RenderNodesIn renders nodes as children of the chain ctx. Text runs are
// escaped, elements go through RenderIn.
func (r *Renderer) RenderNodesIn(ctx Ancestors, nodes []doc.Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case doc.Text:
			sb.WriteString(Escape(string(n)))
		case *doc.Element:
			s, err := r.RenderIn(ctx, n)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		}
	}
	return sb.String(), nil
}

// RenderIn renders el below the chain ctx. el's own kind is pushed before its
// rule runs, so rules always see themselves at the top of the chain.
func (r *Renderer) RenderIn(ctx Ancestors, el *doc.Element) (string, error) {
	if el == nil {
		return "", errors.New(errors.ErrCodeInternal, "render of nil element")
	}
	ctx = ctx.Push(el.Kind)

	switch el.Kind {
	case doc.KindP:
		return r.paragraph(ctx, el)
	case doc.KindBr:
		return lineBreak(ctx), nil
	case doc.KindA:
		return r.link(ctx, el)
	case doc.KindTable:
		return r.table(ctx, el)

	case doc.KindEm, doc.KindI, doc.KindU:
		return r.wrap(ctx, el, `\emph{`, `}`)
	case doc.KindB, doc.KindStrong:
		return r.wrap(ctx, el, `\textbf{`, `}`)
	case doc.KindCode:
		return r.wrap(ctx, el, `\texttt{`, `}`)
	case doc.KindS, doc.KindDel:
		return r.wrap(ctx, el, "", ` (\textbf{Deleted})`)
	case doc.KindUl:
		return r.wrap(ctx, el, "\\begin{itemize}\n", "\\end{itemize}\n\n")
	case doc.KindOl:
		return r.wrap(ctx, el, "\\begin{enumerate}\n", "\\end{enumerate}\n\n")
	case doc.KindLi:
		return r.wrap(ctx, el, `\item `, "\n")
	case doc.KindPre:
		return r.wrap(ctx, el, `\begin{verbatim}`, `\end{verbatim}`)
	case doc.KindDiv:
		return r.wrap(ctx, el, "\n\n", "\n\n")
	case doc.KindH1:
		return r.wrap(ctx, el, `\subsection{`, "}\n\n")
	case doc.KindH2:
		return r.wrap(ctx, el, `\subsubsection{`, "}\n\n")
	case doc.KindH3:
		return r.wrap(ctx, el, `\paragraph{`, "}\n\n")
	case doc.KindSpan, doc.KindTd, doc.KindTh, doc.KindThead, doc.KindTbody,
		doc.KindColgroup, doc.KindCol:
		return r.wrap(ctx, el, "", "")

	default:
		return "", errors.New(errors.ErrCodeUnknownNodeKind,
			"no formatting rule for <%s> (inside %s)", el.Kind, path(ctx))
	}
}

// wrap renders the children of el and puts them between before and after.
// An element without children still gets its wrapper.
func (r *Renderer) wrap(ctx Ancestors, el *doc.Element, before, after string) (string, error) {
	body, err := r.RenderNodesIn(ctx, el.Children)
	if err != nil {
		return "", err
	}
	return before + body + after, nil
}

// paragraph drops the trailing blank line inside tables; Confluence puts p
// elements into table cells.
func (r *Renderer) paragraph(ctx Ancestors, el *doc.Element) (string, error) {
	if ctx.Contains(doc.KindTable) {
		return r.RenderNodesIn(ctx, el.Children)
	}
	return r.wrap(ctx, el, "", "\n\n")
}

// lineBreak suppresses breaks at the top level and inside tables.
func lineBreak(ctx Ancestors) string {
	if ctx.Depth() == 1 || ctx.Contains(doc.KindTable) {
		return ""
	}
	return `\\`
}

// link renders the link text followed by a footnote with the target. A link
// without a target is just its text.
func (r *Renderer) link(ctx Ancestors, el *doc.Element) (string, error) {
	text, err := r.RenderNodesIn(ctx, el.Children)
	if err != nil {
		return "", err
	}
	href, ok := el.Attr("href")
	if !ok {
		return text, nil
	}
	return text + `\footnote{\url{` + Escape(href) + `}}`, nil
}

func path(ctx Ancestors) string {
	kinds := ctx.Kinds()
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, " > ")
}
