package latex

import (
	"fmt"
	"strings"

	"github.com/matzehuels/epntex/pkg/doc"
	"github.com/matzehuels/epntex/pkg/errors"
)

// TablePolicy decides what happens to a rendered table that no TableHack
// recognizes.
type TablePolicy int

const (
	// TableStrict fails the render with MALFORMED_TABLE_LANDMARK. This is the
	// default: an unknown table usually means the source page changed and the
	// generic layout will not fit the page.
	TableStrict TablePolicy = iota

	// TablePermissive emits the generic tabular layout unchanged.
	TablePermissive
)

// String returns the policy name as used in flags and configuration.
func (p TablePolicy) String() string {
	switch p {
	case TableStrict:
		return "strict"
	case TablePermissive:
		return "permissive"
	default:
		return fmt.Sprintf("TablePolicy(%d)", int(p))
	}
}

// ParseTablePolicy parses "strict" or "permissive". The empty string is the
// default policy.
func ParseTablePolicy(s string) (TablePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return TableStrict, nil
	case "permissive":
		return TablePermissive, nil
	default:
		return TableStrict, errors.New(errors.ErrCodeInvalidInput,
			"unknown table policy %q (want strict or permissive)", s)
	}
}

// TableHack is a hand-tuned correction for one known table. It applies when
// Landmark occurs in the generically rendered markup.
type TableHack struct {
	Name     string
	Landmark string
	Apply    func(literal string) string
}

// LevelsTable fixes up the processing-levels table, recognized by its UDR
// column.
var LevelsTable = TableHack{
	Name:     "levels",
	Landmark: "UDR",
	Apply: func(literal string) string {
		return `\begingroup\small` + levelsReplacer.Replace(literal) + `\endgroup`
	},
}

var levelsReplacer = strings.NewReplacer(
	" (std data format)", "",
	"llllllll}", `lllllllp{0.35\textwidth}}`,
	`\textbf{EPN-TAP }\textbf{v2}`, `\vbox{\vskip 2pt\hbox{\bf EPN-}\vskip 3pt\hbox{TAP2}}`,
)

// DefaultHacks returns the table corrections known for the EPN-TAP pages.
func DefaultHacks() []TableHack {
	return []TableHack{LevelsTable}
}

// table renders el as an inlinetable. The first row is the header and fixes
// the column count. A table without rows renders to nothing.
func (r *Renderer) table(ctx Ancestors, el *doc.Element) (string, error) {
	rows := doc.FindElements(el, doc.KindTr)
	if len(rows) == 0 {
		return "", nil
	}

	header, err := r.row(ctx, rows[0])
	if err != nil {
		return "", err
	}
	parts := []string{
		`\begin{inlinetable}`,
		`\begin{tabular}{` + strings.Repeat("l", len(Cells(rows[0]))) + `}`,
		`\sptablerule`,
		header,
		"\\sptablerule\n",
	}
	for _, tr := range rows[1:] {
		line, err := r.row(ctx, tr)
		if err != nil {
			return "", err
		}
		parts = append(parts, line)
	}
	parts = append(parts, `\end{tabular}`, `\end{inlinetable}`)

	return r.hack(strings.Join(parts, "\n"))
}

// row joins the rendered cells of tr with & and terminates the row.
func (r *Renderer) row(ctx Ancestors, tr *doc.Element) (string, error) {
	cells := Cells(tr)
	out := make([]string, len(cells))
	for i, c := range cells {
		s, err := r.RenderIn(ctx, c)
		if err != nil {
			return "", err
		}
		out[i] = s
	}
	return strings.Join(out, "&") + `\\`, nil
}

// hack applies the first matching TableHack, or the table policy when none
// matches.
func (r *Renderer) hack(literal string) (string, error) {
	for _, h := range r.hacks {
		if strings.Contains(literal, h.Landmark) {
			r.logger.Debug("applying table hack", "hack", h.Name)
			return h.Apply(literal), nil
		}
	}
	if r.policy == TablePermissive {
		r.logger.Debug("no table hack matched, passing table through")
		return literal, nil
	}
	return "", errors.New(errors.ErrCodeMalformedTableLandmark,
		"unknown table: %s", nthLine(literal, 4))
}

// Cells returns the td and th cells of a row in document order.
func Cells(tr *doc.Element) []*doc.Element {
	return doc.FindElements(tr, doc.KindTd, doc.KindTh)
}

// nthLine returns the n-th line of s; the header row is line 4.
func nthLine(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) < n {
		return s
	}
	return lines[n-1]
}
