package epntap

import (
	"strings"

	"github.com/matzehuels/epntex/pkg/doc"
	"github.com/matzehuels/epntex/pkg/errors"
)

// RowProbe is the outcome of inspecting a table row for the separator
// highlight.
type RowProbe int

const (
	// ProbeData means the row has the expected cell/paragraph/span nesting
	// and the span is not highlighted.
	ProbeData RowProbe = iota
	// ProbeSeparator means the first span carries SeparatorStyle.
	ProbeSeparator
	// ProbeUnrecognized means the nesting the probe looks at is missing.
	ProbeUnrecognized
)

func (p RowProbe) String() string {
	switch p {
	case ProbeData:
		return "data"
	case ProbeSeparator:
		return "separator"
	default:
		return "unrecognized"
	}
}

// ProbeRow looks at the first child of the first child of the row's first
// cell (normally td > p > span) and checks its inline style. Whitespace-only
// text between the tags does not count as a child.
func ProbeRow(tr *doc.Element) RowProbe {
	cell := tr.FirstElement()
	if cell == nil {
		return ProbeUnrecognized
	}
	para := cell.FirstElement()
	if para == nil {
		return ProbeUnrecognized
	}
	span := para.FirstElement()
	if span == nil {
		return ProbeUnrecognized
	}
	if style, _ := span.Attr("style"); style == SeparatorStyle {
		return ProbeSeparator
	}
	return ProbeData
}

// Record is one row of the metadata table with every cell already rendered
// to LaTeX. A separator record has only a headline.
type Record struct {
	headline  string
	separator bool
	fields    map[string]string
}

// Headline returns a separator record.
func Headline(text string) Record {
	return Record{headline: text, separator: true}
}

// Fields zips values against ColumnLabels. Surplus values are dropped and
// missing ones stay absent.
func Fields(values []string) Record {
	r := Record{fields: make(map[string]string, len(ColumnLabels))}
	for i, label := range ColumnLabels {
		if i >= len(values) {
			break
		}
		r.fields[label] = values[i]
	}
	return r
}

// IsSeparator reports whether r is a headline record.
func (r Record) IsSeparator() bool { return r.separator }

// HeadlineText returns the headline of a separator record.
func (r Record) HeadlineText() (string, bool) {
	return r.headline, r.separator
}

// Field returns the rendered value of a column. Separator records have no
// fields.
func (r Record) Field(name string) (string, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Line formats r as one longtable row. Referring to a field the record does
// not have is NULL_EMISSION.
func (r Record) Line() (string, error) {
	if r.separator {
		return `\multicolumn{6}{c}{\vrule width 0pt height 20pt depth 12pt \textbf{` +
			r.headline + "}}\\\\\n", nil
	}
	cols := make([]string, len(TableColumns))
	for i, name := range TableColumns {
		v, ok := r.fields[name]
		if !ok {
			return "", errors.New(errors.ErrCodeNullEmission,
				"row %q has no %s column", r.fields["name"], name)
		}
		cols[i] = v
	}
	return strings.Join(cols, "&") + "\\\\\n", nil
}
