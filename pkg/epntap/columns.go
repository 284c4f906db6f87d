package epntap

import (
	"context"
	"iter"

	"github.com/matzehuels/epntex/pkg/doc"
	"github.com/matzehuels/epntex/pkg/errors"
	"github.com/matzehuels/epntex/pkg/latex"
)

const (
	longtableStart = "\\begin{longtable}{p{3.5cm}p{0.5cm}p{1cm}p{1cm}p{7cm}p{3cm}}\n"
	longtableHead  = "\\sptablerule\n\\textbf{Name}" +
		"&\\textbf{Req}" +
		"&\\textbf{Type}" +
		"&\\textbf{Unit}" +
		"&\\textbf{Description}" +
		"&\\textbf{UCD}\\\\" +
		"\\sptablerule"
)

// tableContext is where all metadata cells are rendered: inside a table, so
// paragraphs and breaks collapse.
var tableContext = latex.Ancestors{}.Push(doc.KindTable)

func (d *Driver) writeColumnTable(_ context.Context, page *doc.Document, out *Sink) (int, error) {
	tables := page.Select(TableSelector)
	if len(tables) == 0 {
		return 0, errors.New(errors.ErrCodeNotFound, "no table matching %q on the page", TableSelector)
	}
	if len(tables) > 1 {
		d.logger.Warn("several metadata tables on the page, using the first", "count", len(tables))
	}

	if err := out.Emit(
		"\\begingroup\\small",
		longtableStart,
		longtableHead+"\\endfirsthead\n"+longtableHead+"\\endhead\n",
	); err != nil {
		return 0, err
	}

	rows := 0
	for rec, err := range d.Records(tables[0]) {
		if err != nil {
			return rows, err
		}
		line, err := rec.Line()
		if err != nil {
			return rows, err
		}
		if err := out.Emit(line); err != nil {
			return rows, err
		}
		rows++
	}

	return rows, out.Emit("\\sptablerule\n", "\\end{longtable}\n", "\\endgroup\n")
}

// Records yields one Record per row of the metadata table. The header row
// (first cell is a th) is skipped; blank text between tags is ignored. Iteration stops after the first error.
func (d *Driver) Records(table *doc.Element) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for _, tr := range doc.FindElements(table, doc.KindTr) {
			first := tr.FirstElement()
			if first != nil && first.Kind == doc.KindTh {
				continue
			}

			rec, err := d.record(tr, first)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (d *Driver) record(tr, first *doc.Element) (Record, error) {
	switch ProbeRow(tr) {
	case ProbeSeparator:
		s, err := d.renderer.RenderIn(tableContext, first)
		if err != nil {
			return Record{}, err
		}
		return Headline(s), nil
	case ProbeUnrecognized:
		d.logger.Debug("row does not have the td > p > span shape, treating as data")
	}

	cells := doc.FindElements(tr, doc.KindTd)
	values := make([]string, len(cells))
	for i, c := range cells {
		s, err := d.renderer.RenderIn(tableContext, c)
		if err != nil {
			return Record{}, err
		}
		values[i] = s
	}
	if len(values) < len(ColumnLabels) {
		d.logger.Warn("short metadata row", "cells", len(values), "want", len(ColumnLabels))
	}
	return Fields(values), nil
}
