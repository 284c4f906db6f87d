package epntap

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/epntex/pkg/doc"
	"github.com/matzehuels/epntex/pkg/errors"
	"github.com/matzehuels/epntex/pkg/latex"
	"github.com/matzehuels/epntex/pkg/observability"
)

// Driver writes EPN-TAP documents. It keeps no state between runs, so one
// Driver can write any number of documents.
type Driver struct {
	renderer *latex.Renderer
	logger   *log.Logger
}

// NewDriver creates a Driver. A nil renderer means a strict default renderer;
// a nil logger means log.Default().
func NewDriver(r *latex.Renderer, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	if r == nil {
		r = latex.New(latex.Options{Logger: logger})
	}
	return &Driver{renderer: r, logger: logger}
}

// Write writes the named document. An unknown name is INVALID_INPUT and
// writes nothing.
func (d *Driver) Write(ctx context.Context, name string, page *doc.Document, out *Sink) error {
	var write func(context.Context, *doc.Document, *Sink) (int, error)
	switch name {
	case ColumnDescription:
		write = d.writeColumnDescription
	case ColumnTable:
		write = d.writeColumnTable
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"unknown document %q (want one of %s)", name, strings.Join(Documents, ", "))
	}
	if page == nil || page.Root == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no page to convert")
	}

	d.logger.Debug("writing document", "document", name, "table_policy", d.renderer.Policy())
	hooks := observability.Convert()
	hooks.OnConvertStart(ctx, name)
	start := time.Now()
	units, err := write(ctx, page, out)
	hooks.OnConvertComplete(ctx, name, units, time.Since(start), err)
	if err != nil {
		return err
	}

	d.logger.Debug("document written", "document", name, "units", units, "bytes", out.Written())
	return nil
}

// WriteColumnDescription writes the parameter descriptions document.
func (d *Driver) WriteColumnDescription(ctx context.Context, page *doc.Document, out *Sink) error {
	return d.Write(ctx, ColumnDescription, page, out)
}

// WriteColumnTable writes the metadata longtable.
func (d *Driver) WriteColumnTable(ctx context.Context, page *doc.Document, out *Sink) error {
	return d.Write(ctx, ColumnTable, page, out)
}
