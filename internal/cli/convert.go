package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/epntex/pkg/config"
	"github.com/matzehuels/epntex/pkg/doc"
	"github.com/matzehuels/epntex/pkg/epntap"
	"github.com/matzehuels/epntex/pkg/errors"
	"github.com/matzehuels/epntex/pkg/latex"
	"github.com/matzehuels/epntex/pkg/source"
)

// convertOptions holds the flags shared by the document commands.
type convertOptions struct {
	input       string
	output      string
	tablePolicy string
	noCache     bool
	refresh     bool
}

// documentCommand creates the command that writes the named document.
func (c *CLI) documentCommand(name, short, long string) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), name, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "read the page from a local HTML file instead of fetching it")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write LaTeX to this file instead of stdout")
	cmd.Flags().StringVar(&opts.tablePolicy, "table-policy", "", "unmatched table hacks: strict or permissive (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the page cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "fetch the page even when a cached copy exists")

	return cmd
}

// runConvert loads the page for name and writes its LaTeX to stdout or the
// --output file. Markup already written when a fatal error occurs is kept.
func (c *CLI) runConvert(ctx context.Context, name string, opts convertOptions, stdout, stderr io.Writer) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if opts.tablePolicy != "" {
		cfg.Render.TablePolicy = opts.tablePolicy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	policy := cfg.TablePolicy()

	prog := newProgress(logger)
	page, origin, err := c.loadPage(ctx, name, cfg, opts)
	if err != nil {
		return err
	}
	logger.Debug("page loaded", "document", name, "from", origin)

	out, closeOut, err := openOutput(opts.output, stdout)
	if err != nil {
		return err
	}

	renderer := latex.New(latex.Options{TablePolicy: policy, Logger: logger})
	driver := epntap.NewDriver(renderer, logger)
	sink := epntap.NewSink(out)

	err = driver.Write(ctx, name, page, sink)
	if cerr := closeOut(); err == nil && cerr != nil {
		err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", opts.output)
	}
	if err != nil {
		if errors.Fatal(err) {
			logger.Error("conversion aborted", "document", name, "code", errors.GetCode(err), "bytes", sink.Written())
		}
		return err
	}

	prog.done("Converted " + name)
	if opts.output != "" {
		printSuccess(stderr, "Wrote %s (%d bytes)", name, sink.Written())
		printFile(stderr, opts.output)
	}
	return nil
}

// loadPage reads --input when given and otherwise fetches the configured URL.
func (c *CLI) loadPage(ctx context.Context, name string, cfg config.Config, opts convertOptions) (*doc.Document, string, error) {
	if opts.input != "" {
		page, err := source.ReadFile(opts.input)
		return page, opts.input, err
	}
	url, ok := cfg.Sources.URL(name)
	if !ok {
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "no source configured for %s", name)
	}
	client := c.newClient(ctx, cfg, opts.noCache, opts.refresh)
	page, err := client.Page(ctx, url)
	return page, url, err
}

// openOutput returns the destination writer and the function that releases it.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	if err := errors.ValidateInputPath(path); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, f.Close, nil
}
