// Package cli implements the epntex command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/epntex/pkg/buildinfo"
	"github.com/matzehuels/epntex/pkg/config"
	"github.com/matzehuels/epntex/pkg/epntap"
	"github.com/matzehuels/epntex/pkg/errors"
	"github.com/matzehuels/epntex/pkg/httputil"
	"github.com/matzehuels/epntex/pkg/source"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = httputil.DefaultDirName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "epntex converts the EPN-TAP wiki pages to LaTeX",
		Long: `epntex fetches the EPN-TAP v2 parameter pages from the VESPA wiki and
writes them as LaTeX fragments for the EPN-TAP specification document.

The generated markup goes to standard output (or --output); logs go to
standard error.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		// Without an operation nothing is written to stdout; the usage
		// goes to stderr and the run fails.
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errors.New(errors.ErrCodeInvalidInput,
				"missing operation (want one of %s)", strings.Join(epntap.Documents, ", "))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(c.documentCommand(epntap.ColumnDescription,
		"Write the parameter descriptions",
		"Converts the parameter description page into sections and paragraphs, one\nsubsubsection per parameter."))
	root.AddCommand(c.documentCommand(epntap.ColumnTable,
		"Write the parameter longtable",
		"Converts the metadata table of the parameters page into a longtable with\none row per parameter and a banner row per group."))
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runtime Wiring
// =============================================================================

// loadConfig reads the --config file, or the defaults when none was given.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// newClient creates the page client for cfg. A cache that cannot be opened
// is logged and skipped.
func (c *CLI) newClient(ctx context.Context, cfg config.Config, noCache, refresh bool) *source.Client {
	logger := loggerFromContext(ctx)
	opts := source.Options{Refresh: refresh, Logger: logger}
	if cfg.Cache.Enabled && !noCache {
		cache, err := openCache(cfg)
		if err != nil {
			logger.Warn("page cache disabled", "error", err)
		} else {
			opts.Cache = cache
		}
	}
	return source.NewClient(opts)
}

func openCache(cfg config.Config) (*httputil.Cache, error) {
	return httputil.NewCache(cfg.Cache.Dir, cfg.Cache.TTL.Duration)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/epntex/).
func cacheDir(cfg config.Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return httputil.DefaultDir()
}

// cacheTTL formats the entry lifetime for display.
func cacheTTL(cfg config.Config) string {
	if cfg.Cache.TTL.Duration == 0 {
		return "never expires"
	}
	return cfg.Cache.TTL.Duration.Round(time.Second).String()
}
