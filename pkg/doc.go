// Package pkg holds the libraries behind the epntex command.
//
// epntex turns the EPN-TAP v2 parameter pages of the VESPA wiki into LaTeX
// fragments for the EPN-TAP specification. The conversion runs in three
// stages:
//
//	wiki page (HTML)
//	     ↓
//	[doc]     parse into a closed Node tree, query headings and tables
//	     ↓
//	[latex]   render nodes and tables as LaTeX markup
//	     ↓
//	[epntap]  walk the page per document and emit to a Sink
//
// Supporting packages:
//
//   - [source] fetches pages over HTTP or reads them from disk
//   - [httputil] caches page bodies on disk and retries transient failures
//   - [config] loads the TOML configuration
//   - [errors] defines the coded error taxonomy
//   - [observability] exposes hooks for conversion, cache and HTTP events
//   - [buildinfo] carries version information set at build time
//
// # Quick Start
//
//	page, err := source.ReadFile("parameters.html")
//	if err != nil {
//	    return err
//	}
//	driver := epntap.NewDriver(latex.New(latex.Options{}), nil)
//	return driver.WriteColumnTable(ctx, page, epntap.NewSink(os.Stdout))
package pkg
