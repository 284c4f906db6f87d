// Package source retrieves the HTML pages epntex converts.
//
// A [Client] fetches a page over HTTP, retrying transient failures and
// caching bodies on disk through [httputil.Cache]. [ReadFile] loads a page
// saved locally instead, which is how the converters are tested offline.
//
// Both return a parsed [doc.Document]; status codes map onto the error
// taxonomy in pkg/errors (404 is NOT_FOUND, network failures and 5xx
// responses are NETWORK_ERROR).
package source
