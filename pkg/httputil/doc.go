// Package httputil provides the on-disk cache and retry helpers used to fetch
// the Confluence pages epntex converts.
//
// # Caching
//
// [Cache] stores JSON-encoded values in one file per key under a directory
// (~/.cache/epntex/ by default). Entries older than the TTL are reported as
// [ErrExpired]. The pages change rarely and a conversion run is cheap, so a
// cached page spares the wiki a request on every rebuild:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	pages := cache.Namespace("page:")
//	var body []byte
//	if ok, _ := pages.Get(url, &body); !ok {
//	    body = fetch(url)
//	    _ = pages.Set(url, body)
//	}
//
// # Retry
//
// [Retry] re-runs an operation that failed with a [RetryableError], doubling
// the delay between attempts. Only transient failures (connection errors,
// 5xx responses) should be wrapped as retryable.
package httputil
