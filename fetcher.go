package bbsdoc

import "context"

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// Transport failures and non-2xx responses return ENETWORK.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
