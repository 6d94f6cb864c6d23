package bbsdoc

import (
	"net/url"
	"time"
)

// Defaults for the Fudan BBS running board.
const (
	DefaultBasePath      = "/groups/sport.faq/Running/DACA5FD39/DA14D15FC/D5B8DAE31/DA78613A9"
	DefaultFeedURL       = "https://bbs.fudan.edu.cn/v18/0an?path=" + DefaultBasePath
	DefaultPostURLPrefix = "https://bbs.fudan.edu.cn/v18/anc?path="
	DefaultPathPrefix    = "/M."
	DefaultTitle         = "Fudan BBS Running Board Archive"
	DefaultBoard         = "the Fudan BBS running board"
	DefaultOutputPath    = "fudan-bbs-running.md"
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeout       = 10 * time.Second
	DefaultMinDelay      = 100 * time.Millisecond
	DefaultMaxDelay      = 500 * time.Millisecond
	DefaultPreviewLength = 500
	DefaultRPS           = 5
	DefaultFallback      = FallbackNone
)

// Fallback extractors consulted when no body selector matches.
const (
	FallbackNone        = "none"
	FallbackTrafilatura = "trafilatura"
	FallbackReadability = "readability"
)

// Config holds everything a harvest run needs to know about the board and
// the output. It replaces module-level constants so tests can point a run
// at local endpoints.
type Config struct {
	// FeedURL is the XML index listing the board's posts.
	FeedURL string

	// PostURLPrefix is the viewer endpoint; BasePath and the entry path are
	// appended to it to build a post URL.
	PostURLPrefix string
	BasePath      string

	// PathPrefix is the message-identifier prefix an entry path must carry.
	PathPrefix string

	Title      string
	Board      string
	OutputPath string

	UserAgent string
	Timeout   time.Duration

	// MinDelay and MaxDelay bound the random pause after each post.
	MinDelay time.Duration
	MaxDelay time.Duration

	// RPS limits requests per second to each host. Zero disables the limit.
	RPS float64

	// Limit caps the number of posts processed. Zero processes all.
	Limit int

	// PreviewLength bounds the raw markup reported when extraction misses.
	PreviewLength int

	// Fallback names the extractor tried after the selectors and the div
	// scan find nothing. It is one of the Fallback constants.
	Fallback string
}

// DefaultConfig returns the configuration for the Fudan BBS running board.
func DefaultConfig() Config {
	return Config{
		FeedURL:       DefaultFeedURL,
		PostURLPrefix: DefaultPostURLPrefix,
		BasePath:      DefaultBasePath,
		PathPrefix:    DefaultPathPrefix,
		Title:         DefaultTitle,
		Board:         DefaultBoard,
		OutputPath:    DefaultOutputPath,
		UserAgent:     DefaultUserAgent,
		Timeout:       DefaultTimeout,
		MinDelay:      DefaultMinDelay,
		MaxDelay:      DefaultMaxDelay,
		RPS:           DefaultRPS,
		PreviewLength: DefaultPreviewLength,
		Fallback:      DefaultFallback,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return Errorf(EINVALID, "feed URL required")
	}
	if _, err := url.ParseRequestURI(c.FeedURL); err != nil {
		return Errorf(EINVALID, "invalid feed URL %q", c.FeedURL)
	}
	if c.PostURLPrefix == "" {
		return Errorf(EINVALID, "post URL prefix required")
	}
	if c.PathPrefix == "" {
		return Errorf(EINVALID, "path prefix required")
	}
	if c.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.MinDelay < 0 || c.MaxDelay < 0 {
		return Errorf(EINVALID, "delays must not be negative")
	}
	if c.MaxDelay < c.MinDelay {
		return Errorf(EINVALID, "max delay %s is shorter than min delay %s", c.MaxDelay, c.MinDelay)
	}
	if c.RPS < 0 {
		return Errorf(EINVALID, "rps must not be negative")
	}
	if c.Limit < 0 {
		return Errorf(EINVALID, "limit must not be negative")
	}
	switch c.Fallback {
	case "", FallbackNone, FallbackTrafilatura, FallbackReadability:
	default:
		return Errorf(EINVALID, "unknown fallback extractor %q", c.Fallback)
	}
	return nil
}

// Locator returns the post locator described by the configuration.
func (c *Config) Locator() Locator {
	return Locator{
		URLPrefix:  c.PostURLPrefix,
		BasePath:   c.BasePath,
		PathPrefix: c.PathPrefix,
	}
}
