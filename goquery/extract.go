// Package goquery locates post bodies in board pages using CSS selectors.
package goquery

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bbsdoc"
	"golang.org/x/net/html/charset"
)

// Ensure Extractor implements bbsdoc.Extractor at compile time.
var _ bbsdoc.Extractor = (*Extractor)(nil)

// FallbackStrategy names results produced by the generic div scan.
const FallbackStrategy = "div-scan"

// Extractor tries an ordered list of strategies and takes the first one
// whose selector matches. When none matches, or the match holds no text,
// it scans generic div containers for the first sizeable block, and
// finally consults an optional fallback extractor.
type Extractor struct {
	strategies []Strategy
	minLength  int
	fallback   bbsdoc.Extractor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStrategies replaces the default strategy list.
func WithStrategies(strategies ...Strategy) Option {
	return func(e *Extractor) {
		e.strategies = strategies
	}
}

// WithMinFallbackLength sets the length a div's text must exceed in the
// generic scan. Defaults to DefaultMinFallbackLength.
func WithMinFallbackLength(n int) Option {
	return func(e *Extractor) {
		e.minLength = n
	}
}

// WithFallback sets an extractor consulted after the div scan misses.
func WithFallback(fallback bbsdoc.Extractor) Option {
	return func(e *Extractor) {
		e.fallback = fallback
	}
}

// NewExtractor creates a new Extractor using DefaultStrategies.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		strategies: DefaultStrategies(),
		minLength:  DefaultMinFallbackLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses raw HTML and returns the located body text.
// When nothing qualifies the result has an empty Text and the page title.
func (e *Extractor) Extract(rawHTML string) (*bbsdoc.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(decode(rawHTML))
	if err != nil {
		return nil, bbsdoc.Errorf(bbsdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &bbsdoc.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	for _, s := range e.strategies {
		if text, ok := s.Find(doc); ok {
			result.Text = text
			result.Strategy = s.Name
			break
		}
	}
	if result.Text != "" {
		return result, nil
	}

	if text := scanDivs(doc, e.minLength); text != "" {
		result.Text = text
		result.Strategy = FallbackStrategy
		return result, nil
	}

	result.Strategy = ""
	if e.fallback != nil {
		fb, err := e.fallback.Extract(rawHTML)
		if err == nil && !fb.Missed() {
			result.Text = fb.Text
			result.Strategy = fb.Strategy
		}
	}

	return result, nil
}

// decode converts non-UTF-8 pages using the charset declared in their
// meta tags.
func decode(rawHTML string) io.Reader {
	if utf8.ValidString(rawHTML) {
		return strings.NewReader(rawHTML)
	}
	r, err := charset.NewReader(strings.NewReader(rawHTML), "")
	if err != nil {
		return strings.NewReader(rawHTML)
	}
	return r
}
