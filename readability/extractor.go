// Package readability provides a last-resort body extractor built on
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/bbsdoc"
	"github.com/go-shiori/go-readability"
)

// StrategyName identifies results produced by this extractor.
const StrategyName = "readability"

// Ensure Extractor implements bbsdoc.Extractor at compile time.
var _ bbsdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string) (*bbsdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, bbsdoc.Errorf(bbsdoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(article.TextContent)
	r := &bbsdoc.ExtractResult{
		Title: article.Title,
		Text:  text,
	}
	if text != "" {
		r.Strategy = StrategyName
	}
	return r, nil
}
