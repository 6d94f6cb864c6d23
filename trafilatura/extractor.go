// Package trafilatura provides a last-resort body extractor built on
// go-trafilatura, for board pages whose layout none of the selectors know.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/bbsdoc"
	"github.com/markusmobius/go-trafilatura"
)

// StrategyName identifies results produced by this extractor.
const StrategyName = "trafilatura"

// Ensure Extractor implements bbsdoc.Extractor at compile time.
var _ bbsdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string) (*bbsdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bbsdoc.Errorf(bbsdoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.ContentText)
	r := &bbsdoc.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}
	if text != "" {
		r.Strategy = StrategyName
	}
	return r, nil
}
