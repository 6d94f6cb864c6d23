package mock

import "github.com/fwojciec/bbsdoc"

var _ bbsdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bbsdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*bbsdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*bbsdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
