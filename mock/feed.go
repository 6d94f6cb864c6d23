package mock

import "github.com/fwojciec/bbsdoc"

var _ bbsdoc.FeedParser = (*FeedParser)(nil)

// FeedParser is a mock implementation of bbsdoc.FeedParser.
type FeedParser struct {
	ParseFn func(feed string) ([]bbsdoc.FeedEntry, error)
}

func (p *FeedParser) Parse(feed string) ([]bbsdoc.FeedEntry, error) {
	return p.ParseFn(feed)
}
