package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bbsdoc"
)

// Ensure LoggingFeedParser implements bbsdoc.FeedParser.
var _ bbsdoc.FeedParser = (*LoggingFeedParser)(nil)

// LoggingFeedParser wraps a FeedParser with debug logging.
type LoggingFeedParser struct {
	next   bbsdoc.FeedParser
	logger *slog.Logger
}

// NewLoggingFeedParser creates a new LoggingFeedParser.
func NewLoggingFeedParser(next bbsdoc.FeedParser, logger *slog.Logger) *LoggingFeedParser {
	return &LoggingFeedParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the entry count.
func (p *LoggingFeedParser) Parse(feed string) (entries []bbsdoc.FeedEntry, err error) {
	defer func(begin time.Time) {
		p.logger.Info("feed parse",
			"bytes", len(feed),
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(feed)
}
