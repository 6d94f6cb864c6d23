package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bbsdoc"
)

// Ensure LoggingExtractor implements bbsdoc.Extractor.
var _ bbsdoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging. Each extraction
// is logged with the winning strategy and a digest of the text, which makes
// identical bodies easy to spot across posts.
type LoggingExtractor struct {
	next   bbsdoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next bbsdoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (result *bbsdoc.ExtractResult, err error) {
	defer func(begin time.Time) {
		var strategy, title, text string
		if result != nil {
			strategy, title, text = result.Strategy, result.Title, result.Text
		}
		e.logger.Info("extract",
			"title", title,
			"strategy", strategy,
			"length", len(text),
			"hash", fmt.Sprintf("%x", xxhash.Sum64String(text)),
			"missed", result.Missed(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
