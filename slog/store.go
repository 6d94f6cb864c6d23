package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bbsdoc"
)

// Ensure LoggingDocumentStore implements bbsdoc.DocumentStore.
var _ bbsdoc.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with debug logging.
type LoggingDocumentStore struct {
	next   bbsdoc.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next bbsdoc.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) Save(ctx context.Context, doc *bbsdoc.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save",
			"path", s.next.Path(),
			"sections", len(doc.Sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, doc)
}

// Path delegates to the wrapped store.
func (s *LoggingDocumentStore) Path() string {
	return s.next.Path()
}
