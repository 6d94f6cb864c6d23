package mock

import (
	"context"

	"github.com/fwojciec/bbsdoc"
)

var _ bbsdoc.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of bbsdoc.DocumentStore.
type DocumentStore struct {
	SaveFn func(ctx context.Context, doc *bbsdoc.Document) error
	PathFn func() string
}

func (s *DocumentStore) Save(ctx context.Context, doc *bbsdoc.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *DocumentStore) Path() string {
	return s.PathFn()
}

var _ bbsdoc.DocumentFormatter = (*DocumentFormatter)(nil)

// DocumentFormatter is a mock implementation of bbsdoc.DocumentFormatter.
type DocumentFormatter struct {
	FormatFn func(doc *bbsdoc.Document) (string, error)
}

func (f *DocumentFormatter) Format(doc *bbsdoc.Document) (string, error) {
	return f.FormatFn(doc)
}
