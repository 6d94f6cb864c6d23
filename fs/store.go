// Package fs provides file-based storage for archive documents.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/bbsdoc"
)

// Ensure DocumentStore implements bbsdoc.DocumentStore at compile time.
var _ bbsdoc.DocumentStore = (*DocumentStore)(nil)

// DocumentStore writes a formatted document to a single file with atomic
// replace semantics. Content goes to path.tmp first and is renamed over
// path once fully written.
type DocumentStore struct {
	path      string
	formatter bbsdoc.DocumentFormatter
}

// NewDocumentStore creates a new DocumentStore writing to path.
func NewDocumentStore(path string, formatter bbsdoc.DocumentFormatter) *DocumentStore {
	return &DocumentStore{
		path:      path,
		formatter: formatter,
	}
}

// Path returns the destination file path.
func (s *DocumentStore) Path() string {
	return s.path
}

func (s *DocumentStore) tempPath() string {
	return s.path + ".tmp"
}

// Save formats doc and writes it to the destination, replacing any
// existing file.
func (s *DocumentStore) Save(ctx context.Context, doc *bbsdoc.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := s.formatter.Format(doc)
	if err != nil {
		return bbsdoc.Errorf(bbsdoc.EINTERNAL, "failed to format document: %v", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(s.tempPath(), []byte(content), 0644); err != nil {
		_ = os.Remove(s.tempPath())
		return err
	}

	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = os.Remove(s.tempPath())
		return err
	}

	return nil
}
