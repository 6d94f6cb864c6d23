package bbsdoc

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Placeholders substituted for bodies that could not be retrieved.
const (
	ExtractionMissPlaceholder = "[unable to extract body]"
	fetchFailedFormat         = "[failed to fetch body: %s]"
)

// Separator closes every section of a document.
var Separator = strings.Repeat("─", 80)

// FetchFailedPlaceholder returns the body recorded for a post whose page
// could not be fetched. Application errors contribute their message only.
func FetchFailedPlaceholder(err error) string {
	msg := ErrorMessage(err)
	if ErrorCode(err) == EINTERNAL {
		msg = err.Error()
	}
	return fmt.Sprintf(fetchFailedFormat, msg)
}

// Section is one post in the output document.
type Section struct {
	Index int // 1-based
	Post  PostReference
	Body  string
}

// Document is the archive built in memory and serialized once.
type Document struct {
	Title       string
	Board       string
	GeneratedAt time.Time
	Sections    []Section
}

// NewDocument returns an empty document.
func NewDocument(title, board string, generatedAt time.Time) *Document {
	return &Document{
		Title:       title,
		Board:       board,
		GeneratedAt: generatedAt,
	}
}

// AddSection appends a section for post and returns it.
func (d *Document) AddSection(post PostReference, body string) Section {
	s := Section{
		Index: len(d.Sections) + 1,
		Post:  post,
		Body:  body,
	}
	d.Sections = append(d.Sections, s)
	return s
}

// Summary returns the two summary lines shown under the title.
func (d *Document) Summary() []string {
	return []string{
		fmt.Sprintf("This document contains all posts extracted from %s, %d entries in total.", d.Board, len(d.Sections)),
		"Extracted at: " + d.GeneratedAt.Format(time.DateTime),
	}
}

// DocumentFormatter serializes a document.
type DocumentFormatter interface {
	Format(doc *Document) (string, error)
}

// DocumentStore persists a finished document, replacing any previous one.
type DocumentStore interface {
	Save(ctx context.Context, doc *Document) error

	// Path returns where the document is written.
	Path() string
}
