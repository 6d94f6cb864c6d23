package bbsdoc

import (
	"strings"
	"time"
)

// FeedEntry is one post listed in the board's index feed, before validation.
type FeedEntry struct {
	Title  string
	Path   string // relative to the board base path, e.g. "/M.1620000000.A"
	Author string
	Time   string // ISO-8601-like, as published by the feed
}

// FeedParser parses the board's index feed.
type FeedParser interface {
	// Parse returns the feed entries in document order.
	// Returns EINVALID if the feed cannot be parsed.
	Parse(feed string) ([]FeedEntry, error)
}

// PostReference is a validated feed entry with a resolved page URL.
type PostReference struct {
	// Info is the title, optionally followed by author and time.
	Info string
	URL  string
}

// Locator turns feed entries into post references.
type Locator struct {
	URLPrefix  string
	BasePath   string
	PathPrefix string
}

// Locate returns a reference for every entry with a title and a path
// starting with the message-identifier prefix. Feed order is preserved and
// duplicates are kept.
func (l Locator) Locate(entries []FeedEntry) []PostReference {
	refs := make([]PostReference, 0, len(entries))
	for _, e := range entries {
		if !l.Accepts(e) {
			continue
		}
		refs = append(refs, PostReference{
			Info: FormatInfo(e),
			URL:  l.URLPrefix + l.BasePath + e.Path,
		})
	}
	return refs
}

// Accepts reports whether the entry passes the path filter.
func (l Locator) Accepts(e FeedEntry) bool {
	return e.Title != "" && e.Path != "" && strings.HasPrefix(e.Path, l.PathPrefix)
}

// FormatInfo formats the display line for an entry:
//
//	Title (author: alice, time: 2021-05-03 08:00:00)
//
// The parenthesized suffix carries only the fields that are present and is
// omitted when both are empty.
func FormatInfo(e FeedEntry) string {
	var parts []string
	if e.Author != "" {
		parts = append(parts, "author: "+e.Author)
	}
	if e.Time != "" {
		parts = append(parts, "time: "+FormatTimestamp(e.Time))
	}
	if len(parts) == 0 {
		return e.Title
	}
	return e.Title + " (" + strings.Join(parts, ", ") + ")"
}

// timestampLayouts are the ISO-8601 variants boards are known to publish.
// A trailing "Z" is accepted wherever a zone is.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatTimestamp reformats an ISO-8601-like timestamp as
// "YYYY-MM-DD HH:MM:SS" in its own offset. Unparseable input is returned
// unchanged.
func FormatTimestamp(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateTime)
		}
	}
	return raw
}
