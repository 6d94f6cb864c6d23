// Package etree parses board index feeds using beevik/etree.
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/bbsdoc"
	"golang.org/x/net/html/charset"
)

// Ensure FeedParser implements bbsdoc.FeedParser at compile time.
var _ bbsdoc.FeedParser = (*FeedParser)(nil)

// FeedParser reads the XML directory listing a board publishes. Each post
// is an <ent> element carrying path, id (author), and time attributes,
// with the post title as its text.
type FeedParser struct {
	tag string
}

// NewFeedParser creates a new FeedParser.
func NewFeedParser() *FeedParser {
	return &FeedParser{tag: "ent"}
}

// Parse returns one entry per <ent> element, in document order.
// Feeds declaring a non-UTF-8 encoding in their prolog are decoded.
func (p *FeedParser) Parse(feed string) ([]bbsdoc.FeedEntry, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromString(feed); err != nil {
		return nil, bbsdoc.Errorf(bbsdoc.EINVALID, "parsing feed XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, bbsdoc.Errorf(bbsdoc.EINVALID, "empty feed XML")
	}

	entries := []bbsdoc.FeedEntry{}
	p.collect(doc.Root(), &entries)
	return entries, nil
}

// collect appends entries in document order. etree's "//" path selects
// breadth-first, which would reorder nested listings.
func (p *FeedParser) collect(el *etree.Element, entries *[]bbsdoc.FeedEntry) {
	if el.Tag == p.tag {
		*entries = append(*entries, bbsdoc.FeedEntry{
			Title:  strippedText(el),
			Path:   el.SelectAttrValue("path", ""),
			Author: el.SelectAttrValue("id", ""),
			Time:   el.SelectAttrValue("time", ""),
		})
	}
	for _, child := range el.ChildElements() {
		p.collect(child, entries)
	}
}

// strippedText concatenates every descendant text node, each trimmed.
func strippedText(el *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(strings.TrimSpace(t.Data))
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(el)
	return b.String()
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	return charset.NewReaderLabel(label, input)
}
