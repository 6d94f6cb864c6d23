package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultMinFallbackLength is the number of characters a generic container's
// text must exceed to be taken as the body.
const DefaultMinFallbackLength = 30

// Strategy locates a candidate body in a parsed page.
// Find reports ok when its selector matched, even if the match holds no text.
type Strategy struct {
	Name string
	Find func(doc *goquery.Document) (text string, ok bool)
}

// SelectorStrategy returns a strategy taking the text of the first element
// matching the CSS selector.
func SelectorStrategy(selector string) Strategy {
	return Strategy{
		Name: selector,
		Find: func(doc *goquery.Document) (string, bool) {
			sel := doc.Find(selector).First()
			if sel.Length() == 0 {
				return "", false
			}
			return Text(sel), true
		},
	}
}

// DefaultStrategies returns the board's body selectors in priority order:
// preformatted text first, then article and common content containers.
func DefaultStrategies() []Strategy {
	return []Strategy{
		SelectorStrategy("pre"),
		SelectorStrategy("article"),
		SelectorStrategy("div.content"),
		SelectorStrategy("div.post-content"),
		SelectorStrategy("div.article-content"),
	}
}

// scanDivs returns the text of the first div not classed header or footer
// whose text is longer than minLen characters. Only a div whose sole class
// is header or footer is skipped; "header main" is still scanned.
func scanDivs(doc *goquery.Document, minLen int) string {
	var found string
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if isHeaderOrFooter(s) {
			return true
		}
		text := Text(s)
		if utf8.RuneCountInString(text) > minLen {
			found = text
			return false
		}
		return true
	})
	return found
}

func isHeaderOrFooter(s *goquery.Selection) bool {
	class, _ := s.Attr("class")
	fields := strings.Fields(class)
	return len(fields) == 1 && (fields[0] == "header" || fields[0] == "footer")
}

// Text returns the selection's descendant text nodes, each trimmed, joined
// by newlines. Empty nodes and script or style contents are skipped.
func Text(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
