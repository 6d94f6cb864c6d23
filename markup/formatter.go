// Package markup renders archive documents as HTML using golang.org/x/net/html.
package markup

import (
	"bytes"
	"strconv"

	"github.com/fwojciec/bbsdoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Formatter implements bbsdoc.DocumentFormatter at compile time.
var _ bbsdoc.DocumentFormatter = (*Formatter)(nil)

// Formatter renders a document as a standalone HTML page: a centered
// heading, the summary, and one block per post. Post bodies are
// preformatted so indentation and blank lines survive rendering.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders doc as HTML.
func (f *Formatter) Format(doc *bbsdoc.Document) (string, error) {
	body := element(atom.Body)
	body.AppendChild(element(atom.H1, attr("style", "text-align: center"), text(doc.Title)))
	body.AppendChild(lines(element(atom.P, attr("class", "summary")), doc.Summary()))

	for _, s := range doc.Sections {
		body.AppendChild(section(s))
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root.AppendChild(element(atom.Html,
		element(atom.Head,
			element(atom.Meta, attr("charset", "utf-8")),
			element(atom.Title, text(doc.Title)),
		),
		body,
	))

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func section(s bbsdoc.Section) *html.Node {
	return element(atom.Div, attr("class", "post"),
		element(atom.P,
			element(atom.Strong, text(strconv.Itoa(s.Index)+".")),
			text(" "+s.Post.Info),
		),
		element(atom.P,
			element(atom.Strong, text("link:")),
			text(" "),
			element(atom.A, attr("href", s.Post.URL), text(s.Post.URL)),
		),
		element(atom.Pre,
			attr("class", "body"),
			attr("style", "margin-bottom: 6pt; white-space: pre-wrap; font-family: inherit"),
			text(s.Body),
		),
		element(atom.P, attr("class", "separator"), text(bbsdoc.Separator)),
	)
}

// lines appends each line to p as text, separated by <br> elements.
func lines(p *html.Node, ls []string) *html.Node {
	for i, l := range ls {
		if i > 0 {
			p.AppendChild(element(atom.Br))
		}
		p.AppendChild(text(l))
	}
	return p
}

// element builds an element node. Children may be *html.Node values or
// html.Attribute values, applied in order.
func element(a atom.Atom, children ...any) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		switch c := c.(type) {
		case html.Attribute:
			n.Attr = append(n.Attr, c)
		case *html.Node:
			n.AppendChild(c)
		}
	}
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
