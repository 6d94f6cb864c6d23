// Package htmltomarkdown renders archive documents as Markdown by converting
// their HTML rendering with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/bbsdoc"
	"golang.org/x/net/html"
)

// Ensure Formatter implements bbsdoc.DocumentFormatter at compile time.
var _ bbsdoc.DocumentFormatter = (*Formatter)(nil)

// Formatter renders a document to HTML with an inner formatter, then
// converts the result to Markdown. Preformatted post bodies become fenced
// code blocks, and links whose text is their own URL become autolinks so
// the URL is written exactly as constructed.
type Formatter struct {
	html bbsdoc.DocumentFormatter
	conv *converter.Converter
}

// NewFormatter creates a new Formatter converting the output of html.
func NewFormatter(html bbsdoc.DocumentFormatter) *Formatter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.Renderer(renderAutolink, converter.PriorityEarly)
	return &Formatter{html: html, conv: conv}
}

// Format renders doc as Markdown.
func (f *Formatter) Format(doc *bbsdoc.Document) (string, error) {
	page, err := f.html.Format(doc)
	if err != nil {
		return "", err
	}
	return f.Convert(page)
}

// Convert transforms HTML content into Markdown.
func (f *Formatter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", bbsdoc.Errorf(bbsdoc.EINVALID, "empty HTML input")
	}

	result, err := f.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// renderAutolink writes <a href="u">u</a> as <u>. The commonmark link
// renderer re-encodes the query of href, turning "path=/M.1" into
// "path=%2FM.1".
func renderAutolink(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	if n.Type != html.ElementNode || n.Data != "a" {
		return converter.RenderTryNext
	}
	child := n.FirstChild
	if child == nil || child.NextSibling != nil || child.Type != html.TextNode {
		return converter.RenderTryNext
	}
	href := linkHref(n)
	if child.Data != href || !strings.Contains(href, "://") || strings.ContainsAny(href, " <>") {
		return converter.RenderTryNext
	}
	w.WriteString("<" + href + ">")
	return converter.RenderSuccess
}

func linkHref(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "href" {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
