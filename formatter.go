package bbsdoc

import (
	"strconv"
	"strings"
)

var _ DocumentFormatter = TextFormatter{}

// TextFormatter renders a document as plain text, for terminals and .txt files.
type TextFormatter struct{}

// Format renders the title, summary, and sections separated by blank lines.
func (TextFormatter) Format(doc *Document) (string, error) {
	var b strings.Builder
	b.WriteString(doc.Title)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(doc.Summary(), "\n"))
	b.WriteString("\n\n")

	for _, s := range doc.Sections {
		b.WriteString(strconv.Itoa(s.Index))
		b.WriteString(". ")
		b.WriteString(s.Post.Info)
		b.WriteString("\nlink: ")
		b.WriteString(s.Post.URL)
		b.WriteString("\n")
		b.WriteString(s.Body)
		b.WriteString("\n")
		b.WriteString(Separator)
		b.WriteString("\n")
	}

	return b.String(), nil
}
