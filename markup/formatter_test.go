package markup_test

import (
	"strings"
	"testing"
	"time"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bbsdoc"
	"github.com/fwojciec/bbsdoc/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Formatter implements bbsdoc.DocumentFormatter at compile time.
var _ bbsdoc.DocumentFormatter = (*markup.Formatter)(nil)

func testDocument() *bbsdoc.Document {
	doc := bbsdoc.NewDocument("Running Board Archive", "the running board", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	doc.AddSection(bbsdoc.PostReference{
		Info: "Morning run log (author: alice, time: 2021-05-03 08:00:00)",
		URL:  "https://bbs.example.com/anc?path=/groups/running/M.1620000000.A",
	}, "Ran 5km today.\n\nFelt <great>.")
	doc.AddSection(bbsdoc.PostReference{Info: "Race day", URL: "https://bbs.example.com/anc?path=/M.2"}, bbsdoc.ExtractionMissPlaceholder)
	return doc
}

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("renders centered title and summary", func(t *testing.T) {
		t.Parallel()

		out, err := markup.NewFormatter().Format(testDocument())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, `<h1 style="text-align: center">Running Board Archive</h1>`)
		assert.Contains(t, out, "This document contains all posts extracted from the running board, 2 entries in total.<br/>Extracted at: 2024-01-02 03:04:05")
	})

	t.Run("renders one block per post in order", func(t *testing.T) {
		t.Parallel()

		out, err := markup.NewFormatter().Format(testDocument())
		require.NoError(t, err)

		page, err := gq.NewDocumentFromReader(strings.NewReader(out))
		require.NoError(t, err)

		posts := page.Find("div.post")
		require.Equal(t, 2, posts.Length())

		first := posts.Eq(0).Find("p")
		assert.Equal(t, "1.", first.Eq(0).Find("strong").Text())
		assert.Equal(t, "1. Morning run log (author: alice, time: 2021-05-03 08:00:00)", first.Eq(0).Text())
		assert.Equal(t, "link:", first.Eq(1).Find("strong").Text())
		href, _ := first.Eq(1).Find("a").Attr("href")
		assert.Equal(t, "https://bbs.example.com/anc?path=/groups/running/M.1620000000.A", href)
		assert.Equal(t, "Ran 5km today.\n\nFelt <great>.", posts.Eq(0).Find("pre.body").Text())
		assert.Equal(t, bbsdoc.Separator, first.Eq(2).Text())

		second := posts.Eq(1).Find("p")
		assert.Equal(t, "2.", second.Eq(0).Find("strong").Text())
		assert.Equal(t, bbsdoc.ExtractionMissPlaceholder, posts.Eq(1).Find("pre.body").Text())
	})

	t.Run("keeps body line breaks and escapes markup", func(t *testing.T) {
		t.Parallel()

		out, err := markup.NewFormatter().Format(testDocument())
		require.NoError(t, err)

		assert.Contains(t, out, "Ran 5km today.\n\nFelt &lt;great&gt;.")
		assert.Contains(t, out, "white-space: pre-wrap")
	})

	t.Run("keeps body indentation", func(t *testing.T) {
		t.Parallel()

		doc := bbsdoc.NewDocument("Archive", "the board", time.Now())
		doc.AddSection(bbsdoc.PostReference{Info: "Track session", URL: "https://bbs.example.com/anc?path=/M.3"}, "splits:\n  1k 4:30\n  2k 4:28")

		out, err := markup.NewFormatter().Format(doc)
		require.NoError(t, err)

		page, err := gq.NewDocumentFromReader(strings.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "splits:\n  1k 4:30\n  2k 4:28", page.Find("pre.body").Text())
	})

	t.Run("renders document without sections", func(t *testing.T) {
		t.Parallel()

		doc := bbsdoc.NewDocument("Empty", "the board", time.Now())

		out, err := markup.NewFormatter().Format(doc)
		require.NoError(t, err)

		assert.Contains(t, out, "0 entries in total")
		assert.NotContains(t, out, `class="post"`)
	})
}
