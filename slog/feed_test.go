package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/bbsdoc"
	"github.com/fwojciec/bbsdoc/mock"
	bbsslog "github.com/fwojciec/bbsdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFeedParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs entry count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedParser{
			ParseFn: func(feed string) ([]bbsdoc.FeedEntry, error) {
				return []bbsdoc.FeedEntry{{Title: "a", Path: "/M.1"}, {Title: "b", Path: "/M.2"}}, nil
			},
		}

		entries, err := bbsslog.NewLoggingFeedParser(inner, logger).Parse("<feed/>")

		require.NoError(t, err)
		assert.Len(t, entries, 2)
		output := buf.String()
		assert.Contains(t, output, `msg="feed parse"`)
		assert.Contains(t, output, "bytes=7")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedParser{
			ParseFn: func(feed string) ([]bbsdoc.FeedEntry, error) {
				return nil, errors.New("malformed")
			},
		}

		_, err := bbsslog.NewLoggingFeedParser(inner, logger).Parse("<")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=malformed")
	})
}
