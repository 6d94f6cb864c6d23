package slog_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bbsdoc"
	"github.com/fwojciec/bbsdoc/mock"
	bbsslog "github.com/fwojciec/bbsdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs strategy, length, and hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*bbsdoc.ExtractResult, error) {
				return &bbsdoc.ExtractResult{Title: "Run", Text: "Ran 5km today.", Strategy: "pre"}, nil
			},
		}

		result, err := bbsslog.NewLoggingExtractor(inner, logger).Extract("<pre>Ran 5km today.</pre>")

		require.NoError(t, err)
		assert.Equal(t, "Ran 5km today.", result.Text)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "strategy=pre")
		assert.Contains(t, output, "length=14")
		assert.Contains(t, output, fmt.Sprintf("hash=%x", xxhash.Sum64String("Ran 5km today.")))
		assert.Contains(t, output, "missed=false")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs misses", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*bbsdoc.ExtractResult, error) {
				return &bbsdoc.ExtractResult{Title: "Empty"}, nil
			},
		}

		_, err := bbsslog.NewLoggingExtractor(inner, logger).Extract("<p></p>")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "title=Empty")
		assert.Contains(t, output, "missed=true")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*bbsdoc.ExtractResult, error) {
				return nil, errors.New("parse failed")
			},
		}

		_, err := bbsslog.NewLoggingExtractor(inner, logger).Extract("<")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="parse failed"`)
	})
}
