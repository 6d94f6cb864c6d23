// Package crawl provides board harvesting orchestration.
// It coordinates index fetching, post location, body extraction, cleaning,
// and storage of the assembled archive document.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/bbsdoc"
)

// Harvester orchestrates a single sequential harvest of a board.
// RateLimiter, Throttle, and Now are optional.
type Harvester struct {
	Config      bbsdoc.Config
	Fetcher     bbsdoc.Fetcher
	Feed        bbsdoc.FeedParser
	Extractor   bbsdoc.Extractor
	Store       bbsdoc.DocumentStore
	RateLimiter bbsdoc.DomainLimiter
	Throttle    bbsdoc.Throttler
	Now         func() time.Time
}

// Result holds the outcome of a harvest.
type Result struct {
	Posts     int
	Extracted int
	Failed    int
	Missed    int
	Bytes     int
	Path      string
}

// ProgressEvent reports progress during a harvest.
type ProgressEvent struct {
	Type     ProgressType
	Index    int
	Total    int
	URL      string
	Info     string
	Title    string
	Preview  string
	Strategy string
	Hash     string
	Bytes    int
	Path     string
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressIndexFailed reports that the index could not be fetched or parsed.
	ProgressIndexFailed ProgressType = iota
	// ProgressEmpty reports that the index held no posts to harvest.
	ProgressEmpty
	// ProgressStarted reports the number of posts about to be harvested.
	ProgressStarted
	// ProgressPost announces the post about to be fetched.
	ProgressPost
	// ProgressCompleted reports a post whose body was extracted.
	ProgressCompleted
	// ProgressFailed reports a post whose page could not be fetched.
	ProgressFailed
	// ProgressMissed reports a post page with no recognizable body.
	ProgressMissed
	// ProgressFinished reports that the document was saved.
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// FetchIndex downloads and parses the index feed and returns the posts it
// lists, in feed order and capped at Config.Limit.
func (h *Harvester) FetchIndex(ctx context.Context) ([]bbsdoc.PostReference, error) {
	if err := h.wait(ctx, h.Config.FeedURL); err != nil {
		return nil, err
	}

	feed, err := h.Fetcher.Fetch(ctx, h.Config.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}

	entries, err := h.Feed.Parse(feed)
	if err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	posts := h.Config.Locator().Locate(entries)
	if h.Config.Limit > 0 && len(posts) > h.Config.Limit {
		posts = posts[:h.Config.Limit]
	}
	return posts, nil
}

// Run harvests every post listed in the index and saves the archive.
// Per-post failures are recorded in the document and never stop the run.
// An index failure is reported and treated as an empty board. Only a save
// failure or context cancellation returns an error.
func (h *Harvester) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	posts, err := h.FetchIndex(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		progress(ProgressEvent{Type: ProgressIndexFailed, URL: h.Config.FeedURL, Error: err})
		posts = nil
	}

	if len(posts) == 0 {
		progress(ProgressEvent{Type: ProgressEmpty})
		return &Result{}, nil
	}

	total := len(posts)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	doc := bbsdoc.NewDocument(h.Config.Title, h.Config.Board, h.now())
	result := &Result{Posts: total}

	for i, post := range posts {
		progress(ProgressEvent{
			Type:  ProgressPost,
			Index: i + 1,
			Total: total,
			URL:   post.URL,
			Info:  post.Info,
		})

		body, err := h.harvest(ctx, i+1, total, post, result, progress)
		if err != nil {
			return nil, err
		}
		doc.AddSection(post, body)
		result.Bytes += len(body)

		if h.Throttle != nil {
			if err := h.Throttle.Wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	if err := h.Store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	result.Path = h.Store.Path()

	progress(ProgressEvent{
		Type:  ProgressFinished,
		Total: total,
		Bytes: result.Bytes,
		Path:  result.Path,
	})

	return result, nil
}

// harvest fetches, extracts, and cleans a single post, returning the body
// to record. The returned error is non-nil only when ctx is done.
func (h *Harvester) harvest(ctx context.Context, index, total int, post bbsdoc.PostReference, result *Result, progress ProgressFunc) (string, error) {
	if err := h.wait(ctx, post.URL); err != nil {
		return "", err
	}

	page, err := h.Fetcher.Fetch(ctx, post.URL)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		result.Failed++
		progress(ProgressEvent{
			Type:  ProgressFailed,
			Index: index,
			Total: total,
			URL:   post.URL,
			Error: err,
		})
		return bbsdoc.FetchFailedPlaceholder(err), nil
	}

	extracted, err := h.Extractor.Extract(page)
	if err != nil || extracted.Missed() {
		result.Missed++
		event := ProgressEvent{
			Type:    ProgressMissed,
			Index:   index,
			Total:   total,
			URL:     post.URL,
			Preview: Preview(page, h.Config.PreviewLength),
			Error:   err,
		}
		if extracted != nil {
			event.Title = extracted.Title
		}
		progress(event)
		return bbsdoc.ExtractionMissPlaceholder, nil
	}

	body := bbsdoc.CleanText(extracted.Text)
	result.Extracted++
	progress(ProgressEvent{
		Type:     ProgressCompleted,
		Index:    index,
		Total:    total,
		URL:      post.URL,
		Strategy: extracted.Strategy,
		Hash:     ComputeHash(body),
		Bytes:    len(body),
	})
	return body, nil
}

// wait applies the per-host rate limit to rawURL when a limiter is set.
func (h *Harvester) wait(ctx context.Context, rawURL string) error {
	if h.RateLimiter == nil {
		return nil
	}
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return h.RateLimiter.Wait(ctx, host)
}

func (h *Harvester) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
