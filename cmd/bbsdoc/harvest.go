package main

import (
	"fmt"

	"github.com/fwojciec/bbsdoc"
	"github.com/fwojciec/bbsdoc/crawl"
)

// Run executes the harvest and prints a summary.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	h := deps.Harvester
	fmt.Fprintf(deps.Stdout, "Harvesting %s\n", h.Config.Board)

	result, err := h.Run(deps.Ctx, c.progress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", message(err))
		return err
	}

	if result.Posts == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing extracted")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nDone: %d extracted, %d failed, %d without body\n", result.Extracted, result.Failed, result.Missed)
	fmt.Fprintf(deps.Stdout, "Saved %d posts to %s (%s)\n", result.Posts, result.Path, crawl.FormatBytes(result.Bytes))
	return nil
}

func (c *HarvestCmd) progress(deps *Dependencies) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressIndexFailed:
			fmt.Fprintf(deps.Stderr, "error fetching index %s: %s\n", e.URL, message(e.Error))
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d posts\n", e.Total)
		case crawl.ProgressPost:
			fmt.Fprintf(deps.Stdout, "\n[%d/%d] %s\n", e.Index, e.Total, e.Info)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  ok %s (%s, %s, %s)\n", crawl.TruncateURL(e.URL, 60), e.Strategy, crawl.FormatBytes(e.Bytes), e.Hash)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", e.URL, message(e.Error))
		case crawl.ProgressMissed:
			fmt.Fprintf(deps.Stdout, "  no body found at %s\n", e.URL)
			if e.Title != "" {
				fmt.Fprintf(deps.Stdout, "  page title: %s\n", e.Title)
			}
			if e.Preview != "" {
				fmt.Fprintf(deps.Stdout, "  page preview: %s\n", e.Preview)
			}
		}
	}
}

// message returns the user-facing text of err: the message of an
// application error, or the error string otherwise.
func message(err error) string {
	if bbsdoc.ErrorCode(err) == bbsdoc.EINTERNAL {
		return err.Error()
	}
	return bbsdoc.ErrorMessage(err)
}
