package bbsdoc

// ExtractResult holds the main text block located in a post page.
type ExtractResult struct {
	// Title is the page <title>, reported when extraction misses.
	Title string

	// Text is the located block's text, one text node per line.
	// Empty when no strategy located a block.
	Text string

	// Strategy names the selector or heuristic that located Text.
	Strategy string
}

// Missed reports whether no strategy located a body.
func (r *ExtractResult) Missed() bool {
	return r == nil || r.Text == ""
}

// Extractor locates the main text block of a post page.
type Extractor interface {
	// Extract parses raw HTML and returns the located text.
	// A page with no recognizable body is not an error: the result
	// carries the page title and an empty Text.
	Extract(html string) (*ExtractResult, error)
}
