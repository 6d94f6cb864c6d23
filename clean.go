package bbsdoc

import "strings"

// Boilerplate markers. Lines are compared lowercased and trimmed.
var (
	boilerplatePrefixes = []string{
		"--", // signature separator
		"source:",
		"edited:",
		"※ 来源:",
		"※ 修改:",
	}
	boilerplatePhrases = []string{
		"sent from",
		"came from",
		"via",
		"发自",
		"来自",
	}
)

// CleanText strips boilerplate lines (signatures, source footers, edit
// markers, "sent from" style trailers) and collapses every run of blank lines
// to a single empty line. The result is trimmed. CleanText is idempotent.
//
// Phrase markers match anywhere in a line, so a line mentioning "via" in
// running prose is dropped as well.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if IsBoilerplate(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			kept = append(kept, "")
			continue
		}
		blank = false
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// IsBoilerplate reports whether a single line is signature, footer, or
// editor-note text.
func IsBoilerplate(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	if s == "" {
		return false
	}
	for _, p := range boilerplatePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	for _, p := range boilerplatePhrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
