package export

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy   = bluemonday.StrictPolicy()
	blockBoundary = regexp.MustCompile(`(?i)</(p|div|li|ul|ol|h[1-6]|section|header|footer|main|aside|tr|table)>|<br\s*/?>`)
)

// PlainText derives clipboard-ready text from generated resume HTML. Block
// boundaries become line breaks so the result reads top to bottom.
func PlainText(rawHTML string) string {
	withBreaks := blockBoundary.ReplaceAllString(rawHTML, "\n")
	stripped := stripPolicy.Sanitize(withBreaks)
	text := html.UnescapeString(stripped)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
