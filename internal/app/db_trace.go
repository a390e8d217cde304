package app

import (
	"regexp"
	"strings"
)

// Spans carry a compacted copy of each SQL statement. Whitespace runs are
// folded and long statements truncated so trace exports stay small.
const maxTracedQueryLength = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	compact := collapseWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(compact) > maxTracedQueryLength {
		compact = compact[:maxTracedQueryLength] + "..."
	}
	return compact
}
