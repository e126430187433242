package util

import "strings"

// Truncate shortens the provided string to the specified rune limit,
// appending an ellipsis when truncated. Used to bound log values and the
// one-line scoring summary.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
