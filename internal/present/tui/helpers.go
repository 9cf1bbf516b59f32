package tui

import "strings"

// tabMarker stands in for a tab inside the textarea, which would otherwise
// turn tabs into spaces.
const tabMarker = "␉"

func toMarkers(s string) string { return strings.ReplaceAll(s, "\t", tabMarker) }

func fromMarkers(s string) string { return strings.ReplaceAll(s, tabMarker, "\t") }

// clipLines keeps at most n lines of s.
func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
