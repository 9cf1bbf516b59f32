// Package tabular splits tab-delimited text into a grid of cells.
package tabular

import (
	"strings"

	"github.com/mithrel/tabmd/pkg/api"
)

// Parse splits s on newlines and tabs. Blank lines are dropped and each
// cell is trimmed; rows are left ragged.
func Parse(s string) api.Grid {
	if strings.TrimSpace(s) == "" {
		return api.Grid{}
	}
	lines := strings.Split(s, "\n")
	g := make(api.Grid, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		row := make(api.Row, len(parts))
		for i, p := range parts {
			row[i] = strings.TrimSpace(p)
		}
		g = append(g, row)
	}
	return g
}

// CountLines returns the number of lines Parse keeps.
func CountLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
