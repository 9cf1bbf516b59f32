package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WidthMode selects how cell text is measured for column padding.
type WidthMode string

const (
	// WidthCodepoint counts Unicode code points.
	WidthCodepoint WidthMode = "codepoint"
	// WidthGrapheme counts user-perceived characters (grapheme clusters).
	WidthGrapheme WidthMode = "grapheme"
	// WidthDisplay counts terminal cells; wide CJK and emoji count two.
	WidthDisplay WidthMode = "display"
)

// ParseWidthMode parses "codepoint", "grapheme" or "display".
func ParseWidthMode(s string) (WidthMode, bool) {
	switch WidthMode(strings.ToLower(strings.TrimSpace(s))) {
	case WidthCodepoint:
		return WidthCodepoint, true
	case WidthGrapheme, "":
		return WidthGrapheme, true
	case WidthDisplay:
		return WidthDisplay, true
	default:
		return WidthGrapheme, false
	}
}

// Measure returns the width of s. Unknown modes measure graphemes.
func (m WidthMode) Measure(s string) int {
	switch m {
	case WidthCodepoint:
		return utf8.RuneCountInString(s)
	case WidthDisplay:
		return uniseg.StringWidth(s)
	default:
		return uniseg.GraphemeClusterCount(s)
	}
}
