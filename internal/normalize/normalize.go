// Package normalize replaces the smart punctuation spreadsheets and word
// processors insert on copy with plain ASCII.
package normalize

import (
	"strconv"
	"strings"
)

const nbsp = '\u00a0'

var replacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
	string(nbsp), " ",
)

// Text returns s with smart punctuation replaced. All other runes,
// emoji and astral code points included, pass through unchanged.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return replacer.Replace(s)
}

// Occurrence is one smart punctuation rune found by Detect.
type Occurrence struct {
	Rune  rune   `json:"rune"`
	Name  string `json:"name"`
	Index int    `json:"index"` // rune index into the input
}

func (o Occurrence) String() string {
	pos := " at position " + strconv.Itoa(o.Index)
	if o.Rune == nbsp {
		return "Non-breaking space" + pos
	}
	return strings.ToUpper(o.Name[:1]) + o.Name[1:] + " (" + string(o.Rune) + ")" + pos
}

// Detect lists every rune Text would replace. It is diagnostic only.
func Detect(s string) []Occurrence {
	var out []Occurrence
	i := 0
	for _, r := range s {
		if name, ok := names[r]; ok {
			out = append(out, Occurrence{Rune: r, Name: name, Index: i})
		}
		i++
	}
	return out
}

var names = map[rune]string{
	'–':  "en dash",
	'—':  "em dash",
	'‘':  "smart quote",
	'’':  "smart quote",
	'“':  "smart quote",
	'”':  "smart quote",
	'…':  "ellipsis",
	nbsp: "non-breaking space",
}
