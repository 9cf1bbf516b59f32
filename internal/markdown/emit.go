// Package markdown renders a grid as a GitHub-flavoured Markdown pipe table.
package markdown

import (
	"fmt"
	"strings"

	"github.com/mithrel/tabmd/pkg/api"
)

// minDelimiter is the narrowest delimiter cell; GFM needs at least three
// dashes for most renderers to agree on a table.
const minDelimiter = 3

// Options tune Emit. The zero value emits compact rows; use DefaultOptions.
type Options struct {
	Width       WidthMode
	Align       bool // pad cells so the source lines up
	EscapePipes bool
}

// DefaultOptions aligns columns by grapheme count and escapes pipes.
func DefaultOptions() Options {
	return Options{Width: WidthGrapheme, Align: true, EscapePipes: true}
}

// Emit renders g as a pipe table: header from row 0, a delimiter row, then
// the remaining rows. Rows are padded to the widest row first.
//
// An empty grid yields api.ErrEmptyInput and a first row without cells
// yields api.ErrInvalidFormat. Anything else that goes wrong is reported
// as *api.ConversionError.
func Emit(g api.Grid, opts Options) (string, error) {
	return emitWith(g, opts, opts.Width.Measure)
}

func emitWith(g api.Grid, opts Options, measure func(string) int) (md string, err error) {
	if len(g) == 0 {
		return "", api.ErrEmptyInput
	}
	if len(g[0]) == 0 {
		return "", api.ErrInvalidFormat
	}
	defer func() {
		if r := recover(); r != nil {
			md, err = "", &api.ConversionError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	rows := g.Pad()
	cols := len(rows[0])

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = make([]string, cols)
		for j, c := range r {
			if opts.EscapePipes {
				c = EscapePipes(c)
			}
			cells[i][j] = c
		}
	}

	widths := make([]int, cols)
	for j := range widths {
		widths[j] = minDelimiter
		if !opts.Align {
			continue
		}
		for i := range cells {
			if w := measure(cells[i][j]); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	writeRow(&b, cells[0], widths, opts.Align, measure)
	b.WriteByte('\n')
	writeDelimiter(&b, widths)
	for _, r := range cells[1:] {
		b.WriteByte('\n')
		writeRow(&b, r, widths, opts.Align, measure)
	}
	return b.String(), nil
}

func writeRow(b *strings.Builder, row []string, widths []int, align bool, measure func(string) int) {
	b.WriteByte('|')
	for j, c := range row {
		b.WriteByte(' ')
		b.WriteString(c)
		if align {
			if pad := widths[j] - measure(c); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString(" |")
	}
}

func writeDelimiter(b *strings.Builder, widths []int) {
	b.WriteByte('|')
	for _, w := range widths {
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("-", w))
		b.WriteString(" |")
	}
}

// EscapePipes backslash-escapes literal pipes so they stay inside a cell.
// Backslashes directly before a pipe are doubled first: GFM strips one
// backslash from every \| in a cell before inline parsing, so a literal
// `c\|d` has to be written `c\\\|d` to render unchanged.
func EscapePipes(s string) string {
	if !strings.Contains(s, "|") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	run := 0 // backslashes seen since the last other byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			run++
			continue
		case '|':
			b.WriteString(strings.Repeat(`\`, run*2))
			b.WriteString(`\|`)
		default:
			b.WriteString(strings.Repeat(`\`, run))
			b.WriteByte(c)
		}
		run = 0
	}
	b.WriteString(strings.Repeat(`\`, run))
	return b.String()
}
