// Package preview builds the live preview of a parsed grid: header labels,
// padded body rows and right-alignment hints for numbers.
package preview

import (
	"strconv"

	"github.com/mithrel/tabmd/pkg/api"
)

// Cell is one rendered body cell.
type Cell struct {
	Text    string `json:"text"`
	Numeric bool   `json:"numeric"` // right-align when rendered
}

// Table is the preview of a grid. The zero value is an empty preview.
type Table struct {
	Header []string `json:"header"`
	Rows   [][]Cell `json:"rows"`
}

// Empty reports whether there is nothing to show.
func (t Table) Empty() bool { return len(t.Header) == 0 && len(t.Rows) == 0 }

// Columns returns the column count shared by the header and every row.
func (t Table) Columns() int { return len(t.Header) }

// Build turns g into a preview. The header and all body rows are padded to
// g.MaxColumns(), the same width the Markdown emitter pads to. Empty header
// cells are labelled "Column N".
func Build(g api.Grid) Table {
	if len(g) == 0 {
		return Table{}
	}
	cols := g.MaxColumns()
	padded := g.Pad()

	t := Table{Header: make([]string, cols)}
	for j, h := range padded[0] {
		if h == "" {
			h = ColumnLabel(j)
		}
		t.Header[j] = h
	}
	for _, r := range padded[1:] {
		row := make([]Cell, cols)
		for j, c := range r {
			row[j] = Cell{Text: c, Numeric: IsNumeric(c)}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ColumnLabel is the placeholder for an empty header at zero-based index i.
func ColumnLabel(i int) string { return "Column " + strconv.Itoa(i+1) }
