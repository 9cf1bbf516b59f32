package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTerminal draws t as a bordered terminal table with numbers
// right-aligned. A width of zero or less lets the table size itself.
func RenderTerminal(t Table, width int) string {
	if t.Empty() {
		return ""
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		cells := make([]string, len(r))
		for j, c := range r {
			cells[j] = c.Text
		}
		rows = append(rows, cells)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(t.Rows) && col < len(t.Rows[row]) && t.Rows[row][col].Numeric {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		})
	if width > 0 {
		tbl = tbl.Width(width)
	}
	return tbl.String()
}
