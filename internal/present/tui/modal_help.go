package tui

import (
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

// helpModal is a foreground box listing every key binding.
type helpModal struct {
	body   string
	width  int
	height int
	padX   int
	padY   int
	box    lipglossv2.Style
}

func newHelpModal(body string, termW, termH int) *helpModal {
	m := &helpModal{body: body, padX: 2, padY: 1}
	m.resizeForTerm(termW, termH)
	return m
}

func (m *helpModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := lipglossv2.Width(m.body) + 2 + m.padX*2
	h := lipglossv2.Height(m.body) + 4 + m.padY*2
	w = min(max(w, 32), termW-2)
	h = min(h, termH-1)
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))
}

func (m *helpModal) View() string {
	title := lipglossv2.NewStyle().Bold(true).Render("Keys")
	foot := lipglossv2.NewStyle().Faint(true).Render("f1/esc to close")
	return m.box.Render(title + "\n\n" + m.body + "\n" + foot)
}
