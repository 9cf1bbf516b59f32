package tui

import (
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

// renderOverlay composes a centered modal on top of the given base view string.
func (m model) renderOverlay(base, fg string, overlayW, overlayH, termW, termH int) string {
	x := max(0, (termW-overlayW)/2)
	y := max(0, (termH-overlayH)/2)
	// Whole-view dim of the background
	dimBase := lipglossv2.NewStyle().Faint(true).Render(base)

	baseLayer := lipglossv2.NewLayer(dimBase).
		Width(termW).
		Height(termH)
	fgLayer := lipglossv2.NewLayer(fg).
		Width(overlayW).
		Height(overlayH).
		X(x).
		Y(y)

	return lipglossv2.NewCanvas(baseLayer, fgLayer).Render()
}

// pane frames body in a rounded border with a title on the first line.
func pane(title, body string, termW int, focused bool) string {
	color := lipglossv2.Color("241")
	if focused {
		color = lipglossv2.Color("63")
	}
	head := lipglossv2.NewStyle().Bold(true).Foreground(color).Render(title)
	return lipglossv2.NewStyle().
		Width(max(20, termW-2)).
		Padding(0, 1).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(color).
		Render(head + "\n" + body)
}
