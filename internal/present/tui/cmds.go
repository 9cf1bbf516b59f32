package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/tabmd/internal/clipboard"
)

// copyResultMsg conveys the outcome of a clipboard write back to Update.
type copyResultMsg struct {
	err error
}

// pasteResultMsg carries text read from the clipboard.
type pasteResultMsg struct {
	text string
	err  error
}

// copyCmd writes text to the clipboard off the event loop.
func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: w.WriteText(text)}
	}
}

// pasteCmd reads the clipboard off the event loop.
func pasteCmd(r clipboard.Reader) tea.Cmd {
	return func() tea.Msg {
		s, err := r.ReadText()
		return pasteResultMsg{text: s, err: err}
	}
}
