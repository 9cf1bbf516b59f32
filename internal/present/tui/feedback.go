package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actionConvert action = iota
	actionCopy
	actionClear
	numActions
)

var actionLabels = [numActions]string{"Convert", "Copy", "Clear"}

const (
	labelConverted   = "Converted!"
	labelCopied      = "Copied!"
	labelNothingCopy = "Nothing to copy"
	labelCopyFailed  = "Copy failed"
	labelCleared     = "Cleared!"
)

// feedback holds the temporary label of each action button. Every flash
// bumps the action's generation so only the newest timer reverts it.
type feedback struct {
	labels [numActions]string
	gens   [numActions]int
}

// feedbackExpiredMsg asks Update to revert a label if gen is still current.
type feedbackExpiredMsg struct {
	action action
	gen    int
}

func (f *feedback) flash(a action, label string, d time.Duration) tea.Cmd {
	f.gens[a]++
	f.labels[a] = label
	gen := f.gens[a]
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{action: a, gen: gen}
	})
}

func (f *feedback) expire(msg feedbackExpiredMsg) {
	if f.gens[msg.action] == msg.gen {
		f.labels[msg.action] = ""
	}
}

// label returns the current text for a, falling back to its name.
func (f *feedback) label(a action) string {
	if f.labels[a] != "" {
		return f.labels[a]
	}
	return actionLabels[a]
}
