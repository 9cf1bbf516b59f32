package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mithrel/tabmd/internal/clipboard"
	"github.com/mithrel/tabmd/internal/convert"
	"github.com/mithrel/tabmd/internal/markdown"
	"github.com/mithrel/tabmd/internal/preview"
	"github.com/mithrel/tabmd/pkg/api"
)

// Deps are the services the shell calls into. The shell owns all UI state;
// the converter is pure.
type Deps struct {
	Converter *convert.Converter
	Clipboard clipboard.Writer
	Source    clipboard.Reader // optional, backs ctrl+v
	Feedback  time.Duration
	Log       *zap.Logger
}

// Run starts the interactive converter with initial text in the input.
func Run(ctx context.Context, deps Deps, initial string) error {
	m := newModel(deps)
	if initial != "" {
		m.input.SetValue(toMarkers(initial))
		m.refreshPreview()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type model struct {
	deps Deps
	keys keyMap
	help help.Model

	input  textarea.Model
	output viewport.Model

	table       preview.Table
	previewView string
	lastInput   string

	result    api.Result
	hasResult bool

	fb       feedback
	showHelp bool
	helpBox  *helpModal

	width  int
	height int
}

func newModel(deps Deps) model {
	if deps.Converter == nil {
		deps.Converter = convert.New(markdown.DefaultOptions(), nil)
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.Chain{}
	}
	if deps.Feedback <= 0 {
		deps.Feedback = 1500 * time.Millisecond
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste cells copied from a spreadsheet…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	m := model{
		deps:   deps,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  ta,
		output: viewport.New(76, 6),
	}
	m.applyLayout()
	return m
}

func (m model) Init() tea.Cmd { return textarea.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		m.renderPreview()
		return m, nil
	case feedbackExpiredMsg:
		m.fb.expire(msg)
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.deps.Log.Warn("copy failed", zap.Error(msg.err))
			return m, m.fb.flash(actionCopy, labelCopyFailed, m.deps.Feedback)
		}
		return m, m.fb.flash(actionCopy, labelCopied, m.deps.Feedback)
	case pasteResultMsg:
		if msg.err != nil {
			m.deps.Log.Warn("paste failed", zap.Error(msg.err))
			return m, nil
		}
		m.input.InsertString(toMarkers(msg.text))
		m.refreshPreview()
		return m, nil
	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			m.helpBox = newHelpModal(m.help.FullHelpView(m.keys.FullHelp()), m.width, m.height)
			return m, nil
		case key.Matches(msg, m.keys.Convert):
			return m, m.convert()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copy()
		case key.Matches(msg, m.keys.Clear):
			return m, m.clear()
		case key.Matches(msg, m.keys.Paste):
			if m.deps.Source == nil {
				return m, nil
			}
			return m, pasteCmd(m.deps.Source)
		case key.Matches(msg, m.keys.Tab):
			m.input.InsertString(tabMarker)
			m.refreshPreview()
			return m, nil
		case msg.Paste:
			m.input.InsertString(toMarkers(string(msg.Runes)))
			m.refreshPreview()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	// Letters would scroll the viewport, so it only sees non-key events.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.refreshPreview()
	return m, tea.Batch(cmds...)
}

// inputValue is the raw text with tab markers turned back into tabs.
func (m model) inputValue() string { return fromMarkers(m.input.Value()) }

// refreshPreview rebuilds the preview when the input text changed.
func (m *model) refreshPreview() {
	v := m.inputValue()
	if v == m.lastInput {
		return
	}
	m.lastInput = v
	m.table = m.deps.Converter.Preview(v)
	m.renderPreview()
}

func (m *model) renderPreview() {
	m.previewView = preview.RenderTerminal(m.table, m.innerWidth())
}

func (m *model) convert() tea.Cmd {
	m.result = m.deps.Converter.Convert(m.inputValue())
	m.hasResult = true
	m.output.SetContent(m.result.Message())
	m.output.GotoTop()
	if !m.result.OK() {
		return nil
	}
	return m.fb.flash(actionConvert, labelConverted, m.deps.Feedback)
}

func (m *model) copy() tea.Cmd {
	if !m.hasResult || !m.result.OK() || strings.TrimSpace(m.result.Markdown) == "" {
		return m.fb.flash(actionCopy, labelNothingCopy, m.deps.Feedback)
	}
	return copyCmd(m.deps.Clipboard, strings.TrimSpace(m.result.Markdown))
}

func (m *model) clear() tea.Cmd {
	m.input.Reset()
	m.input.Focus()
	m.result = api.Result{}
	m.hasResult = false
	m.output.SetContent("")
	m.table = preview.Table{}
	m.previewView = ""
	m.lastInput = ""
	return m.fb.flash(actionClear, labelCleared, m.deps.Feedback)
}

func (m model) termSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	return w, h
}

// innerWidth is the usable width inside a pane's border and padding.
func (m model) innerWidth() int {
	w, _ := m.termSize()
	return max(20, w-4)
}

// paneHeights splits the terminal between input, preview and output.
func (m model) paneHeights() (in, prev, out int) {
	_, h := m.termSize()
	// title, three pane borders and titles, button bar, help line
	avail := max(9, h-12)
	in = max(3, avail/3)
	out = max(3, avail/3)
	prev = max(3, avail-in-out)
	return in, prev, out
}

func (m *model) applyLayout() {
	in, _, out := m.paneHeights()
	w := m.innerWidth()
	m.input.SetWidth(w)
	m.input.SetHeight(in)
	m.output.Width = w
	m.output.Height = out
	m.help.Width = w
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	buttonStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	flashStyle  = buttonStyle.Background(lipgloss.Color("35"))
)

func (m model) View() string {
	_, prevH, _ := m.paneHeights()
	w, h := m.termSize()

	prev := m.previewView
	if prev == "" {
		prev = dimStyle.Render("Preview appears as you type or paste.")
	}
	out := m.output.View()
	if !m.hasResult {
		out = dimStyle.Render("Your converted markdown table will appear here...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("tabmd") + dimStyle.Render("  spreadsheet cells to Markdown, tabs shown as "+tabMarker) + "\n")
	b.WriteString(pane("Input", m.input.View(), w, true) + "\n")
	b.WriteString(pane("Preview", clipLines(prev, prevH), w, false) + "\n")
	b.WriteString(pane("Markdown", out, w, false) + "\n")
	b.WriteString(m.renderButtons() + "\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	view := b.String()
	if m.showHelp && m.helpBox != nil {
		return m.renderOverlay(view, m.helpBox.View(), m.helpBox.width, m.helpBox.height, w, h)
	}
	return view
}

func (m model) renderButtons() string {
	parts := make([]string, 0, numActions)
	for a := action(0); a < numActions; a++ {
		style := buttonStyle
		if m.fb.labels[a] != "" {
			style = flashStyle
		}
		parts = append(parts, style.Render(m.fb.label(a)))
	}
	return strings.Join(parts, " ")
}
