package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/mithrel/tabmd/internal/markdown"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "markdown.width_mode", Default: "grapheme", Comment: "How cell width is measured for padding: codepoint, grapheme or display"},
		{Key: "markdown.align", Default: true, Comment: "Pad cells so the Markdown source lines up"},
		{Key: "markdown.escape_pipes", Default: true, Comment: "Escape literal | inside cells as \\|"},

		{Key: "output.format", Default: "markdown", Comment: "convert output: markdown, json or pretty"},
		{Key: "output.style", Default: "dracula", Comment: "Glamour style used by the pretty output"},
		{Key: "output.wrap", Default: 100, Comment: "Word wrap width for the pretty output"},

		{Key: "preview.format", Default: "table", Comment: "preview output: table or html"},

		{Key: "tui.feedback_ms", Default: 1500, Comment: "How long action feedback (Copied!, Cleared!) stays visible"},

		{Key: "clipboard.osc52", Default: true, Comment: "Fall back to the OSC 52 terminal sequence when no system clipboard exists"},

		{Key: "log.level", Default: "warn", Comment: "Log level: debug, info, warn, error"},
		{Key: "log.file", Default: "", Comment: "Log file; the TUI only logs when this is set"},
	}
}

// MarkdownOptions reads the emitter options from v.
func MarkdownOptions(v *viper.Viper) markdown.Options {
	mode, _ := markdown.ParseWidthMode(v.GetString("markdown.width_mode"))
	return markdown.Options{
		Width:       mode,
		Align:       v.GetBool("markdown.align"),
		EscapePipes: v.GetBool("markdown.escape_pipes"),
	}
}

// FeedbackDuration is how long TUI action labels stay changed.
func FeedbackDuration(v *viper.Viper) time.Duration {
	ms := v.GetInt("tui.feedback_ms")
	if ms <= 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}
