package present

import (
	"fmt"
	"io"

	"github.com/mithrel/tabmd/internal/preview"
	"github.com/mithrel/tabmd/internal/present/format"
	"github.com/mithrel/tabmd/pkg/api"
)

type Mode int

const (
	ModeMarkdown Mode = iota
	ModeJSON
	ModePretty
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Style      string // glamour style for ModePretty
	Wrap       int
}

// ParseMode parses "markdown", "json" or "pretty".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "markdown", "md", "":
		return ModeMarkdown, true
	case "json":
		return ModeJSON, true
	case "pretty":
		return ModePretty, true
	default:
		return ModeMarkdown, false
	}
}

// RenderResult writes a successful conversion according to options.
func RenderResult(w io.Writer, res api.Result, opts Options) error {
	if !res.OK() {
		return fmt.Errorf("render: %w", res.Err)
	}
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, res, opts.JSONIndent)
	case ModePretty:
		return format.WritePretty(w, res.Markdown, opts.Style, opts.Wrap)
	default:
		return format.WriteMarkdown(w, res.Markdown)
	}
}

type PreviewMode int

const (
	PreviewTable PreviewMode = iota
	PreviewHTML
)

// ParsePreviewMode parses "table" or "html".
func ParsePreviewMode(s string) (PreviewMode, bool) {
	switch s {
	case "table", "":
		return PreviewTable, true
	case "html":
		return PreviewHTML, true
	default:
		return PreviewTable, false
	}
}

// RenderPreview writes the preview table. An empty preview writes nothing.
func RenderPreview(w io.Writer, t preview.Table, mode PreviewMode, width int) error {
	if mode == PreviewHTML {
		return preview.RenderHTML(w, t)
	}
	if t.Empty() {
		return nil
	}
	_, err := io.WriteString(w, preview.RenderTerminal(t, width)+"\n")
	return err
}
