package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// WriteMarkdown writes the table followed by a single newline.
func WriteMarkdown(w io.Writer, md string) error {
	_, err := io.WriteString(w, strings.TrimRight(md, "\n")+"\n")
	return err
}

// WritePretty renders the table for the terminal using glamour.
func WritePretty(w io.Writer, md, style string, wrap int) error {
	if style == "" {
		style = "dracula"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
