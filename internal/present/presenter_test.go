package present

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/tabmd/internal/preview"
	"github.com/mithrel/tabmd/pkg/api"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeMarkdown, "md": ModeMarkdown, "json": ModeJSON, "pretty": ModePretty} {
		got, ok := ParseMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseMode("yaml")
	assert.False(t, ok)

	pm, ok := ParsePreviewMode("html")
	assert.True(t, ok)
	assert.Equal(t, PreviewHTML, pm)
	_, ok = ParsePreviewMode("svg")
	assert.False(t, ok)
}

func TestRenderResultRejectsFailures(t *testing.T) {
	var buf bytes.Buffer
	err := RenderResult(&buf, api.Result{Err: api.ErrEmptyInput}, Options{})
	assert.ErrorIs(t, err, api.ErrEmptyInput)
	assert.Empty(t, buf.String())
}

func TestRenderResultMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, api.Result{Markdown: "| a |\n| --- |"}, Options{}))
	assert.Equal(t, "| a |\n| --- |\n", buf.String())
}

func TestRenderPreview(t *testing.T) {
	tbl := preview.Build(api.Grid{{"a"}, {"1"}})

	var html bytes.Buffer
	require.NoError(t, RenderPreview(&html, tbl, PreviewHTML, 0))
	assert.Contains(t, html.String(), "<table>")

	var term bytes.Buffer
	require.NoError(t, RenderPreview(&term, tbl, PreviewTable, 0))
	assert.Contains(t, term.String(), "a")

	var empty bytes.Buffer
	require.NoError(t, RenderPreview(&empty, preview.Table{}, PreviewTable, 0))
	assert.Empty(t, empty.String())
}
