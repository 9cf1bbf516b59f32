package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/tabmd/internal/tabular"
	"github.com/mithrel/tabmd/pkg/api"
)

func TestEmitScenario(t *testing.T) {
	g := api.Grid{{"Name", "Age"}, {"Alice", "30"}, {"Bob", "25"}}
	md, err := Emit(g, DefaultOptions())
	require.NoError(t, err)

	want := strings.Join([]string{
		"| Name  | Age |",
		"| ----- | --- |",
		"| Alice | 30  |",
		"| Bob   | 25  |",
	}, "\n")
	assert.Equal(t, want, md)
}

func TestEmitCompact(t *testing.T) {
	g := api.Grid{{"Name", "Age"}, {"Alice", "30"}}
	md, err := Emit(g, Options{Width: WidthGrapheme})
	require.NoError(t, err)
	assert.Equal(t, "| Name | Age |\n| --- | --- |\n| Alice | 30 |", md)
}

func TestEmitPadsRaggedRows(t *testing.T) {
	g := api.Grid{{"a"}, {"b", "c", "d"}}
	md, err := Emit(g, DefaultOptions())
	require.NoError(t, err)

	lines := strings.Split(md, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 4, strings.Count(l, "|"), "line %q", l)
	}
	assert.Equal(t, "| a   |     |     |", lines[0])
	assert.Len(t, g[0], 1, "caller's grid must not be padded in place")
}

func TestEmitSingleRow(t *testing.T) {
	md, err := Emit(api.Grid{{"only"}}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "| only |\n| ---- |", md)
}

func TestEmitErrors(t *testing.T) {
	_, err := Emit(nil, DefaultOptions())
	assert.ErrorIs(t, err, api.ErrEmptyInput)

	_, err = Emit(api.Grid{}, DefaultOptions())
	assert.ErrorIs(t, err, api.ErrEmptyInput)

	_, err = Emit(api.Grid{{}, {"a"}}, DefaultOptions())
	assert.ErrorIs(t, err, api.ErrInvalidFormat)
	assert.ErrorIs(t, err, api.ErrEmptyInput)
}

func TestEmitRecoversPanics(t *testing.T) {
	md, err := emitWith(api.Grid{{"a"}}, DefaultOptions(), func(string) int { panic("boom") })
	assert.Empty(t, md)
	var ce *api.ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Error(), "boom")
}

func TestEmitEscapesPipes(t *testing.T) {
	g := api.Grid{{"expr", "note"}, {"a|b", "x"}}
	md, err := Emit(g, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, md, `| a\|b | x    |`)

	shape, err := Inspect(md)
	require.NoError(t, err)
	assert.Equal(t, Shape{Columns: 2, BodyRows: 1}, shape)

	raw, err := Emit(g, Options{Width: WidthGrapheme, Align: true})
	require.NoError(t, err)
	assert.Contains(t, raw, "| a|b  | x    |")
}

func TestEscapePipesKeepsBackslashes(t *testing.T) {
	cases := map[string]string{
		"plain":   "plain",
		`a|b`:     `a\|b`,
		`c\|d`:    `c\\\|d`,
		`e\\|f`:   `e\\\\\|f`,
		`g\h|`:    `g\h\|`,
		`i|j\`:    `i\|j\`,
		`no\pipe`: `no\pipe`,
	}
	for in, want := range cases {
		assert.Equal(t, want, EscapePipes(in), "input %q", in)
	}

	g := api.Grid{{"expr"}, {`c\|d`}}
	md, err := Emit(g, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "| expr   |\n| ------ |\n| c\\\\\\|d |", md)

	shape, err := Inspect(md)
	require.NoError(t, err)
	assert.Equal(t, Shape{Columns: 1, BodyRows: 1}, shape)
}

func TestEmitUnicodeWidths(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	g := api.Grid{{"icon", "n"}, {family, "1"}, {"café", "2"}}

	t.Run("grapheme", func(t *testing.T) {
		md, err := Emit(g, DefaultOptions())
		require.NoError(t, err)
		lines := strings.Split(md, "\n")
		assert.Equal(t, "| "+family+"    | 1   |", lines[2])
		assert.Equal(t, "| café | 2   |", lines[3])
	})
	t.Run("codepoint", func(t *testing.T) {
		md, err := Emit(g, Options{Width: WidthCodepoint, Align: true})
		require.NoError(t, err)
		lines := strings.Split(md, "\n")
		// five code points: three people and two joiners
		assert.Equal(t, "| "+family+" | 1   |", lines[2])
		assert.Equal(t, "| ----- | --- |", lines[1])
	})
	t.Run("display", func(t *testing.T) {
		md, err := Emit(g, Options{Width: WidthDisplay, Align: true})
		require.NoError(t, err)
		lines := strings.Split(md, "\n")
		assert.Equal(t, "| "+family+"   | 1   |", lines[2])
	})
	t.Run("content preserved", func(t *testing.T) {
		md, err := Emit(g, DefaultOptions())
		require.NoError(t, err)
		assert.Contains(t, md, family)
	})
}

func TestEmitIdempotent(t *testing.T) {
	g := api.Grid{{"a", "b"}, {"c"}, {"d", "e", "f"}}
	first, err := Emit(g, DefaultOptions())
	require.NoError(t, err)
	second, err := Emit(g.Pad(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmitBodyRowsMatchInputLines(t *testing.T) {
	inputs := []string{
		"h\n1\n2\n3",
		"a\tb\n\n\nc\td\n   \ne\n",
		"single",
		"x\ty\tz\n1\n\t\t3",
	}
	for _, in := range inputs {
		g := tabular.Parse(in)
		md, err := Emit(g, DefaultOptions())
		require.NoError(t, err, in)
		shape, err := Inspect(md)
		require.NoError(t, err, in)
		assert.Equal(t, tabular.CountLines(in)-1, shape.BodyRows, "input %q", in)
		assert.Equal(t, g.MaxColumns(), shape.Columns, "input %q", in)
		assert.NoError(t, Verify(md, g))
	}
}

func TestInspectNoTable(t *testing.T) {
	_, err := Inspect("just a paragraph")
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestVerifyMismatch(t *testing.T) {
	md := "| a | b |\n| --- | --- |\n| 1 | 2 |"
	err := Verify(md, api.Grid{{"a", "b", "c"}, {"1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestParseWidthMode(t *testing.T) {
	for in, want := range map[string]WidthMode{
		"codepoint": WidthCodepoint,
		" Grapheme": WidthGrapheme,
		"":          WidthGrapheme,
		"display":   WidthDisplay,
	} {
		got, ok := ParseWidthMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseWidthMode("bytes")
	assert.False(t, ok)
}
