package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/tabmd/pkg/api"
)

func TestParseScenario(t *testing.T) {
	got := Parse("Name\tAge\nAlice\t30\nBob\t25")
	want := api.Grid{{"Name", "Age"}, {"Alice", "30"}, {"Bob", "25"}}
	assert.Equal(t, want, got)
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n", " \t \n\t"} {
		g := Parse(in)
		require.NotNil(t, g, "input %q", in)
		assert.Empty(t, g, "input %q", in)
	}
}

func TestParseDropsBlankLines(t *testing.T) {
	g := Parse("a\tb\n\n   \n\t\t\nc\td\n")
	assert.Equal(t, api.Grid{{"a", "b"}, {"c", "d"}}, g)
}

func TestParseEdgeCases(t *testing.T) {
	t.Run("no tabs gives single cell", func(t *testing.T) {
		assert.Equal(t, api.Grid{{"just text"}}, Parse("just text"))
	})
	t.Run("consecutive tabs give empty cells", func(t *testing.T) {
		assert.Equal(t, api.Grid{{"a", "", "b"}}, Parse("a\t\tb"))
	})
	t.Run("cells trimmed, inner space kept", func(t *testing.T) {
		assert.Equal(t, api.Grid{{"New York", "x  y"}}, Parse("  New York \t x  y  "))
	})
	t.Run("rows stay ragged", func(t *testing.T) {
		g := Parse("a\tb\tc\nd")
		assert.Len(t, g[0], 3)
		assert.Len(t, g[1], 1)
	})
	t.Run("CRLF line endings", func(t *testing.T) {
		assert.Equal(t, api.Grid{{"a", "b"}, {"1", "2"}}, Parse("a\tb\r\n1\t2\r\n"))
	})
	t.Run("emoji preserved verbatim", func(t *testing.T) {
		flag := "\U0001F1EF\U0001F1F5"
		family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
		g := Parse(flag + "\t" + family)
		assert.Equal(t, api.Grid{{flag, family}}, g)
	})
}

func TestCountLines(t *testing.T) {
	in := "h1\th2\n\nr1\tx\n  \nr2\ty\n"
	assert.Equal(t, 3, CountLines(in))
	assert.Equal(t, len(Parse(in)), CountLines(in))
	assert.Equal(t, 0, CountLines(""))
}
