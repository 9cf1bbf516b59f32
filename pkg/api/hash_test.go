package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_Hash(t *testing.T) {
	base := Grid{{"Name", "Age"}, {"Alice", "30"}}

	t.Run("identical grids produce identical hashes", func(t *testing.T) {
		g1 := Grid{{"Name", "Age"}, {"Alice", "30"}}
		assert.Equal(t, base.Hash(), g1.Hash())
	})

	t.Run("ragged and padded grids hash equal", func(t *testing.T) {
		ragged := Grid{{"a", "b", "c"}, {"d"}}
		padded := Grid{{"a", "b", "c"}, {"d", "", ""}}
		assert.Equal(t, ragged.Hash(), padded.Hash())
	})

	t.Run("cell boundaries matter", func(t *testing.T) {
		g1 := Grid{{"ab", "c"}}
		g2 := Grid{{"a", "bc"}}
		assert.NotEqual(t, g1.Hash(), g2.Hash())
	})

	t.Run("row boundaries matter", func(t *testing.T) {
		g1 := Grid{{"a"}, {"b"}}
		g2 := Grid{{"a", "b"}}
		assert.NotEqual(t, g1.Hash(), g2.Hash())
	})

	t.Run("hex encoded", func(t *testing.T) {
		assert.Len(t, base.Hash(), 64)
	})
}
