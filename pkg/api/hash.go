package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 digest of the padded grid.
// Ragged and explicitly padded versions of the same table hash equal.
func (g Grid) Hash() string {
	h := blake3.New()
	for _, r := range g.Pad() {
		for _, c := range r {
			h.Write([]byte(c))
			h.Write([]byte{0x1f}) // unit separator
		}
		h.Write([]byte{0x1e}) // record separator
	}
	return hex.EncodeToString(h.Sum(nil))
}
