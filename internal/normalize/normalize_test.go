package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a–b", "a-b"},
		{"café—latte", "café-latte"},
		{"‘single’", "'single'"},
		{"“double”", `"double"`},
		{"wait…", "wait..."},
		{"1\u00a0000", "1 000"},
		{"\U0001F468\u200d\U0001F469\u200d\U0001F467 family", "\U0001F468\u200d\U0001F469\u200d\U0001F467 family"},
		{"\U0001F600—\U0001F600", "\U0001F600-\U0001F600"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Text(tc.in), "Text(%q)", tc.in)
	}
}

func TestTextASCIIIdentity(t *testing.T) {
	in := "Name\tAge\nAlice\t30\nBob\t25 -- 'x' \"y\" ...\n"
	assert.Equal(t, in, Text(in))
}

func TestTextIdempotent(t *testing.T) {
	in := "“Q” – ‘a’…\u00a0— \U0001F44D\U0001F3FD"
	once := Text(in)
	assert.Equal(t, once, Text(once))
}

func TestDetect(t *testing.T) {
	got := Detect("\U0001F600a—b\u00a0…")
	require.Len(t, got, 3)

	// rune indices, so the astral emoji counts once
	assert.Equal(t, Occurrence{Rune: '—', Name: "em dash", Index: 2}, got[0])
	assert.Equal(t, 4, got[1].Index)
	assert.Equal(t, "non-breaking space", got[1].Name)
	assert.Equal(t, "ellipsis", got[2].Name)

	assert.Equal(t, "Em dash (—) at position 2", got[0].String())
	assert.Equal(t, "Non-breaking space at position 4", got[1].String())
}

func TestDetectNone(t *testing.T) {
	assert.Empty(t, Detect("plain ascii\twith tabs"))
	assert.Empty(t, Detect(""))
}

func TestDetectMatchesText(t *testing.T) {
	in := "–—‘’“”…\u00a0"
	assert.Len(t, Detect(in), 8)
	assert.Empty(t, Detect(Text(in)))
}
