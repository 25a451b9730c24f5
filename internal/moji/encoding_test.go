package moji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	cases := map[string]Encoding{
		"unicode":   Unicode,
		"shortcode": Shortcode,
		"devmoji":   Devmoji,
		"strip":     Strip,
	}
	for name, want := range cases {
		got, err := ParseEncoding(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseEncoding("html")
	assert.Error(t, err)
}

func TestEncodingApply(t *testing.T) {
	r := NewResolver(testPack())

	sparkles, ok := canonicalGlyph("sparkles")
	require.True(t, ok)
	text := "feat: " + sparkles + " add"

	assert.Equal(t, "feat: "+sparkles+" add", Unicode.Apply(r, text))
	assert.Equal(t, "feat: :sparkles: add", Shortcode.Apply(r, text))
	assert.Equal(t, "feat: :feat: add", Devmoji.Apply(r, text))
	assert.Equal(t, "feat: add", Strip.Apply(r, text))
}
