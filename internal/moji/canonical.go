package moji

import (
	"sort"
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// variationSelector is U+FE0F, the presentation selector many emoji
// carry as a trailing rune.
const variationSelector = '️'

// The canonical github-style shortcode table, sourced from the
// kyokomi emoji registry. Built once at startup and read-only for the
// lifetime of the process.
var (
	// canonicalCodes maps a shortcode (without colons) to its glyph.
	canonicalCodes map[string]string
	// canonicalGlyphs maps a glyph, both with and without a trailing
	// variation selector, back to a shortcode. Codes are indexed in
	// sorted order so that ties between codes sharing a glyph resolve
	// the same way on every run.
	canonicalGlyphs map[string]string
)

func init() {
	codeMap := emoji.CodeMap()

	canonicalCodes = make(map[string]string, len(codeMap))
	keys := make([]string, 0, len(codeMap))
	for wrapped, glyph := range codeMap {
		code := strings.Trim(wrapped, ":")
		canonicalCodes[code] = glyph
		keys = append(keys, code)
	}
	sort.Strings(keys)

	canonicalGlyphs = make(map[string]string, len(codeMap))
	for _, code := range keys {
		glyph := canonicalCodes[code]
		if _, ok := canonicalGlyphs[glyph]; !ok {
			canonicalGlyphs[glyph] = code
		}
		stripped := strings.ReplaceAll(glyph, string(variationSelector), "")
		if stripped != glyph {
			if _, ok := canonicalGlyphs[stripped]; !ok {
				canonicalGlyphs[stripped] = code
			}
		}
	}
}

// canonicalGlyph returns the glyph for a canonical shortcode.
func canonicalGlyph(code string) (string, bool) {
	g, ok := canonicalCodes[code]
	return g, ok
}

// canonicalCode reverse-looks-up a glyph, trying the exact form first
// and then the form with a variation selector appended.
func canonicalCode(glyph string) (string, bool) {
	if c, ok := canonicalGlyphs[glyph]; ok {
		return c, true
	}
	c, ok := canonicalGlyphs[glyph+string(variationSelector)]
	return c, ok
}
