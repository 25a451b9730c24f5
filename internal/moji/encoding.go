package moji

import (
	"fmt"

	"github.com/haytac/devmoji/pkg/interfaces"
)

// Encoding selects one of the four textual emoji encodings.
type Encoding int

const (
	// Unicode renders emoji as literal glyphs.
	Unicode Encoding = iota
	// Shortcode renders emoji as canonical :shortcode: tokens.
	Shortcode
	// Devmoji renders emoji as pack alias tokens.
	Devmoji
	// Strip removes emoji entirely.
	Strip
)

var encodingNames = map[Encoding]string{
	Unicode:   "unicode",
	Shortcode: "shortcode",
	Devmoji:   "devmoji",
	Strip:     "strip",
}

// ParseEncoding maps a format name to its Encoding.
func ParseEncoding(name string) (Encoding, error) {
	for e, n := range encodingNames {
		if n == name {
			return e, nil
		}
	}
	return Unicode, fmt.Errorf("unknown format %q (expected unicode, shortcode, devmoji or strip)", name)
}

func (e Encoding) String() string {
	if n, ok := encodingNames[e]; ok {
		return n
	}
	return "unicode"
}

// Apply converts text into this encoding.
func (e Encoding) Apply(c interfaces.Converter, text string) string {
	switch e {
	case Shortcode:
		return c.Demojify(text)
	case Devmoji:
		return c.Devmojify(text)
	case Strip:
		return c.Strip(text)
	default:
		return c.Emojify(text)
	}
}
