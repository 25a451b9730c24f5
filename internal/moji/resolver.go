package moji

import (
	"regexp"
	"strings"

	"github.com/haytac/devmoji/pkg/interfaces"
)

// VocabularyEntry is one project-specific emoji alias. Emoji holds
// either a literal glyph, a canonical shortcode, or another pack code.
type VocabularyEntry struct {
	Code        string `mapstructure:"code" json:"code"`
	Emoji       string `mapstructure:"emoji" json:"emoji"`
	Description string `mapstructure:"description" json:"description"`
}

var (
	shortcodeRe      = regexp.MustCompile(`:([a-zA-Z0-9_+-]+):`)
	shortcodeSpaceRe = regexp.MustCompile(`\s?:([a-zA-Z0-9_+-]+):`)
)

// Resolver owns the merged pack and exposes the four text
// conversions. It is immutable after construction and safe to share.
type Resolver struct {
	pack    []VocabularyEntry
	packMap map[string]string
}

var _ interfaces.Converter = (*Resolver)(nil)

// NewResolver builds a resolver over an already-merged pack. Pack
// order is preserved: conversions use first-match-wins semantics.
func NewResolver(pack []VocabularyEntry) *Resolver {
	packMap := make(map[string]string, len(pack))
	for _, e := range pack {
		packMap[e.Code] = e.Emoji
	}
	return &Resolver{pack: pack, packMap: packMap}
}

// Pack returns the resolver's vocabulary in pack order.
func (r *Resolver) Pack() []VocabularyEntry {
	return r.pack
}

// Get resolves a code to its unicode glyph. Pack aliases are followed
// first, then the canonical table; unknown codes come back as the
// literal ":code:" token. An alias cycle counts as unknown.
func (r *Resolver) Get(code string) string {
	return r.get(code, nil)
}

func (r *Resolver) get(code string, seen map[string]bool) string {
	if alias, ok := r.packMap[code]; ok && alias != code {
		if seen[code] {
			return ":" + code + ":"
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		seen[code] = true
		return r.get(alias, seen)
	}
	if glyph, ok := canonicalGlyph(code); ok {
		return glyph
	}
	return ":" + code + ":"
}

// Demojify replaces unicode glyphs with canonical :shortcode: tokens.
// This is the normalization step every other conversion builds on.
func (r *Resolver) Demojify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, ch := range text {
		if code, ok := canonicalCode(string(ch)); ok {
			if ch == variationSelector {
				continue
			}
			b.WriteByte(':')
			b.WriteString(code)
			b.WriteByte(':')
			continue
		}
		// Bare variation selectors with no preceding match are dropped.
		if ch == variationSelector {
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// Emojify replaces :shortcode: tokens with unicode glyphs. Raw glyphs
// already present are normalized first so the output is uniform.
func (r *Resolver) Emojify(text string) string {
	text = r.Demojify(text)
	return shortcodeRe.ReplaceAllStringFunc(text, func(tok string) string {
		return r.Get(trimColons(tok))
	})
}

// Devmojify rewrites every shortcode to the first pack alias that
// resolves to the same glyph. Tokens without a pack alias are left
// unchanged.
func (r *Resolver) Devmojify(text string) string {
	text = r.Demojify(text)
	return shortcodeRe.ReplaceAllStringFunc(text, func(tok string) string {
		code := trimColons(tok)
		if glyph, ok := canonicalGlyph(code); ok {
			for _, e := range r.pack {
				if r.resolvePackEmoji(e.Emoji) == glyph {
					return ":" + e.Code + ":"
				}
			}
		}
		if _, ok := LookupGitmoji(code); ok {
			for _, e := range r.pack {
				if e.Emoji == code {
					return ":" + e.Code + ":"
				}
			}
		}
		return tok
	})
}

// Strip deletes every shortcode token together with at most one
// immediately preceding whitespace character.
func (r *Resolver) Strip(text string) string {
	text = r.Demojify(text)
	return shortcodeSpaceRe.ReplaceAllString(text, "")
}

// resolvePackEmoji resolves an entry's emoji field through the
// canonical table only, without following pack aliases.
func (r *Resolver) resolvePackEmoji(code string) string {
	if glyph, ok := canonicalGlyph(code); ok {
		return glyph
	}
	return code
}

func trimColons(tok string) string {
	return strings.Trim(tok, ":")
}
