package commit

import (
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/haytac/devmoji/internal/moji"
	"github.com/haytac/devmoji/pkg/interfaces"
)

// breakingFooterRe matches a body line whose trimmed form starts with
// the (case-sensitive) breaking-change footer marker.
var breakingFooterRe = regexp.MustCompile(`(?m)^\s*BREAKING CHANGE`)

var (
	typeColor  = color.New(color.FgBlue)
	scopeColor = color.New(color.Bold)
)

// Formatter rewrites conventional-commit headers with emoji computed
// from the resolver's pack.
type Formatter struct {
	resolver *moji.Resolver
}

var _ interfaces.CommitFormatter = (*Formatter)(nil)

func NewFormatter(r *moji.Resolver) *Formatter {
	return &Formatter{resolver: r}
}

// FormatCommit rewrites the single header anchored at the start of
// the text. Text without such a header passes through unchanged.
func (f *Formatter) FormatCommit(text string, color bool) string {
	return f.format(text, true, color)
}

// FormatLog rewrites every header found anywhere in the text, each at
// its own span, as produced by git log output.
func (f *Formatter) FormatLog(text string, color bool) string {
	return f.format(text, false, color)
}

func (f *Formatter) format(text string, firstOnly, color bool) string {
	// Normalize any literal emoji to pack alias shortcodes first, so
	// the trailing-shortcode capture works regardless of the input
	// encoding.
	text = f.resolver.Devmojify(text)

	hasBreaking := breakingFooterRe.MatchString(text)

	var out strings.Builder
	last := 0
	rewritten := false
	for _, h := range Match(text) {
		if firstOnly && (h.Start != 0 || rewritten) {
			continue
		}
		if h.ShortcodePrefixed() {
			continue
		}

		breaking := h.Breaking || hasBreaking
		emojis := f.headerEmoji(h, breaking)

		var rep strings.Builder
		if color {
			rep.WriteString(typeColor.Sprint(h.Type))
		} else {
			rep.WriteString(h.Type)
		}
		if h.Scope != "" {
			rep.WriteByte('(')
			if color {
				rep.WriteString(scopeColor.Sprint(h.Scope))
			} else {
				rep.WriteString(h.Scope)
			}
			rep.WriteByte(')')
		}
		// The footer marker forces '!' even when the original header
		// had none.
		if breaking {
			rep.WriteByte('!')
		}
		rep.WriteString(": ")
		rep.WriteString(emojis)
		if emojis != "" {
			rep.WriteByte(' ')
		}

		out.WriteString(text[last:h.Start])
		out.WriteString(rep.String())
		last = h.End
		rewritten = true
	}
	out.WriteString(text[last:])

	return f.resolver.Emojify(out.String())
}

// headerEmoji computes the space-joined emoji sequence for a header,
// deduplicated by resolved glyph.
func (f *Formatter) headerEmoji(h Header, breaking bool) string {
	var seq []string

	if breaking {
		seq = appendUnique(seq, f.resolver.Get("boom"))
	}

	typeEmoji, typeOK := f.lookupPackCode(h.Type)
	if h.Scope != "" {
		// A compound "type-scope" code selects one combined emoji and
		// suppresses the separate type and scope emoji.
		if e, ok := f.lookupPackCode(h.Type + "-" + h.Scope); ok {
			seq = appendUnique(seq, e)
		} else {
			if typeOK {
				seq = appendUnique(seq, typeEmoji)
			}
			if e, ok := f.lookupPackCode(h.Scope); ok {
				seq = appendUnique(seq, e)
			}
		}
	} else if typeOK {
		seq = appendUnique(seq, typeEmoji)
	}

	for _, code := range h.Other {
		seq = appendUnique(seq, f.resolver.Get(code))
	}

	return strings.Join(seq, " ")
}

// lookupPackCode resolves a code through the pack only; codes that
// only exist in the canonical table do not qualify as type or scope
// emoji.
func (f *Formatter) lookupPackCode(code string) (string, bool) {
	for _, e := range f.resolver.Pack() {
		if e.Code == code {
			return f.resolver.Get(e.Emoji), true
		}
	}
	return "", false
}

func appendUnique(seq []string, emoji string) []string {
	if emoji == "" {
		return seq
	}
	for _, e := range seq {
		if e == emoji {
			return seq
		}
	}
	return append(seq, emoji)
}
