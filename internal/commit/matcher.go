package commit

// Header is one recognized conventional-commit header. Type keeps any
// leading ':' verbatim; callers use that to skip lines that already
// start with a shortcode. Start and End delimit the matched span,
// which includes the trailing whitespace and shortcode run.
type Header struct {
	Type     string
	Scope    string
	Breaking bool
	Other    []string
	Start    int
	End      int
}

// ShortcodePrefixed reports whether the captured type began with ':',
// meaning the line was already converted and must not be rewritten.
func (h Header) ShortcodePrefixed() bool {
	return len(h.Type) > 0 && h.Type[0] == ':'
}

// Match scans the whole text and returns every header in order.
// Matches never overlap; scanning resumes after each match span.
//
// The grammar is deliberately a hand-written scanner rather than one
// regular expression: the run of optional adjacent groups (scope,
// breaking marker, shortcode tail) backtracks differently across
// regex engines, and the skip rules are easier to state as
// conditionals.
func Match(text string) []Header {
	var headers []Header
	for i := 0; i < len(text); {
		h, ok := matchAt(text, i)
		if !ok {
			i++
			continue
		}
		headers = append(headers, h)
		i = h.End
	}
	return headers
}

// matchAt attempts to recognize a header starting exactly at pos:
//
//	(":")? type ( "(" scope ")" )? ("!")? ":" ws* (shortcode ws*)*
//
// where type is a letter followed by letters, digits or '-', and ws
// is space or tab. Case is ignored for matching and preserved in the
// captures.
func matchAt(text string, pos int) (Header, bool) {
	j := pos

	typeStart := j
	if j < len(text) && text[j] == ':' {
		j++
	}
	if j >= len(text) || !isLetter(text[j]) {
		return Header{}, false
	}
	j++
	for j < len(text) && isTypeChar(text[j]) {
		j++
	}
	h := Header{Type: text[typeStart:j], Start: pos}

	// Optional "(scope)". A malformed scope fails the whole match;
	// the scanner will retry inside the parentheses on its own.
	if j < len(text) && text[j] == '(' {
		k := j + 1
		scopeStart := k
		for k < len(text) && isScopeChar(text[k]) {
			k++
		}
		if k == scopeStart || k >= len(text) || text[k] != ')' {
			return Header{}, false
		}
		h.Scope = text[scopeStart:k]
		j = k + 1
	}

	if j < len(text) && text[j] == '!' {
		h.Breaking = true
		j++
	}

	if j >= len(text) || text[j] != ':' {
		return Header{}, false
	}
	j++
	j = skipBlank(text, j)

	// Trailing run of already-present shortcodes, e.g. "fix: :zap: ".
	for {
		code, next, ok := scanShortcode(text, j)
		if !ok {
			break
		}
		h.Other = append(h.Other, code)
		j = skipBlank(text, next)
	}

	h.End = j
	return h, true
}

// scanShortcode recognizes ":code:" at pos and returns the code
// without colons plus the position after the closing colon.
func scanShortcode(text string, pos int) (string, int, bool) {
	if pos >= len(text) || text[pos] != ':' {
		return "", pos, false
	}
	k := pos + 1
	for k < len(text) && isShortcodeChar(text[k]) {
		k++
	}
	if k == pos+1 || k >= len(text) || text[k] != ':' {
		return "", pos, false
	}
	return text[pos+1 : k], k + 1, true
}

// skipBlank advances over spaces and tabs. Newlines end a header and
// are never part of the span, so an empty description cannot pull the
// next body line into the match.
func skipBlank(text string, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	return pos
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isTypeChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-'
}

func isScopeChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-'
}

func isShortcodeChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '+' || c == '-'
}
