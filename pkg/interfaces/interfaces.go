package interfaces

// Converter translates text between the supported emoji encodings:
// unicode glyphs, github-style :shortcode: tokens, project alias
// ("devmoji") tokens, and emoji-stripped plain text.
type Converter interface {
	// Get resolves a single code to its unicode glyph. Unknown codes
	// come back as the literal ":code:" token, never an error.
	Get(code string) string
	// Demojify replaces unicode glyphs with :shortcode: tokens.
	Demojify(text string) string
	// Emojify replaces :shortcode: tokens with unicode glyphs.
	Emojify(text string) string
	// Devmojify replaces glyphs and shortcodes with pack alias tokens.
	Devmojify(text string) string
	// Strip removes all emoji, shortcodes included, from the text.
	Strip(text string) string
}

// CommitFormatter rewrites conventional-commit headers with emoji.
type CommitFormatter interface {
	// FormatCommit rewrites the first header anchored at the start of
	// the text. Text without a recognizable header passes through.
	FormatCommit(text string, color bool) string
	// FormatLog rewrites every header found anywhere in the text.
	FormatLog(text string, color bool) string
}

// Linter validates the first line of a commit message against the
// conventional-commit grammar and the configured type vocabulary.
// A nil or empty result means the message passed.
type Linter interface {
	Lint(text string) []string
}
