package commit

import (
	"strings"

	"github.com/haytac/devmoji/pkg/interfaces"
)

const lintHeaderHint = "Expecting a commit message like: type(scope): description"

// lintBypassPrefixes are first-line prefixes that exempt a message
// from linting: merges, autosquash commits and reverts.
var lintBypassPrefixes = []string{
	"Merge branch",
	"fixup!",
	"squash!",
	"Revert",
	"revert",
}

// Linter validates the first line of a commit message against the
// header grammar and the configured type vocabulary.
type Linter struct {
	types []string
}

var _ interfaces.Linter = (*Linter)(nil)

func NewLinter(types []string) *Linter {
	return &Linter{types: types}
}

// Lint returns an ordered list of diagnostics, or nil when the
// message passes. The type check and the description check run
// independently, so both diagnostics may appear together.
func (l *Linter) Lint(text string) []string {
	firstLine, _, _ := strings.Cut(text, "\n")

	for _, p := range lintBypassPrefixes {
		if strings.HasPrefix(firstLine, p) {
			return nil
		}
	}

	matches := Match(firstLine)
	if len(matches) == 0 || matches[0].Start != 0 {
		return []string{lintHeaderHint}
	}
	h := matches[0]

	var diags []string
	if !l.knownType(h.Type) {
		diags = append(diags, "Type should be one of: "+strings.Join(l.types, ", "))
	}
	if strings.TrimSpace(firstLine[h.End:]) == "" {
		diags = append(diags, "Missing description")
	}
	return diags
}

func (l *Linter) knownType(t string) bool {
	for _, known := range l.types {
		if known == t {
			return true
		}
	}
	return false
}
