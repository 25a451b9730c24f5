package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/devmoji/internal/config"
)

func newTestLinter() *Linter {
	return NewLinter(config.DefaultTypes)
}

func TestLintPass(t *testing.T) {
	l := newTestLinter()

	assert.Empty(t, l.Lint("feat: add x"))
	assert.Empty(t, l.Lint("fix(parser)!: handle tabs"))
	assert.Empty(t, l.Lint("feat: add x\n\nlonger body"))
}

func TestLintBypassPrefixes(t *testing.T) {
	l := newTestLinter()

	for _, text := range []string{
		"Merge branch 'x' into y",
		"fixup! feat: add x",
		"squash! whatever",
		"Revert \"feat: add x\"",
		"revert: feat: add x",
	} {
		assert.Empty(t, l.Lint(text), "expected bypass for %q", text)
	}
}

func TestLintNoHeader(t *testing.T) {
	l := newTestLinter()

	diags := l.Lint("not a real header")
	require.Len(t, diags, 1)
	assert.Equal(t, "Expecting a commit message like: type(scope): description", diags[0])
}

func TestLintHeaderNotAtStart(t *testing.T) {
	l := newTestLinter()

	diags := l.Lint("whoops feat: add x")
	require.Len(t, diags, 1)
	assert.Equal(t, "Expecting a commit message like: type(scope): description", diags[0])
}

func TestLintUnknownTypeAndMissingDescription(t *testing.T) {
	l := newTestLinter()

	diags := l.Lint("foo: ")
	require.Len(t, diags, 2)
	assert.Equal(t, "Type should be one of: feat, fix, docs, style, refactor, perf, test, chore, build, ci", diags[0])
	assert.Equal(t, "Missing description", diags[1])
}

func TestLintMissingDescriptionOnly(t *testing.T) {
	l := newTestLinter()

	diags := l.Lint("feat:")
	require.Len(t, diags, 1)
	assert.Equal(t, "Missing description", diags[0])
}

func TestLintChecksFirstLineOnly(t *testing.T) {
	l := newTestLinter()

	assert.NotEmpty(t, l.Lint("bogus line\nfeat: fine below"))
}
