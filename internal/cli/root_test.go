package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/devmoji/internal/config"
	"github.com/haytac/devmoji/internal/moji"
)

// executeCommand captures the output of the root command.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetRootFlags()

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetIn(strings.NewReader(""))
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return strings.TrimSpace(buf.String()), err
}

// resetRootFlags restores flag-bound globals between runs; cobra does
// not reset them itself.
func resetRootFlags() {
	cfgFile = ""
	logLevel = "warn"
	textFlag = ""
	formatName = "unicode"
	editMode = false
	logMode = false
	lintMode = false
	commitMode = true
	noCommit = false
	colorMode = false
	// Output assertions must not depend on whether the test runner's
	// stdout is a terminal.
	noColor = true
}

func testResolver(t *testing.T) *moji.Resolver {
	t.Helper()
	return moji.NewResolver(config.Default().Devmojis)
}

func TestRootFormatsText(t *testing.T) {
	r := testResolver(t)

	out, err := executeCommand(t, "--text", "feat: add x")
	require.NoError(t, err)
	assert.Equal(t, "feat: "+r.Get("sparkles")+" add x", out)
}

func TestRootShortcodeFormat(t *testing.T) {
	out, err := executeCommand(t, "--text", "feat: add x", "--format", "shortcode")
	require.NoError(t, err)
	assert.Equal(t, "feat: :sparkles: add x", out)
}

func TestRootStripFormat(t *testing.T) {
	out, err := executeCommand(t, "--text", "feat: add x", "--format", "strip")
	require.NoError(t, err)
	assert.Equal(t, "feat: add x", out)
}

func TestRootUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "--text", "feat: x", "--format", "html")
	assert.Error(t, err)
}

func TestRootNoCommitLeavesHeaderAlone(t *testing.T) {
	out, err := executeCommand(t, "--text", "feat: add :sparkles:", "--no-commit")
	require.NoError(t, err)

	r := testResolver(t)
	assert.Equal(t, "feat: add "+r.Get("sparkles"), out)
}

func TestRootLogMode(t *testing.T) {
	r := testResolver(t)

	out, err := executeCommand(t, "--text", "abc1234 fix: oops", "--log")
	require.NoError(t, err)
	assert.Equal(t, "abc1234 fix: "+r.Get("bug")+" oops", out)
}

func TestRootLintFailure(t *testing.T) {
	_, err := executeCommand(t, "--text", "foo: ", "--lint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type should be one of:")
	assert.Contains(t, err.Error(), "Missing description")
}

func TestRootLintPass(t *testing.T) {
	r := testResolver(t)

	out, err := executeCommand(t, "--text", "feat: add x", "--lint")
	require.NoError(t, err)
	assert.Equal(t, "feat: "+r.Get("sparkles")+" add x", out)
}

func TestListCmd(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, ":feat:")
	assert.Contains(t, out, "a new feature")
	assert.Contains(t, out, "chore(release):")
}
