package gitrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGitDirFrom(t *testing.T) {
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.Mkdir(gitDir, 0o755))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := findGitDirFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, gitDir, found)
}

func TestFindGitDirFromMissing(t *testing.T) {
	_, err := findGitDirFrom(t.TempDir())
	assert.Error(t, err)
}

func TestCommitMessageRoundTrip(t *testing.T) {
	gitDir := filepath.Join(t.TempDir(), ".git")
	require.NoError(t, os.Mkdir(gitDir, 0o755))

	require.NoError(t, WriteCommitMessage(gitDir, "feat: add x\n"))

	text, err := ReadCommitMessage(gitDir)
	require.NoError(t, err)
	assert.Equal(t, "feat: add x\n", text)
}

func TestReadCommitMessageMissing(t *testing.T) {
	gitDir := filepath.Join(t.TempDir(), ".git")
	require.NoError(t, os.Mkdir(gitDir, 0o755))

	_, err := ReadCommitMessage(gitDir)
	assert.Error(t, err)
}
