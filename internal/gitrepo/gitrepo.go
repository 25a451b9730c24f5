package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"
)

const commitMessageFile = "COMMIT_EDITMSG"

// FindGitDir walks up from the working directory looking for .git.
// Worktrees keep .git as a file, so any entry counts.
func FindGitDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findGitDirFrom(cwd)
}

func findGitDirFrom(dir string) (string, error) {
	for {
		git := filepath.Join(dir, ".git")
		if _, err := os.Stat(git); err == nil {
			return git, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find .git directory")
		}
		dir = parent
	}
}

// ReadCommitMessage reads the pending commit message from the git
// directory's COMMIT_EDITMSG file.
func ReadCommitMessage(gitDir string) (string, error) {
	path := filepath.Join(gitDir, commitMessageFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteCommitMessage writes the rewritten message back.
func WriteCommitMessage(gitDir, text string) error {
	path := filepath.Join(gitDir, commitMessageFile)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
