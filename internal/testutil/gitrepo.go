// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// DefaultAuthor is the author used when a commit does not name one
const DefaultAuthor = "Test User"

// GitRepo is a working repository created under a test's temp directory
type GitRepo struct {
	Path    string
	counter int
	tb      testing.TB
}

// RequireGit skips the test when git is not installed
func RequireGit(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git not found in PATH, skipping test")
	}
}

// NewGitRepo initializes a repository at path with "main" as its initial branch.
// No commits are created.
func NewGitRepo(tb testing.TB, path string) *GitRepo {
	tb.Helper()
	RequireGit(tb)

	if err := os.MkdirAll(path, 0755); err != nil {
		tb.Fatalf("Failed to create repo dir: %v", err)
	}

	repo := &GitRepo{Path: path, tb: tb}
	repo.Git("init", "--quiet")
	repo.Git("symbolic-ref", "HEAD", "refs/heads/main")
	repo.Git("config", "user.email", "test@example.com")
	repo.Git("config", "user.name", DefaultAuthor)
	repo.Git("config", "commit.gpgsign", "false")
	return repo
}

// Commit creates a commit authored by author at the given time and returns its short hash
func (r *GitRepo) Commit(author, message string, at time.Time) string {
	r.tb.Helper()

	r.counter++
	name := fmt.Sprintf("file-%d.txt", r.counter)
	if err := os.WriteFile(filepath.Join(r.Path, name), []byte(message+"\n"), 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", name, err)
	}

	if author == "" {
		author = DefaultAuthor
	}
	date := at.Format(time.RFC3339)
	r.gitEnv([]string{
		"GIT_AUTHOR_NAME=" + author,
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}, "add", name)
	r.gitEnv([]string{
		"GIT_AUTHOR_NAME=" + author,
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}, "commit", "--quiet", "-m", message)

	return r.Git("rev-parse", "--short", "HEAD")
}

// Branch creates a branch at HEAD
func (r *GitRepo) Branch(name string) {
	r.tb.Helper()
	r.Git("branch", name)
}

// Checkout switches branches
func (r *GitRepo) Checkout(name string) {
	r.tb.Helper()
	r.Git("checkout", "--quiet", name)
}

// MergeNoFF merges branch into the current branch with a merge commit at the given time
func (r *GitRepo) MergeNoFF(branch string, at time.Time) {
	r.tb.Helper()
	date := at.Format(time.RFC3339)
	r.gitEnv([]string{
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}, "merge", "--quiet", "--no-ff", "-m", "Merge branch '"+branch+"'", branch)
}

// SetOrigin configures the origin remote URL
func (r *GitRepo) SetOrigin(url string) {
	r.tb.Helper()
	r.Git("remote", "add", "origin", url)
}

// Git runs a git command in the repository and returns trimmed stdout
func (r *GitRepo) Git(args ...string) string {
	r.tb.Helper()
	return r.gitEnv(nil, args...)
}

func (r *GitRepo) gitEnv(env []string, args ...string) string {
	r.tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Path
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME="+DefaultAuthor,
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME="+DefaultAuthor,
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	cmd.Env = append(cmd.Env, env...)

	output, err := cmd.Output()
	if err != nil {
		stderr := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		r.tb.Fatalf("git %v failed in %s: %v\nStderr: %s", args, r.Path, err, stderr)
	}
	return strings.TrimSpace(string(output))
}
