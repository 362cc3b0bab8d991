package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"devcap/internal/domain"
	"devcap/internal/logging"
	"devcap/internal/ports"
)

// DefaultTimeout bounds every git invocation when no timeout is configured
const DefaultTimeout = 30 * time.Second

// logFormat is short hash, subject and strict ISO-8601 author date separated by NUL
const logFormat = "--format=%h%x00%s%x00%aI"

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	binary  string
	now     func() time.Time
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// Option configures a CLIRepository
type Option func(*CLIRepository)

// WithTimeout sets the per-invocation timeout. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *CLIRepository) {
		r.timeout = d
	}
}

// WithBinary overrides the git executable
func WithBinary(path string) Option {
	return func(r *CLIRepository) {
		r.binary = path
	}
}

// WithClock overrides the clock used to compute relative commit labels
func WithClock(now func() time.Time) Option {
	return func(r *CLIRepository) {
		r.now = now
	}
}

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository(opts ...Option) *CLIRepository {
	r := &CLIRepository{
		binary:  "git",
		now:     time.Now,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListBranches implements BranchLister.ListBranches
func (r *CLIRepository) ListBranches(ctx context.Context, repoPath string) []string {
	output, err := r.run(ctx, repoPath, "branch", "--format=%(refname:short)")
	if err != nil {
		logging.Logger.Debug("Failed to list branches", "repo", repoPath, "error", err)
		return nil
	}

	var branches []string
	for _, line := range strings.Split(output, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			branches = append(branches, name)
		}
	}
	return branches
}

// LogBranch implements CommitLogger.LogBranch
func (r *CLIRepository) LogBranch(ctx context.Context, repoPath, branch string, tr domain.TimeRange, author string) []domain.Commit {
	output, err := r.run(ctx, repoPath, logArgs(branch, tr, author)...)
	if err != nil {
		logging.Logger.Debug("Failed to log branch", "repo", repoPath, "branch", branch, "error", err)
		return nil
	}

	commits, dropped := ParseLog(output, r.now())
	if dropped > 0 {
		logging.Logger.Warn("Dropped malformed log records",
			"repo", repoPath,
			"branch", branch,
			"dropped", dropped)
	}
	return commits
}

// logArgs builds the git log invocation for one branch
func logArgs(branch string, tr domain.TimeRange, author string) []string {
	args := []string{
		"log",
		logFormat,
		"--no-merges",
		"--after=" + tr.Since.Format(time.RFC3339),
	}
	if tr.Until != nil {
		args = append(args, "--before="+tr.Until.Format(time.RFC3339))
	}
	if author != "" {
		// --author is a regex in git; fixed-strings keeps it a plain substring match
		args = append(args, "--fixed-strings", "--author="+author)
	}
	// Trailing "--" keeps branch names from being read as paths
	return append(args, branch, "--")
}

// RemoteURL implements RemoteInspector.RemoteURL
func (r *CLIRepository) RemoteURL(ctx context.Context, repoPath string) string {
	output, err := r.run(ctx, repoPath, "remote", "get-url", "origin")
	if err != nil {
		logging.Logger.Debug("No origin remote", "repo", repoPath, "error", err)
		return ""
	}
	return strings.TrimSpace(output)
}

// DefaultAuthor implements AuthorResolver.DefaultAuthor
func (r *CLIRepository) DefaultAuthor(ctx context.Context) string {
	output, err := r.run(ctx, "", "config", "--global", "user.name")
	if err != nil {
		logging.Logger.Debug("No global git user.name", "error", err)
		return ""
	}
	return strings.TrimSpace(output)
}

// ShowCommit implements CommitInspector.ShowCommit
func (r *CLIRepository) ShowCommit(ctx context.Context, repoPath, hash string) (string, error) {
	output, err := r.run(ctx, repoPath, "show", "--stat", "--format=medium", hash, "--")
	if err != nil {
		return "", fmt.Errorf("failed to show commit %s: %w", hash, err)
	}
	return output, nil
}

// run executes git with the configured timeout. repoPath may be empty for global commands.
func (r *CLIRepository) run(ctx context.Context, repoPath string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	subcommand := args[0]
	if repoPath != "" {
		args = append([]string{"-C", repoPath}, args...)
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("git %s timed out after %s", subcommand, r.timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git exited with %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("failed to run git: %w", err)
	}

	return string(output), nil
}
