package ports

import (
	"context"

	"devcap/internal/domain"
)

// BranchLister lists local branches of a repository
type BranchLister interface {
	// ListBranches returns local branch names; failures yield an empty list
	ListBranches(ctx context.Context, repoPath string) []string
}

// CommitLogger retrieves commit history for one branch
type CommitLogger interface {
	// LogBranch returns non-merge commits of branch inside tr, newest first.
	// An empty author matches every author. Failures yield an empty list.
	LogBranch(ctx context.Context, repoPath, branch string, tr domain.TimeRange, author string) []domain.Commit
}

// RemoteInspector queries configured remotes
type RemoteInspector interface {
	// RemoteURL returns the URL of the origin remote, or "" when absent
	RemoteURL(ctx context.Context, repoPath string) string
}

// AuthorResolver resolves the default author filter
type AuthorResolver interface {
	// DefaultAuthor returns the globally configured user.name, or ""
	DefaultAuthor(ctx context.Context) string
}

// CommitInspector renders a single commit for drill-down views
type CommitInspector interface {
	ShowCommit(ctx context.Context, repoPath, hash string) (string, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	AuthorResolver
	BranchLister
	CommitInspector
	CommitLogger
	RemoteInspector
}

// RepoFinder discovers repository roots below a directory
type RepoFinder interface {
	FindRepos(ctx context.Context, root string) []string
}
