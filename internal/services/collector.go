package services

import (
	"context"
	"path/filepath"

	"devcap/internal/domain"
	"devcap/internal/logging"
	"devcap/internal/ports"
)

// CollectorService builds the activity log of a single repository
type CollectorService struct {
	branches ports.BranchLister
	commits  ports.CommitLogger
	remotes  ports.RemoteInspector
}

// NewCollectorService creates a new CollectorService
func NewCollectorService(
	branches ports.BranchLister,
	commits ports.CommitLogger,
	remotes ports.RemoteInspector,
) *CollectorService {
	return &CollectorService{
		branches: branches,
		commits:  commits,
		remotes:  remotes,
	}
}

// CollectProject returns the project log of repoPath, or a diagnostic when the
// repository has no branch with matching commits. Exactly one result is non-nil.
func (s *CollectorService) CollectProject(
	ctx context.Context,
	repoPath string,
	tr domain.TimeRange,
	author string,
) (*domain.ProjectLog, *domain.RepoDiagnostic) {
	names := s.branches.ListBranches(ctx, repoPath)
	if len(names) == 0 {
		logging.Logger.Debug("Repository has no readable branches", "repo", repoPath)
		return nil, &domain.RepoDiagnostic{Path: repoPath, Reason: domain.ReasonNoBranches}
	}

	var branches []domain.BranchLog
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		commits := s.commits.LogBranch(ctx, repoPath, name, tr, author)
		if len(commits) == 0 {
			continue
		}
		branches = append(branches, domain.BranchLog{Commits: commits, Name: name})
	}

	if len(branches) == 0 {
		logging.Logger.Debug("Repository has no matching commits", "repo", repoPath, "branches", len(names))
		return nil, &domain.RepoDiagnostic{Path: repoPath, Reason: domain.ReasonNoCommits}
	}

	SortBranches(branches)

	remoteURL := s.remotes.RemoteURL(ctx, repoPath)

	project := &domain.ProjectLog{
		Branches:  branches,
		Origin:    domain.DetectOrigin(remoteURL),
		Path:      repoPath,
		Project:   filepath.Base(repoPath),
		RemoteURL: remoteURL,
	}

	logging.Logger.Debug("Collected project",
		"repo", repoPath,
		"branches", len(branches),
		"commits", project.TotalCommits())

	return project, nil
}
