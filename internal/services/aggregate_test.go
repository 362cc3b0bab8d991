package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"devcap/internal/domain"
)

var baseTime = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

func commitAt(hash string, ago time.Duration) domain.Commit {
	return domain.NewCommit(hash, "work "+hash, baseTime.Add(-ago), baseTime)
}

func branchNames(branches []domain.BranchLog) []string {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}
	return names
}

func projectNames(projects []domain.ProjectLog) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Project
	}
	return names
}

func TestSortBranches(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "primary branches first",
			input:    []string{"main", "feature/x", "master", "zzz"},
			expected: []string{"main", "master", "feature/x", "zzz"},
		},
		{
			name:     "lexicographic without primaries",
			input:    []string{"release", "dev", "feature/b", "feature/a"},
			expected: []string{"dev", "feature/a", "feature/b", "release"},
		},
		{
			name:     "master alone still leads",
			input:    []string{"alpha", "master"},
			expected: []string{"master", "alpha"},
		},
		{
			name:     "case-sensitive names are not primary",
			input:    []string{"Main", "dev"},
			expected: []string{"Main", "dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branches := make([]domain.BranchLog, len(tt.input))
			for i, name := range tt.input {
				branches[i] = domain.BranchLog{Name: name}
			}

			SortBranches(branches)

			assert.Equal(t, tt.expected, branchNames(branches))
		})
	}
}

func TestSortProjects_NewestFirst(t *testing.T) {
	projects := []domain.ProjectLog{
		{Project: "old", Path: "/r/old", Branches: []domain.BranchLog{
			{Name: "main", Commits: []domain.Commit{commitAt("a1", 48*time.Hour)}},
		}},
		{Project: "new", Path: "/r/new", Branches: []domain.BranchLog{
			{Name: "main", Commits: []domain.Commit{commitAt("b1", 5*time.Hour)}},
			{Name: "dev", Commits: []domain.Commit{commitAt("b2", time.Hour)}},
		}},
		{Project: "mid", Path: "/r/mid", Branches: []domain.BranchLog{
			{Name: "main", Commits: []domain.Commit{commitAt("c1", 3*time.Hour)}},
		}},
	}

	SortProjects(projects)

	assert.Equal(t, []string{"new", "mid", "old"}, projectNames(projects))
}

func TestSortProjects_EmptyProjectsLastAndTiesByPath(t *testing.T) {
	same := commitAt("x", time.Hour)
	projects := []domain.ProjectLog{
		{Project: "empty", Path: "/r/empty"},
		{Project: "zeta", Path: "/r/zeta", Branches: []domain.BranchLog{
			{Name: "main", Commits: []domain.Commit{same}},
		}},
		{Project: "alpha", Path: "/r/alpha", Branches: []domain.BranchLog{
			{Name: "main", Commits: []domain.Commit{same}},
		}},
	}

	SortProjects(projects)

	assert.Equal(t, []string{"alpha", "zeta", "empty"}, projectNames(projects))
}
