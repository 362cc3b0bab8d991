package services

import (
	"sort"

	"devcap/internal/domain"
)

// primaryBranches are listed before every other branch of a project
var primaryBranches = map[string]bool{
	"main":   true,
	"master": true,
}

// SortBranches orders branches with main and master first, then by name
func SortBranches(branches []domain.BranchLog) {
	sort.SliceStable(branches, func(i, j int) bool {
		pi, pj := primaryBranches[branches[i].Name], primaryBranches[branches[j].Name]
		if pi != pj {
			return pi
		}
		return branches[i].Name < branches[j].Name
	})
}

// SortProjects orders projects by most recent commit, newest first.
// Projects without commits go last; ties are broken by path.
func SortProjects(projects []domain.ProjectLog) {
	sort.SliceStable(projects, func(i, j int) bool {
		ti, okI := projects[i].LatestCommitTime()
		tj, okJ := projects[j].LatestCommitTime()
		switch {
		case okI != okJ:
			return okI
		case okI && !ti.Equal(tj):
			return ti.After(tj)
		default:
			return projects[i].Path < projects[j].Path
		}
	})
}
