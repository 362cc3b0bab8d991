// Package output renders collected reports for terminals, clipboards and machines.
package output

import (
	"fmt"
	"strings"

	"devcap/internal/domain"
)

// Depth controls how much of the project tree is rendered
type Depth string

const (
	DepthProjects Depth = "projects"
	DepthBranches Depth = "branches"
	DepthCommits  Depth = "commits"
)

// ParseDepth converts a textual depth; "" means DepthCommits
func ParseDepth(s string) (Depth, error) {
	switch Depth(s) {
	case "":
		return DepthCommits, nil
	case DepthProjects, DepthBranches, DepthCommits:
		return Depth(s), nil
	}
	return "", fmt.Errorf("invalid depth %q (use one of: projects, branches, commits)", s)
}

// Options are passed explicitly to every renderer
type Options struct {
	Color      bool
	Depth      Depth
	ShowOrigin bool
}

// EmptyReportMessage is shown when no project matched
const EmptyReportMessage = "No commits found for the given period."

// NoReposMessage is shown when discovery found nothing below root
func NoReposMessage(root string) string {
	return "No git repositories found in: " + root
}

// SummaryLine describes the totals of a report in one sentence
func SummaryLine(projects []domain.ProjectLog) string {
	commits := 0
	for _, p := range projects {
		commits += p.TotalCommits()
	}

	switch {
	case commits == 0:
		return "No commits found."
	case commits == 1 && len(projects) == 1:
		return "Found 1 commit in 1 project"
	case len(projects) == 1:
		return fmt.Sprintf("Found %d commits in 1 project", commits)
	case commits == 1:
		return fmt.Sprintf("Found 1 commit in %d projects", len(projects))
	default:
		return fmt.Sprintf("Found %d commits in %d projects", commits, len(projects))
	}
}

// Pluralize returns "n word" with the plural form when n != 1
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	if strings.HasSuffix(word, "ch") || strings.HasSuffix(word, "s") {
		return fmt.Sprintf("%d %ses", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// latestOr returns label, or "-" when empty
func latestOr(label string) string {
	if label == "" {
		return "-"
	}
	return label
}

// originSuffix is " [Provider]" when origins are shown and known
func originSuffix(p domain.ProjectLog, show bool) string {
	if !show || p.Origin == nil {
		return ""
	}
	return " [" + p.Origin.String() + "]"
}
