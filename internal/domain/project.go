package domain

import "time"

// BranchLog holds the matching commits of one branch, newest first
type BranchLog struct {
	Commits []Commit `json:"commits"`
	Name    string   `json:"name"`
}

// LatestActivity returns the relative label of the newest commit, or "" when empty
func (b BranchLog) LatestActivity() string {
	if len(b.Commits) == 0 {
		return ""
	}
	return b.Commits[0].RelativeTime
}

// ProjectLog groups the branches of one repository
type ProjectLog struct {
	Branches  []BranchLog `json:"branches"`
	Origin    *RepoOrigin `json:"origin,omitempty"`
	Path      string      `json:"path"`
	Project   string      `json:"project"`
	RemoteURL string      `json:"remote_url,omitempty"`
}

// TotalCommits counts distinct commit hashes across all branches.
// A commit reachable from several branches is counted once.
func (p ProjectLog) TotalCommits() int {
	seen := make(map[string]struct{})
	for _, b := range p.Branches {
		for _, c := range b.Commits {
			seen[c.Hash] = struct{}{}
		}
	}
	return len(seen)
}

// LatestCommit returns the newest commit across the heads of every branch
func (p ProjectLog) LatestCommit() (Commit, bool) {
	var latest Commit
	found := false
	for _, b := range p.Branches {
		if len(b.Commits) == 0 {
			continue
		}
		head := b.Commits[0]
		if !found || head.Time.After(latest.Time) {
			latest = head
			found = true
		}
	}
	return latest, found
}

// LatestCommitTime returns the timestamp of LatestCommit
func (p ProjectLog) LatestCommitTime() (time.Time, bool) {
	c, ok := p.LatestCommit()
	return c.Time, ok
}

// LatestActivity returns the relative label of the newest commit, or "" when empty
func (p ProjectLog) LatestActivity() string {
	c, ok := p.LatestCommit()
	if !ok {
		return ""
	}
	return c.RelativeTime
}

// RepoDiagnostic explains why a discovered repository produced no ProjectLog
type RepoDiagnostic struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Diagnostic reasons
const (
	ReasonNoBranches = "no readable branches"
	ReasonNoCommits  = "no matching commits"
)

// Report is the output of one collection run
type Report struct {
	Projects    []ProjectLog     `json:"projects"`
	Repos       int              `json:"repos"`
	Skipped     []RepoDiagnostic `json:"skipped,omitempty"`
	TimeRange   TimeRange        `json:"-"`
	CollectedAt time.Time        `json:"collected_at"`
}

// TotalCommits sums the per-project distinct commit counts
func (r Report) TotalCommits() int {
	total := 0
	for _, p := range r.Projects {
		total += p.TotalCommits()
	}
	return total
}
