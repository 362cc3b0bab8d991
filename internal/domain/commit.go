package domain

import (
	"fmt"
	"strings"
	"time"
)

// commitTypes is the closed conventional-commit vocabulary
var commitTypes = map[string]bool{
	"build":    true,
	"chore":    true,
	"ci":       true,
	"docs":     true,
	"feat":     true,
	"fix":      true,
	"perf":     true,
	"refactor": true,
	"style":    true,
	"test":     true,
}

// Commit is a single parsed commit. Immutable once parsed.
type Commit struct {
	CommitType   string    `json:"commit_type,omitempty"`
	Hash         string    `json:"hash"`
	Message      string    `json:"message"`
	RelativeTime string    `json:"relative_time"`
	Time         time.Time `json:"timestamp"`
}

// NewCommit builds a Commit, classifying its type and freezing the relative label at now
func NewCommit(hash, message string, t, now time.Time) Commit {
	return Commit{
		CommitType:   DetectCommitType(message),
		Hash:         hash,
		Message:      message,
		RelativeTime: FormatRelative(now, t),
		Time:         t,
	}
}

// DisplayMessage returns the subject without its conventional-commit prefix.
// Subjects without a recognized type are returned unchanged.
func (c Commit) DisplayMessage() string {
	if c.CommitType == "" {
		return c.Message
	}
	_, rest, found := strings.Cut(c.Message, ":")
	if !found {
		return c.Message
	}
	return strings.TrimLeft(rest, " \t")
}

// DetectCommitType returns the conventional-commit type of a subject line,
// or "" when the leading token is not in the vocabulary
func DetectCommitType(message string) string {
	prefix := message
	if idx := strings.IndexAny(message, ":("); idx >= 0 {
		prefix = message[:idx]
	}
	prefix = strings.TrimSpace(prefix)
	if commitTypes[prefix] {
		return prefix
	}
	return ""
}

// FormatRelative renders the age of t at now as "just now", "Xm ago", "Xh ago" or "Xd ago".
// Values are floored.
func FormatRelative(now, t time.Time) string {
	elapsed := now.Sub(t)

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int64(elapsed/time.Minute))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int64(elapsed/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int64(elapsed/(24*time.Hour)))
	}
}
