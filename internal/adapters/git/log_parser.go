package git

import (
	"strings"
	"time"

	"devcap/internal/domain"
)

// fieldSeparator never appears in subjects git emits
const fieldSeparator = "\x00"

// logFields is the exact number of fields per record
const logFields = 3

// ParseLog parses the output of git log run with logFormat.
//
// Each non-empty line must contain exactly three NUL-separated fields
// (short hash, subject, RFC 3339 author date). Lines that violate this are
// dropped and counted; parsing continues with the next line. Relative labels
// are computed against now.
func ParseLog(output string, now time.Time) ([]domain.Commit, int) {
	var commits []domain.Commit
	dropped := 0

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		commit, ok := parseRecord(line, now)
		if !ok {
			dropped++
			continue
		}
		commits = append(commits, commit)
	}

	return commits, dropped
}

// parseRecord parses one log line
func parseRecord(line string, now time.Time) (domain.Commit, bool) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != logFields {
		return domain.Commit{}, false
	}

	hash := strings.TrimSpace(fields[0])
	if hash == "" {
		return domain.Commit{}, false
	}

	t, err := time.Parse(time.RFC3339, fields[2])
	if err != nil {
		return domain.Commit{}, false
	}

	return domain.NewCommit(hash, fields[1], t.Local(), now), true
}
