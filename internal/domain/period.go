package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PeriodKind identifies a time window selector
type PeriodKind int

const (
	PeriodToday PeriodKind = iota
	PeriodYesterday
	PeriodHours
	PeriodDays
	PeriodWeek
)

// AcceptedPeriods lists the forms ParsePeriod understands
var AcceptedPeriods = []string{"today", "yesterday", "week", "<n>h", "<n>d"}

// Period is a user-facing time window selector (e.g. "today", "7d")
type Period struct {
	Kind PeriodKind
	N    uint32 // Hours or days, only meaningful for PeriodHours and PeriodDays
}

// TimeRange is a resolved [Since, Until) bound.
// A nil Until means "up to now".
type TimeRange struct {
	Since time.Time
	Until *time.Time
}

// ParsePeriod parses user text into a Period
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "today":
		return Period{Kind: PeriodToday}, nil
	case "yesterday":
		return Period{Kind: PeriodYesterday}, nil
	case "week":
		return Period{Kind: PeriodWeek}, nil
	}

	if n, ok := parseCount(s, "h"); ok {
		return Period{Kind: PeriodHours, N: n}, nil
	}
	if n, ok := parseCount(s, "d"); ok {
		return Period{Kind: PeriodDays, N: n}, nil
	}

	return Period{}, &PeriodError{Input: s, Accepted: AcceptedPeriods}
}

// parseCount parses "<uint><suffix>"
func parseCount(s, suffix string) (uint32, bool) {
	digits, found := strings.CutSuffix(s, suffix)
	if !found || digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// String returns the textual form accepted by ParsePeriod
func (p Period) String() string {
	switch p.Kind {
	case PeriodToday:
		return "today"
	case PeriodYesterday:
		return "yesterday"
	case PeriodHours:
		return fmt.Sprintf("%dh", p.N)
	case PeriodDays:
		return fmt.Sprintf("%dd", p.N)
	case PeriodWeek:
		return "week"
	default:
		return "unknown"
	}
}

// Resolve turns a Period into a concrete TimeRange relative to now.
// Calendar arithmetic happens in now's location so midnights survive DST shifts.
func (p Period) Resolve(now time.Time) TimeRange {
	y, m, d := now.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch p.Kind {
	case PeriodYesterday:
		until := startOfToday
		return TimeRange{
			Since: time.Date(y, m, d-1, 0, 0, 0, 0, now.Location()),
			Until: &until,
		}
	case PeriodHours:
		return TimeRange{Since: hoursBefore(now, uint64(p.N))}
	case PeriodDays:
		return TimeRange{Since: hoursBefore(now, uint64(p.N)*24)}
	case PeriodWeek:
		// Weekday() counts from Sunday; shift so Monday is 0
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		return TimeRange{Since: time.Date(y, m, d-daysSinceMonday, 0, 0, 0, 0, now.Location())}
	default:
		return TimeRange{Since: startOfToday}
	}
}

// maxDurationHours is the largest whole-hour count a time.Duration can hold
const maxDurationHours = uint64(math.MaxInt64 / int64(time.Hour))

// hoursBefore subtracts hours from now in Duration-sized steps so large counts never wrap
func hoursBefore(now time.Time, hours uint64) time.Time {
	t := now
	for hours > maxDurationHours {
		t = t.Add(-time.Duration(maxDurationHours) * time.Hour)
		hours -= maxDurationHours
	}
	return t.Add(-time.Duration(hours) * time.Hour)
}

// Contains reports whether t falls inside the range (exclusive on both ends)
func (r TimeRange) Contains(t time.Time) bool {
	if !t.After(r.Since) {
		return false
	}
	return r.Until == nil || t.Before(*r.Until)
}
