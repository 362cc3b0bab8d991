package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"devcap/internal/domain"
)

// Table writes a one-row-per-project summary
func Table(w io.Writer, projects []domain.ProjectLog, opts Options) {
	header := []string{"Project", "Branches", "Commits", "Latest", "Path"}
	if opts.ShowOrigin {
		header = []string{"Project", "Origin", "Branches", "Commits", "Latest", "Path"}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, p := range projects {
		row := []string{
			p.Project,
			fmt.Sprintf("%d", len(p.Branches)),
			fmt.Sprintf("%d", p.TotalCommits()),
			latestOr(p.LatestActivity()),
			p.Path,
		}
		if opts.ShowOrigin {
			origin := "-"
			if p.Origin != nil {
				origin = p.Origin.String()
			}
			row = append(row[:1], append([]string{origin}, row[1:]...)...)
		}
		table.Append(row)
	}
	table.Render()
}

// DiagnosticsTable lists repositories that produced no project
func DiagnosticsTable(w io.Writer, skipped []domain.RepoDiagnostic) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Repository", "Reason"})
	for _, d := range skipped {
		table.Append([]string{d.Path, d.Reason})
	}
	table.Render()
}
