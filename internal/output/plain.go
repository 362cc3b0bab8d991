package output

import (
	"fmt"
	"strings"

	"devcap/internal/domain"
)

// Plain renders projects as text without any escape sequences, for the clipboard
func Plain(projects []domain.ProjectLog, opts Options) string {
	if len(projects) == 0 {
		return EmptyReportMessage
	}

	var b strings.Builder
	for i, p := range projects {
		if i > 0 && opts.Depth != DepthProjects {
			b.WriteByte('\n')
		}
		origin := originSuffix(p, opts.ShowOrigin)

		switch opts.Depth {
		case DepthProjects:
			fmt.Fprintf(&b, ":: %s%s  (%d commits, %d branches, %s)\n",
				p.Project, origin, p.TotalCommits(), len(p.Branches), latestOr(p.LatestActivity()))
		case DepthBranches:
			fmt.Fprintf(&b, ":: %s%s  (%s)\n", p.Project, origin, latestOr(p.LatestActivity()))
			for _, br := range p.Branches {
				fmt.Fprintf(&b, "  >> %s  (%d commits, %s)\n",
					br.Name, len(br.Commits), latestOr(br.LatestActivity()))
			}
		default:
			fmt.Fprintf(&b, ":: %s%s\n", p.Project, origin)
			for _, br := range p.Branches {
				fmt.Fprintf(&b, "  >> %s\n", br.Name)
				for _, c := range br.Commits {
					tag := ""
					if c.CommitType != "" {
						tag = c.CommitType + " - "
					}
					fmt.Fprintf(&b, "    * %s %s%s  %s\n", c.Hash, tag, c.DisplayMessage(), c.RelativeTime)
				}
			}
		}
	}
	return b.String()
}
