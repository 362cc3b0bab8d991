package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"devcap/internal/domain"
	"devcap/internal/theme"
)

// Tree markers
const (
	projectMarker = "::"
	branchMarker  = ">>"
	commitBullet  = "*"
)

// Terminal renders the project tree with optional ANSI styling
type Terminal struct {
	opts   Options
	styles *theme.Styles
	w      io.Writer
}

// NewTerminal creates a Terminal writing to w. Colour follows opts.Color only,
// regardless of what w is attached to.
func NewTerminal(w io.Writer, opts Options) *Terminal {
	if opts.Depth == "" {
		opts.Depth = DepthCommits
	}
	return &Terminal{
		opts:   opts,
		styles: NewStyles(w, opts.Color),
		w:      w,
	}
}

// NewStyles builds theme styles for w with colour forced on or off
func NewStyles(w io.Writer, color bool) *theme.Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return theme.NewStyles(r)
}

// Styles exposes the styles bound to this terminal
func (t *Terminal) Styles() *theme.Styles {
	return t.styles
}

// Render writes every project at the configured depth.
// Projects are separated by a blank line except at project depth.
func (t *Terminal) Render(projects []domain.ProjectLog) {
	for i, p := range projects {
		if i > 0 && t.opts.Depth != DepthProjects {
			fmt.Fprintln(t.w)
		}
		switch t.opts.Depth {
		case DepthProjects:
			fmt.Fprintln(t.w, t.ProjectSummary(p))
		case DepthBranches:
			t.renderProjectBranches(p)
		default:
			t.RenderProject(p)
		}
	}
}

// ProjectSummary is the one-line project form used at project depth
func (t *Terminal) ProjectSummary(p domain.ProjectLog) string {
	summary := fmt.Sprintf("(%d commits, %d branches, %s)",
		p.TotalCommits(), len(p.Branches), latestOr(p.LatestActivity()))
	return t.projectHeader(p) + "  " + t.styles.Muted.Render(summary)
}

func (t *Terminal) renderProjectBranches(p domain.ProjectLog) {
	summary := fmt.Sprintf("(%s)", latestOr(p.LatestActivity()))
	fmt.Fprintln(t.w, t.projectHeader(p)+"  "+t.styles.Muted.Render(summary))
	for _, b := range p.Branches {
		summary := fmt.Sprintf("(%d commits, %s)", len(b.Commits), latestOr(b.LatestActivity()))
		fmt.Fprintf(t.w, "  %s  %s\n", t.branchHeader(b), t.styles.Muted.Render(summary))
	}
}

// RenderProject writes one project with every branch and commit
func (t *Terminal) RenderProject(p domain.ProjectLog) {
	fmt.Fprintln(t.w, t.projectHeader(p))
	for _, b := range p.Branches {
		t.RenderBranch(b)
	}
}

// RenderBranch writes one branch and its commits
func (t *Terminal) RenderBranch(b domain.BranchLog) {
	fmt.Fprintf(t.w, "  %s\n", t.branchHeader(b))
	for _, c := range b.Commits {
		fmt.Fprintf(t.w, "    %s %s\n", t.styles.Muted.Render(commitBullet), t.CommitLine(c))
	}
}

// CommitLine is "hash [type ]- message  relative"
func (t *Terminal) CommitLine(c domain.Commit) string {
	line := t.styles.Muted.Render(c.Hash) + " "
	if c.CommitType != "" {
		line += t.styles.CommitType(c.CommitType) + " "
	}
	return line + "- " + c.DisplayMessage() + "  " + t.styles.Muted.Render(c.RelativeTime)
}

// ProjectItem is the selection label of a project in the browser
func (t *Terminal) ProjectItem(p domain.ProjectLog) string {
	summary := fmt.Sprintf("(%s, %s, %s)",
		Pluralize(p.TotalCommits(), "commit"),
		Pluralize(len(p.Branches), "branch"),
		latestOr(p.LatestActivity()))
	return t.projectHeader(p) + "  " + t.styles.Muted.Render(summary)
}

// BranchItem is the selection label of a branch in the browser
func (t *Terminal) BranchItem(b domain.BranchLog) string {
	summary := fmt.Sprintf("(%s, %s)", Pluralize(len(b.Commits), "commit"), latestOr(b.LatestActivity()))
	return t.branchHeader(b) + "  " + t.styles.Muted.Render(summary)
}

func (t *Terminal) projectHeader(p domain.ProjectLog) string {
	header := t.styles.ProjectMarker.Render(projectMarker) + " " + t.styles.Project.Render(p.Project)
	if origin := originSuffix(p, t.opts.ShowOrigin); origin != "" {
		header += t.styles.Muted.Render(origin)
	}
	return header
}

func (t *Terminal) branchHeader(b domain.BranchLog) string {
	return t.styles.BranchMarker.Render(branchMarker) + " " + t.styles.Branch.Render(b.Name)
}
