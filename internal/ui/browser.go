package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"devcap/internal/domain"
	"devcap/internal/logging"
	"devcap/internal/output"
	"devcap/internal/ports"
)

// Menu labels
const (
	backLabel    = "❮ Back"
	quitLabel    = "❮ Quit"
	showAllLabel = "☰ Show all"
)

// Reserved selection values; list entries use their index
const (
	choiceBack    = -1
	choiceShowAll = -2
)

// selectFunc asks the user to pick one option and returns its value
type selectFunc func(ctx context.Context, title string, options []huh.Option[int]) (int, error)

// pagerFunc displays a commit detail
type pagerFunc func(title, content string) error

// Browser drills down projects → branches → commits → commit detail
type Browser struct {
	errOut    io.Writer
	inspector ports.CommitInspector
	out       io.Writer
	pager     pagerFunc
	selectOne selectFunc
	term      *output.Terminal
}

// NewBrowser creates a Browser printing "show all" listings to out
func NewBrowser(inspector ports.CommitInspector, out, errOut io.Writer, opts output.Options) *Browser {
	opts.Depth = output.DepthCommits
	term := output.NewTerminal(out, opts)
	return &Browser{
		errOut:    errOut,
		inspector: inspector,
		out:       out,
		pager: func(title, content string) error {
			return ShowDetail(title, content, term.Styles())
		},
		selectOne: huhSelect,
		term:      term,
	}
}

// Run browses projects until the user quits. Esc and Ctrl+C go back one level.
func (b *Browser) Run(ctx context.Context, projects []domain.ProjectLog) error {
	for {
		options := b.menu(quitLabel)
		for i, p := range projects {
			options = append(options, huh.NewOption(b.term.ProjectItem(p), i))
		}

		choice, err := b.selectOne(ctx, "Select project", options)
		if err != nil {
			return err
		}

		switch choice {
		case choiceBack:
			return nil
		case choiceShowAll:
			fmt.Fprintln(b.out)
			b.term.Render(projects)
			fmt.Fprintln(b.out)
		default:
			if err := b.browseProject(ctx, projects[choice]); err != nil {
				return err
			}
		}
	}
}

func (b *Browser) browseProject(ctx context.Context, project domain.ProjectLog) error {
	for {
		options := b.menu(backLabel)
		for i, br := range project.Branches {
			options = append(options, huh.NewOption(b.term.BranchItem(br), i))
		}

		choice, err := b.selectOne(ctx, "Select branch · "+project.Project, options)
		if err != nil {
			return err
		}

		switch choice {
		case choiceBack:
			return nil
		case choiceShowAll:
			fmt.Fprintln(b.out)
			b.term.RenderProject(project)
			fmt.Fprintln(b.out)
		default:
			if err := b.browseBranch(ctx, project, project.Branches[choice]); err != nil {
				return err
			}
		}
	}
}

func (b *Browser) browseBranch(ctx context.Context, project domain.ProjectLog, branch domain.BranchLog) error {
	for {
		options := b.menu(backLabel)
		for i, c := range branch.Commits {
			options = append(options, huh.NewOption(b.term.CommitLine(c), i))
		}

		choice, err := b.selectOne(ctx, "Select commit · "+project.Project+" "+branch.Name, options)
		if err != nil {
			return err
		}

		switch choice {
		case choiceBack:
			return nil
		case choiceShowAll:
			fmt.Fprintln(b.out)
			b.term.RenderBranch(branch)
			fmt.Fprintln(b.out)
		default:
			b.showCommit(ctx, project, branch.Commits[choice])
		}
	}
}

// showCommit never fails the browser; problems are reported and browsing continues
func (b *Browser) showCommit(ctx context.Context, project domain.ProjectLog, commit domain.Commit) {
	detail, err := b.inspector.ShowCommit(ctx, project.Path, commit.Hash)
	if err != nil {
		logging.Logger.Warn("Failed to show commit", "repo", project.Path, "hash", commit.Hash, "error", err)
		fmt.Fprintf(b.errOut, "Failed to show commit %s\n", commit.Hash)
		return
	}

	title := fmt.Sprintf("%s · %s", project.Project, commit.Hash)
	if err := b.pager(title, detail); err != nil {
		logging.Logger.Debug("Pager failed, printing detail", "error", err)
		fmt.Fprintf(b.out, "\n%s\n", detail)
	}
}

func (b *Browser) menu(exitLabel string) []huh.Option[int] {
	return []huh.Option[int]{
		huh.NewOption(exitLabel, choiceBack),
		huh.NewOption(showAllLabel, choiceShowAll),
	}
}

// huhSelect runs a single-choice form ("/" filters); aborting it means "back"
func huhSelect(ctx context.Context, title string, options []huh.Option[int]) (int, error) {
	choice := choiceBack
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Height(min(len(options)+2, 20)).
				Value(&choice),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return choiceBack, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return choiceBack, ctxErr
		}
		return choiceBack, fmt.Errorf("selection failed: %w", err)
	}
	return choice, nil
}
