package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"devcap/internal/config"
	"devcap/internal/domain"
	"devcap/internal/logging"
	"devcap/internal/output"
	"devcap/internal/services"
	"devcap/internal/ui"
)

// ReportCmd collects and renders commits.
// Empty flags fall back to settings.json, then to the documented default.
type ReportCmd struct {
	Author      string        `help:"Filter by author (default: git config --global user.name)" short:"a" env:"DEVCAP_AUTHOR"`
	Copy        bool          `help:"Copy the plain-text report to the clipboard"`
	Depth       string        `help:"Detail level: projects, branches or commits (default: commits)" short:"D" env:"DEVCAP_DEPTH"`
	Diagnostics bool          `help:"List repositories that produced no output and why"`
	GitTimeout  time.Duration `help:"Timeout for each git invocation (default: 30s)" env:"DEVCAP_GIT_TIMEOUT"`
	Interactive bool          `help:"Browse projects, branches and commits interactively" short:"i"`
	JSON        bool          `help:"Output JSON" name:"json"`
	NoColor     bool          `help:"Disable colored output (also honours NO_COLOR)"`
	Path        string        `help:"Root directory to scan (default: current directory)" type:"path" env:"DEVCAP_PATH"`
	Period      string        `help:"Time period: today, yesterday, week, <n>h, <n>d (default: today)" short:"p" env:"DEVCAP_PERIOD"`
	ShowOrigin  bool          `help:"Show the hosting provider of each project" short:"o" env:"DEVCAP_SHOW_ORIGIN"`
	Table       bool          `help:"Output a one-row-per-project table"`
	Workers     int           `help:"Repositories scanned in parallel (default: number of CPUs)" env:"DEVCAP_WORKERS"`
}

// reportOptions are the fully resolved inputs of one report run
type reportOptions struct {
	author  string
	output  output.Options
	period  domain.Period
	root    string
	workers int
}

// resolveOptions merges flags with settings. isTTY reports whether stdout is a terminal.
func (r *ReportCmd) resolveOptions(settings *config.Settings, isTTY bool) (reportOptions, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	var opts reportOptions

	periodText := firstNonEmpty(r.Period, settings.Period, "today")
	period, err := domain.ParsePeriod(periodText)
	if err != nil {
		if r.Period == "" && settings.Period != "" {
			return opts, fmt.Errorf("invalid period in settings.json: %w", err)
		}
		return opts, err
	}
	opts.period = period

	depth, err := output.ParseDepth(firstNonEmpty(r.Depth, settings.Depth))
	if err != nil {
		return opts, err
	}

	opts.root = firstNonEmpty(r.Path, settings.Path, ".")
	opts.author = firstNonEmpty(r.Author, settings.Author)

	opts.workers = r.Workers
	if opts.workers <= 0 && settings.Workers != nil {
		opts.workers = *settings.Workers
	}

	color := isTTY
	if settings.Color != nil {
		color = *settings.Color
	}
	if r.NoColor || r.JSON {
		color = false
	}

	opts.output = output.Options{
		Color:      color,
		Depth:      depth,
		ShowOrigin: r.ShowOrigin || (settings.ShowOrigin != nil && *settings.ShowOrigin),
	}

	return opts, nil
}

// Run executes the report command
func (r *ReportCmd) Run(cli *CLI) error {
	if err := cli.requireContainer(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if os.Getenv("NO_COLOR") != "" {
		r.NoColor = true
	}

	opts, err := r.resolveOptions(cli.settings, isTerminal(os.Stdout))
	if err != nil {
		return err
	}

	var spinner *ui.Spinner
	if !r.JSON && isTerminal(os.Stderr) {
		styles := output.NewStyles(os.Stderr, opts.output.Color)
		spinner = ui.StartSpinner(os.Stderr, "Scanning repositories...", styles)
	}

	return r.run(ctx, cli.Container, opts, spinner, os.Stdout, os.Stderr)
}

// run collects the report and writes it; split from Run so tests can supply writers
func (r *ReportCmd) run(
	ctx context.Context,
	container *Container,
	opts reportOptions,
	spinner *ui.Spinner,
	stdout, stderr io.Writer,
) error {
	if opts.author == "" {
		opts.author = container.AuthorResolver.DefaultAuthor(ctx)
	}

	now := time.Now()
	tr := opts.period.Resolve(now)

	logging.Logger.Info("Starting report",
		"period", opts.period.String(),
		"root", opts.root,
		"author", opts.author,
		"since", tr.Since)

	report, err := container.ReportService.Build(ctx, services.ReportParams{
		Author:    opts.author,
		Now:       now,
		Progress:  spinner.SetProgress,
		Root:      opts.root,
		TimeRange: tr,
		Workers:   opts.workers,
	})
	if err != nil {
		spinner.Stop("")
		return fmt.Errorf("collection interrupted: %w", err)
	}

	errStyles := output.NewStyles(stderr, opts.output.Color)

	if report.Repos == 0 {
		spinner.Stop("")
		if r.JSON {
			return output.JSON(stdout, nil)
		}
		fmt.Fprintln(stderr, output.NoReposMessage(opts.root))
		return nil
	}

	spinner.Stop("✓ " + output.SummaryLine(report.Projects))

	switch {
	case r.Interactive && len(report.Projects) > 0:
		browser := ui.NewBrowser(container.CommitInspector, stdout, stderr, opts.output)
		if err := browser.Run(ctx, report.Projects); err != nil {
			return err
		}
	case r.JSON:
		if err := output.JSON(stdout, report.Projects); err != nil {
			return err
		}
	case len(report.Projects) == 0:
		fmt.Fprintln(stderr, errStyles.Muted.Render(output.EmptyReportMessage))
	case r.Table:
		output.Table(stdout, report.Projects, opts.output)
	default:
		fmt.Fprintln(stdout)
		output.NewTerminal(stdout, opts.output).Render(report.Projects)
	}

	if r.Diagnostics && len(report.Skipped) > 0 {
		fmt.Fprintf(stderr, "\n%d of %d repositories skipped:\n", len(report.Skipped), report.Repos)
		output.DiagnosticsTable(stderr, report.Skipped)
	}

	if r.Copy {
		text := output.Plain(report.Projects, opts.output)
		if err := container.Clipboard.WriteText(text); err != nil {
			logging.Logger.Warn("Failed to copy report", "error", err)
			fmt.Fprintln(stderr, errStyles.Warning.Render(fmt.Sprintf("Warning: could not copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(stderr, "Copied to clipboard.")
		}
	}

	return nil
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
