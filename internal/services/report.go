package services

import (
	"context"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"devcap/internal/domain"
	"devcap/internal/logging"
	"devcap/internal/ports"
)

// ReportParams describes one collection run
type ReportParams struct {
	Author    string
	Now       time.Time
	Progress  func(done, total int) // optional, called from worker goroutines
	Root      string
	TimeRange domain.TimeRange
	Workers   int // <= 0 uses runtime.NumCPU()
}

// ReportService discovers repositories and collects their activity concurrently
type ReportService struct {
	collector *CollectorService
	finder    ports.RepoFinder
}

// NewReportService creates a new ReportService
func NewReportService(finder ports.RepoFinder, collector *CollectorService) *ReportService {
	return &ReportService{
		collector: collector,
		finder:    finder,
	}
}

// repoResult is the outcome of one repository; exactly one field is set
type repoResult struct {
	diagnostic *domain.RepoDiagnostic
	project    *domain.ProjectLog
}

// Build discovers repositories below params.Root and aggregates their commits.
// The only error returned is the context's.
func (s *ReportService) Build(ctx context.Context, params ReportParams) (*domain.Report, error) {
	repos := s.finder.FindRepos(ctx, params.Root)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := params.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logging.Logger.Info("Collecting commits",
		"root", params.Root,
		"repos", len(repos),
		"workers", workers,
		"since", params.TimeRange.Since)

	// Each task writes only its own slot
	results := make([]repoResult, len(repos))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, repo := range repos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			project, diagnostic := s.collector.CollectProject(gctx, repo, params.TimeRange, params.Author)
			results[i] = repoResult{diagnostic: diagnostic, project: project}

			n := done.Add(1)
			if params.Progress != nil {
				params.Progress(int(n), len(repos))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Workers stop early on cancellation without reporting it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.Report{
		CollectedAt: params.Now,
		Repos:       len(repos),
		TimeRange:   params.TimeRange,
	}
	for _, r := range results {
		if r.project != nil {
			report.Projects = append(report.Projects, *r.project)
		}
		if r.diagnostic != nil {
			report.Skipped = append(report.Skipped, *r.diagnostic)
		}
	}

	SortProjects(report.Projects)
	sort.Slice(report.Skipped, func(i, j int) bool {
		return report.Skipped[i].Path < report.Skipped[j].Path
	})

	logging.Logger.Info("Collection finished",
		"projects", len(report.Projects),
		"skipped", len(report.Skipped),
		"commits", report.TotalCommits())

	return report, nil
}
