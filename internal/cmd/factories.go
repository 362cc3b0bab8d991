package cmd

import (
	"io"
	"os"
	"time"

	adapterclipboard "devcap/internal/adapters/clipboard"
	adapterdiscovery "devcap/internal/adapters/discovery"
	adaptergit "devcap/internal/adapters/git"
	"devcap/internal/ports"
	"devcap/internal/services"
)

const defaultGitTimeout = adaptergit.DefaultTimeout

// Container holds all dependencies for the application
type Container struct {
	// Services
	ReportService *services.ReportService

	// Adapters used directly by commands
	AuthorResolver  ports.AuthorResolver
	Clipboard       ports.Clipboard
	CommitInspector ports.CommitInspector
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(gitTimeout time.Duration) *Container {
	gitRepo := adaptergit.NewCLIRepository(adaptergit.WithTimeout(gitTimeout))
	repoFinder := adapterdiscovery.NewWalker()

	collectorService := services.NewCollectorService(gitRepo, gitRepo, gitRepo)
	reportService := services.NewReportService(repoFinder, collectorService)

	return &Container{
		AuthorResolver:  gitRepo,
		Clipboard:       adapterclipboard.NewSystem(osc52Terminal(os.Stderr)),
		CommitInspector: gitRepo,
		ReportService:   reportService,
	}
}

// osc52Terminal returns f when it is a terminal that can receive OSC 52, or nil
func osc52Terminal(f *os.File) io.Writer {
	if f == nil || !isTerminal(f) {
		return nil
	}
	return f
}
