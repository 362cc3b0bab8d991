package discovery

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"devcap/internal/logging"
	"devcap/internal/ports"
)

// metadataDir marks a repository root
const metadataDir = ".git"

// SkipDirs are dependency, build and cache directories never descended into
var SkipDirs = []string{
	"node_modules",
	"vendor",
	"target",
	".bundle",
	"Pods",
	".build",
	"dist",
	"build",
	".next",
	".cache",
}

// Walker implements ports.RepoFinder by walking the local filesystem
type Walker struct {
	skip map[string]bool
}

// Verify interface compliance at compile time
var _ ports.RepoFinder = (*Walker)(nil)

// NewWalker creates a Walker pruning SkipDirs plus any extra directory names
func NewWalker(extraSkip ...string) *Walker {
	skip := make(map[string]bool, len(SkipDirs)+len(extraSkip))
	for _, name := range SkipDirs {
		skip[name] = true
	}
	for _, name := range extraSkip {
		skip[name] = true
	}
	return &Walker{skip: skip}
}

// FindRepos returns the absolute paths of repository roots below root, in no particular order.
// A symlinked root is followed; symlinks below it are not. Reported paths keep the
// root as given. Unreadable subtrees are skipped; the walk itself never fails.
func (w *Walker) FindRepos(ctx context.Context, root string) []string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		logging.Logger.Warn("Failed to resolve root path", "root", root, "error", err)
		absRoot = root
	}

	walkRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		logging.Logger.Debug("Failed to resolve root symlinks", "root", absRoot, "error", err)
		walkRoot = absRoot
	}

	var repos []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Permission denied, vanished entries: skip that branch of the walk
			logging.Logger.Debug("Skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		// Symlinks report as non-directories, so cycles are never followed
		if !d.IsDir() {
			return nil
		}

		if path != walkRoot && w.skip[d.Name()] {
			return fs.SkipDir
		}

		if d.Name() == metadataDir {
			// Reached only when the root itself is a .git directory
			return fs.SkipDir
		}

		if hasMetadata(path) {
			repos = append(repos, underRoot(absRoot, walkRoot, path))
			return fs.SkipDir
		}

		return nil
	})
	if err != nil {
		logging.Logger.Debug("Repository discovery stopped early", "root", absRoot, "error", err)
	}

	logging.Logger.Debug("Repository discovery finished", "root", absRoot, "repos", len(repos))
	return repos
}

// underRoot maps path, found below walkRoot, back under the root the caller asked for
func underRoot(absRoot, walkRoot, path string) string {
	if absRoot == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(absRoot, rel)
}

// hasMetadata reports whether dir directly contains a .git directory.
// Linked worktrees (.git file) share refs with their main repository and are not reported.
func hasMetadata(dir string) bool {
	info, err := os.Lstat(filepath.Join(dir, metadataDir))
	return err == nil && info.IsDir()
}
