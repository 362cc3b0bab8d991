// Package logging holds devcap's process-wide debug logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles bounds the per-run log files kept in the state directory
const DefaultMaxLogFiles = 100

// Logger is silent until Initialize turns on --debug or --debug-file.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize points Logger at a JSON log file.
// With debugFile set that exact file is appended to; with only debug set each run
// gets a fresh uuid-named file under StateDir, pruned to maxLogFiles (0 keeps all).
// It returns the file in use, or "" when logging stays off.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	path, err := logFilePath(debugFile, maxLogFiles)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("devcap debug log opened", "log_file", path)
	return path, nil
}

func logFilePath(debugFile string, maxLogFiles int) (string, error) {
	if debugFile != "" {
		if err := os.MkdirAll(filepath.Dir(debugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return debugFile, nil
	}

	dir, err := StateDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate state directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if maxLogFiles > 0 {
		// A failed prune still leaves a usable log
		if err := pruneLogs(dir, maxLogFiles-1); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not prune old logs: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// pruneLogs deletes the oldest *.log files in dir until at most keep remain
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logEntry struct {
		path    string
		modTime time.Time
	}
	var logs []logEntry
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logEntry{path: filepath.Join(dir, e.Name()), modTime: info.ModTime()})
	}

	if len(logs) <= keep {
		return nil
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].modTime.Before(logs[j].modTime) })
	for _, l := range logs[:len(logs)-keep] {
		if err := os.Remove(l.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not delete log %s: %v\n", l.path, err)
		}
	}
	return nil
}

// StateDir is where devcap keeps per-run debug logs on this OS
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "devcap"), nil
	case "linux":
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, "devcap"), nil
		}
		return filepath.Join(home, ".local", "state", "devcap"), nil
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "devcap", "logs"), nil
		}
		return filepath.Join(home, "AppData", "Local", "devcap", "logs"), nil
	default:
		return filepath.Join(home, ".devcap", "logs"), nil
	}
}
