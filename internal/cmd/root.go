package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"devcap/internal/config"
	"devcap/internal/logging"
)

const defaultMaxLogFiles = logging.DefaultMaxLogFiles

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"DEVCAP_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"DEVCAP_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100" env:"DEVCAP_MAX_LOG_FILES"`

	Report   ReportCmd   `cmd:"" help:"Show your commits across local repositories (default)" default:"withargs"`
	Settings SettingsCmd `cmd:"settings" help:"Inspect the settings file"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == defaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DEVCAP_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DEVCAP_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Debug logging enabled", "file", logFilePath)
	}

	// Create container AFTER logging is initialized so adapters log to the right place
	c.Container = NewContainer(c.gitTimeout())

	return nil
}

// gitTimeout resolves the per-command git timeout: flag/env, then settings, then default
func (c *CLI) gitTimeout() time.Duration {
	if c.Report.GitTimeout > 0 {
		return c.Report.GitTimeout
	}
	if c.settings != nil && c.settings.GitTimeoutSeconds != nil && *c.settings.GitTimeoutSeconds > 0 {
		return time.Duration(*c.settings.GitTimeoutSeconds) * time.Second
	}
	return defaultGitTimeout
}

// requireContainer guards commands against a CLI that skipped AfterApply
func (c *CLI) requireContainer() error {
	if c.Container == nil {
		return fmt.Errorf("application not initialized")
	}
	return nil
}
