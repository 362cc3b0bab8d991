package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Depth values accepted by the depth setting and --depth flag
const (
	DepthBranches = "branches"
	DepthCommits  = "commits"
	DepthProjects = "projects"
)

// Depths lists every accepted depth, in drill-down order
var Depths = []string{DepthProjects, DepthBranches, DepthCommits}

// Settings represents the structure of $DEVCAP_HOME/settings.json.
// Pointer fields distinguish "unset" from the zero value.
type Settings struct {
	Author            string `json:"author,omitempty"`
	Color             *bool  `json:"color,omitempty"`
	Debug             *bool  `json:"debug,omitempty"`
	Depth             string `json:"depth,omitempty"`
	GitTimeoutSeconds *int   `json:"git_timeout_seconds,omitempty"`
	MaxLogFiles       *int   `json:"max_log_files,omitempty"`
	Path              string `json:"path,omitempty"`
	Period            string `json:"period,omitempty"`
	ShowOrigin        *bool  `json:"show_origin,omitempty"`
	Workers           *int   `json:"workers,omitempty"`
}

// Validate checks values that JSON decoding cannot
func (s *Settings) Validate() error {
	if s.Depth != "" && !slices.Contains(Depths, s.Depth) {
		return fmt.Errorf("invalid depth %q (use one of: projects, branches, commits)", s.Depth)
	}
	if s.GitTimeoutSeconds != nil && *s.GitTimeoutSeconds < 0 {
		return fmt.Errorf("git_timeout_seconds must not be negative, got %d", *s.GitTimeoutSeconds)
	}
	if s.Workers != nil && *s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", *s.Workers)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// LoadSettings loads settings from $DEVCAP_HOME/settings.json (or ~/.devcap/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.Path != "" {
		settings.Path = ExpandPath(settings.Path)
	}

	return &settings, nil
}
