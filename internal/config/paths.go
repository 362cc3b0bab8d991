package config

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the directory holding settings.json
const HomeEnv = "DEVCAP_HOME"

// GetDevcapHome returns DEVCAP_HOME or ~/.devcap default
func GetDevcapHome() string {
	devcapHome := os.Getenv(HomeEnv)
	if devcapHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".devcap"
		}
		return filepath.Join(homeDir, ".devcap")
	}
	return ExpandPath(devcapHome)
}

// GetSettingsPath returns $DEVCAP_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetDevcapHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
