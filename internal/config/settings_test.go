package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(HomeEnv, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))
	return home
}

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_PartialFile(t *testing.T) {
	writeSettings(t, `{"author": "Jane Doe", "period": "week"}`)

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", settings.Author)
	assert.Equal(t, "week", settings.Period)
	assert.Empty(t, settings.Path)
	assert.Nil(t, settings.ShowOrigin)
	assert.Nil(t, settings.Color)
}

func TestLoadSettings_FullFile(t *testing.T) {
	writeSettings(t, `{
		"author": "Jane Doe",
		"color": false,
		"debug": true,
		"depth": "branches",
		"git_timeout_seconds": 5,
		"max_log_files": 3,
		"path": "/src",
		"period": "7d",
		"show_origin": true,
		"workers": 2
	}`)

	settings, err := LoadSettings()

	require.NoError(t, err)
	require.NotNil(t, settings.Color)
	assert.False(t, *settings.Color)
	require.NotNil(t, settings.ShowOrigin)
	assert.True(t, *settings.ShowOrigin)
	assert.Equal(t, DepthBranches, settings.Depth)
	assert.Equal(t, 5, *settings.GitTimeoutSeconds)
	assert.Equal(t, 3, *settings.MaxLogFiles)
	assert.Equal(t, 2, *settings.Workers)
	assert.Equal(t, "/src", settings.Path)
}

func TestLoadSettings_ExpandsHomeInPath(t *testing.T) {
	writeSettings(t, `{"path": "~/code"}`)
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "code"), settings.Path)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"malformed json", `{"author":`, "invalid settings.json"},
		{"wrong type", `{"workers": "many"}`, "invalid settings.json"},
		{"unknown depth", `{"depth": "files"}`, "invalid depth"},
		{"negative timeout", `{"git_timeout_seconds": -1}`, "git_timeout_seconds"},
		{"negative workers", `{"workers": -2}`, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeSettings(t, tt.content)

			settings, err := LoadSettings()

			require.Error(t, err)
			assert.Nil(t, settings)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetSettingsPath(t *testing.T) {
	t.Run("honors DEVCAP_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(HomeEnv, home)
		assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	})

	t.Run("defaults to ~/.devcap", func(t *testing.T) {
		t.Setenv(HomeEnv, "")
		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(homeDir, ".devcap", "settings.json"), GetSettingsPath())
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "src"), ExpandPath("~/src"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 10)
	assert.Equal(t, "week", example["period"])
	assert.Equal(t, DepthCommits, example["depth"])
	assert.Equal(t, true, example["show_origin"])

	// The example must load back as valid settings
	data, err := json.Marshal(example)
	require.NoError(t, err)
	writeSettings(t, string(data))

	_, err = LoadSettings()
	assert.NoError(t, err)
}
