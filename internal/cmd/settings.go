package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"

	"devcap/internal/config"
)

// SettingsCmd inspects settings
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Print an example settings.json" default:"1"`
	Path    SettingsPathCmd    `cmd:"path" help:"Print the settings file location"`
}

// SettingsExampleCmd prints every available setting with an example value
type SettingsExampleCmd struct {
	Format string `help:"Output format: json or table" enum:"json,table" default:"json"`
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	example := config.GetSettingsExample()

	if s.Format == "json" {
		data, err := json.MarshalIndent(example, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("Settings file: %s\n\n", config.GetSettingsPath())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Example"})
	for _, key := range keys {
		data, _ := json.Marshal(example[key])
		table.Append([]string{key, string(data)})
	}
	table.Render()

	fmt.Println()
	fmt.Println("All settings are optional; command-line flags and DEVCAP_* variables take precedence.")
	return nil
}

// SettingsPathCmd prints the settings file path
type SettingsPathCmd struct{}

// Run executes the path command
func (s *SettingsPathCmd) Run(cli *CLI) error {
	fmt.Println(config.GetSettingsPath())
	return nil
}
