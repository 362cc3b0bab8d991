package output

import (
	"encoding/json"
	"fmt"
	"io"

	"devcap/internal/domain"
)

// JSON writes projects as an indented JSON array; no projects is "[]"
func JSON(w io.Writer, projects []domain.ProjectLog) error {
	if projects == nil {
		projects = []domain.ProjectLog{}
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
