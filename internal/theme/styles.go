package theme

import "github.com/charmbracelet/lipgloss"

// Styles groups every style bound to one renderer, so colour can be forced on
// or off per output stream
type Styles struct {
	Branch        lipgloss.Style
	BranchMarker  lipgloss.Style
	Error         lipgloss.Style
	Muted         lipgloss.Style
	Project       lipgloss.Style
	ProjectMarker lipgloss.Style
	Spinner       lipgloss.Style
	Title         lipgloss.Style
	Warning       lipgloss.Style

	commitTypes map[string]lipgloss.Style
}

// NewStyles builds the style set for r
func NewStyles(r *lipgloss.Renderer) *Styles {
	muted := r.NewStyle().Foreground(ColorMuted)
	testStyle := r.NewStyle().Foreground(ColorTypeTest)

	return &Styles{
		Branch: r.NewStyle().
			Foreground(ColorBranch),
		BranchMarker: r.NewStyle().
			Foreground(ColorBranch),
		Error: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Muted: muted,
		Project: r.NewStyle().
			Foreground(ColorProject).
			Bold(true),
		ProjectMarker: r.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),
		Spinner: r.NewStyle().
			Foreground(ColorSpinner),
		Title: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(ColorWarning),

		commitTypes: map[string]lipgloss.Style{
			"build":    muted,
			"chore":    muted,
			"ci":       muted,
			"docs":     r.NewStyle().Foreground(ColorTypeDocs),
			"feat":     r.NewStyle().Foreground(ColorTypeFeat).Bold(true),
			"fix":      r.NewStyle().Foreground(ColorTypeFix).Bold(true),
			"perf":     muted,
			"refactor": r.NewStyle().Foreground(ColorTypeRefactor),
			"style":    testStyle,
			"test":     testStyle,
		},
	}
}

// CommitType renders a conventional-commit type tag; unknown types are returned unstyled
func (s *Styles) CommitType(commitType string) string {
	style, ok := s.commitTypes[commitType]
	if !ok {
		return commitType
	}
	return style.Render(commitType)
}

// Default is bound to lipgloss' default renderer (stdout, auto-detected profile)
var Default = NewStyles(lipgloss.DefaultRenderer())
