package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - project markers
)

// Report tree colors
const (
	ColorBranch  Color = "2"   // Green - branch names and markers
	ColorProject Color = "255" // White - project names
)

// Commit type colors
const (
	ColorTypeDocs     Color = "4" // Blue
	ColorTypeFeat     Color = "2" // Green
	ColorTypeFix      Color = "1" // Red
	ColorTypeRefactor Color = "6" // Cyan
	ColorTypeTest     Color = "3" // Yellow - test, style
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - hashes, relative times, summaries
	ColorNormal    Color = "250" // Default text
	ColorSpinner   Color = "205" // Pink
	ColorWarning   Color = "214" // Orange
)
