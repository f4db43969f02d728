package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngrules/ngrules/internal/catalog"
)

// Theme holds all output styles and colors. Keeping them centralised
// makes it straightforward to add dark/light mode support later.
var (
	// Colors.
	colorRed    = lipgloss.Color("#EF4444")
	colorOrange = lipgloss.Color("#FF6A00")
	colorYellow = lipgloss.Color("#EAB308")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorGreen  = lipgloss.Color("#22C55E")
	colorPurple = lipgloss.Color("#A855F7")
	colorDim    = lipgloss.Color("#6B7280")
	colorWhite  = lipgloss.Color("#F9FAFB")

	// Rule display.
	slugStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Category display.
	categoryStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Problem display.
	problemStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// Impact badges, one style per rating.
	impactStyles = map[catalog.Impact]lipgloss.Style{
		catalog.ImpactCritical:   lipgloss.NewStyle().Foreground(colorRed).Bold(true),
		catalog.ImpactHigh:       lipgloss.NewStyle().Foreground(colorOrange).Bold(true),
		catalog.ImpactMediumHigh: lipgloss.NewStyle().Foreground(colorYellow),
		catalog.ImpactMedium:     lipgloss.NewStyle().Foreground(colorCyan),
		catalog.ImpactLow:        lipgloss.NewStyle().Foreground(colorGreen),
	}

	unknownImpactStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// ImpactStyle returns the badge style for an impact rating. Exported so
// the interactive browser colours impacts the same way the CLI does.
func ImpactStyle(impact catalog.Impact) lipgloss.Style {
	if s, ok := impactStyles[impact]; ok {
		return s
	}
	return unknownImpactStyle
}
