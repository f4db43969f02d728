package browse

import "github.com/charmbracelet/lipgloss"

// Browser styles. The palette matches the render package so the
// interactive and plain surfaces look related.
var (
	colorPurple = lipgloss.Color("#A855F7")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorYellow = lipgloss.Color("#EAB308")
	colorDim    = lipgloss.Color("#6B7280")
	colorWhite  = lipgloss.Color("#F9FAFB")

	// Header and breadcrumb.
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	crumbStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	countStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// List rows.
	cursorStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	rowSlugStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Footer.
	statusStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
