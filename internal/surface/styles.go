package surface

import "charm.land/lipgloss/v2"

// Document colours are the surface's own and never follow the host theme,
// so a theme switch in the dashboard cannot restyle a document.
var (
	docLinkColor  = lipgloss.Color("#0EA5E9")
	docCodeColor  = lipgloss.Color("#F59E0B")
	docMutedColor = lipgloss.Color("#6B7280")
	docErrorColor = lipgloss.Color("#EF4444")
)

var (
	docHeadingStyles = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6")),
		lipgloss.NewStyle().Bold(true),
	}

	docMutedStyle = lipgloss.NewStyle().Foreground(docMutedColor)
	docCodeStyle  = lipgloss.NewStyle().Foreground(docCodeColor)
	docErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(docErrorColor)
)

func headingStyle(level int) lipgloss.Style {
	if level < 1 {
		level = 1
	}
	if level > len(docHeadingStyles) {
		level = len(docHeadingStyles)
	}
	return docHeadingStyles[level-1]
}
