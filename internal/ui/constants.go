// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TitleHeight is the height of the viewer panel title line
	TitleHeight = 1

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 8

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Menu dimensions
const (
	// MenuMinWidth is the smallest inner width of the document menu
	MenuMinWidth = 24

	// MenuMaxWidth caps the inner width; longer names are truncated
	MenuMaxWidth = 48

	// MenuQuickSelectMax is the number of entries reachable with the digit keys
	MenuQuickSelectMax = 9
)
