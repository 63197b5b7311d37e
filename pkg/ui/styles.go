package ui

import "github.com/charmbracelet/lipgloss"

// Dracula-leaning palette shared across the preview UI.
var (
	ColorBg        = lipgloss.Color("#282A36")
	ColorBgSubtle  = lipgloss.Color("#363949")
	ColorText      = lipgloss.Color("#F8F8F2")
	ColorSubtext   = lipgloss.Color("#BFBFBF")
	ColorMuted     = lipgloss.Color("#6272A4")
	ColorPrimary   = lipgloss.Color("#BD93F9")
	ColorInfo      = lipgloss.Color("#8BE9FD")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorWarning   = lipgloss.Color("#FFB86C")
	ColorDanger    = lipgloss.Color("#FF5555")
	ColorHighlight = lipgloss.Color("#FF79C6")
)

// Panel styles for the two-pane layout.
var (
	// PanelStyle is the default style for unfocused panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#44475A"))

	// FocusedPanelStyle is the style for focused panels
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Background(ColorBgSubtle).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)

// Badge renders a small colored tag, used for the device category.
func Badge(text string, fg, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1).
		Render(text)
}

// Layout breakpoints for the preview's own responsiveness (terminal cells).
const (
	// BreakpointNarrow is the width below which the list pane is hidden.
	BreakpointNarrow = 80

	// ListPaneWidth is the fixed width of the profile list pane.
	ListPaneWidth = 32

	// MinContentHeight is the minimum height for the metrics pane.
	MinContentHeight = 10
)
