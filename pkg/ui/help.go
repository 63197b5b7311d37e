package ui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# rsx preview

Inspect how design values scale across simulated devices.

## Keys

| Key | Action |
|-----|--------|
| enter | apply the selected profile |
| r | rotate the device |
| f | cycle the accessibility font scale |
| c | copy the metrics summary to the clipboard |
| / | filter profiles |
| ? | toggle this help |
| q | quit |

## Reading the table

Each sample row runs one design value through every scaling function:
s (scale), vs (vertical), ms (moderate), fs (font), lh (line height),
ic (icon), st (tablet scale).
`

// renderHelp renders the help overlay with glamour, falling back to the
// raw markdown if the renderer cannot be built.
func renderHelp(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(min(width, 80)),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
