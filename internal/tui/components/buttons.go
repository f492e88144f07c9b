package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/photovault/internal/tui/styles"
)

// Buttons is a vertical stack of labelled buttons with one focused
type Buttons struct {
	labels  []string
	focused int
}

// NewButtons creates a button stack with the first button focused
func NewButtons(labels ...string) Buttons {
	return Buttons{labels: labels}
}

// Next moves focus down, wrapping around
func (b *Buttons) Next() {
	if len(b.labels) == 0 {
		return
	}
	b.focused = (b.focused + 1) % len(b.labels)
}

// Prev moves focus up, wrapping around
func (b *Buttons) Prev() {
	if len(b.labels) == 0 {
		return
	}
	b.focused = (b.focused - 1 + len(b.labels)) % len(b.labels)
}

// Focused returns the index of the focused button
func (b Buttons) Focused() int {
	return b.focused
}

// View renders the buttons centered in width
func (b Buttons) View(width int) string {
	rendered := make([]string, len(b.labels))
	for i, label := range b.labels {
		style := styles.ButtonStyle
		if i == b.focused {
			style = styles.ButtonFocusedStyle
		}
		rendered[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rendered...)
}
