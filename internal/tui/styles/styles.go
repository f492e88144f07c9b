package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	VaultBlue  = lipgloss.Color("#1B2F8F")
	VaultSlate = lipgloss.Color("#5E69A0")
	Sky        = lipgloss.Color("#93C5FD")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// SpinnerFrames are the braille frames used for loading indicators
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner returns the spinner glyph for a tick count
func Spinner(frame int) string {
	return SpinnerStyle.Render(SpinnerFrames[frame%len(SpinnerFrames)])
}

// Screen chrome
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(VaultBlue).
			Bold(true).
			Padding(0, 1)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(Sky).
			Background(VaultBlue)

	FooterStyle = lipgloss.NewStyle().
			Foreground(LightGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	BodyStyle = lipgloss.NewStyle().
			Foreground(White)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Sky)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(Sky).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(VaultSlate).
			Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(VaultBlue).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Sky).
				Padding(0, 2)
)

// Grid cell styles
var (
	GridCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	GridCellSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Sky).
				Padding(0, 1)
)

// Card style for the picked image
var (
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(VaultSlate).
		Padding(1, 2)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(Sky)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Sky)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Sky).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Sky).
				Bold(true)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Pad pads a string with spaces to the given width
func Pad(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// HighlightMatches renders the runes at the given positions in the match style
func HighlightMatches(s string, positions []int, base lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(s)
	}

	hit := make(map[int]bool, len(positions))
	for _, p := range positions {
		hit[p] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if hit[i] {
			b.WriteString(MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
