package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/photovault/internal/tui/components"
	"github.com/mmcdole/photovault/internal/tui/styles"
)

const cameraArt = `
   .-------------.
   |  [_]   ( )  |
   |    .---.    |
   |   ( (o) )   |
   |    '---'    |
   '-------------'`

// homeScreen is the welcome page with links to the other routes
type homeScreen struct {
	buttons components.Buttons
	targets []Route
	width   int
	height  int
}

func newHomeScreen() *homeScreen {
	return &homeScreen{
		buttons: components.NewButtons("Vault", "Upload to Vault"),
		targets: []Route{RouteVault, RouteUpload},
	}
}

func (h *homeScreen) Route() Route { return RouteHome }

func (h *homeScreen) Init() tea.Cmd { return nil }

func (h *homeScreen) Capturing() bool { return false }

func (h *homeScreen) SetSize(width, height int) {
	h.width = width
	h.height = height
}

func (h *homeScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, Keys.Up):
		h.buttons.Prev()
	case key.Matches(keyMsg, Keys.Down):
		h.buttons.Next()
	case key.Matches(keyMsg, Keys.Enter):
		return NavigateCmd(h.targets[h.buttons.Focused()])
	case key.Matches(keyMsg, Keys.Vault):
		return NavigateCmd(RouteVault)
	case key.Matches(keyMsg, Keys.Upload):
		return NavigateCmd(RouteUpload)
	}
	return nil
}

func (h *homeScreen) View(ctx viewContext) string {
	welcome := lipgloss.NewStyle().
		Width(min(ctx.Width, 60)).
		Align(lipgloss.Center).
		Render(styles.BodyStyle.Render("Welcome back to Photo Vault! Your photos are still safe and sound in the cloud."))

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render("Welcome to Photo Vault!"),
		styles.AccentStyle.Render(strings.TrimPrefix(cameraArt, "\n")),
		"",
		welcome,
		"",
		h.buttons.View(min(ctx.Width, 60)),
	)

	return lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center, body)
}

func (h *homeScreen) KeyBindings() []key.Binding {
	return []key.Binding{Keys.Up, Keys.Down, Keys.Enter, Keys.Vault, Keys.Upload}
}
