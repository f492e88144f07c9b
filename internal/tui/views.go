package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/photovault/internal/tui/styles"
)

// screenHelp adapts a screen's bindings plus the global ones to help.KeyMap
type screenHelp struct {
	screen []key.Binding
	global []key.Binding
}

func (h screenHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, h.screen...), h.global...)
}

func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.screen, h.global}
}

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = styles.AccentStyle
	h.Styles.ShortDesc = styles.DimStyle
	h.Styles.ShortSeparator = styles.DimStyle
	h.Styles.FullKey = styles.AccentStyle
	h.Styles.FullDesc = styles.DimStyle
	h.Styles.FullSeparator = styles.DimStyle
	return h
}

func (m Model) keyHelp() screenHelp {
	global := []key.Binding{Keys.Help, Keys.Quit}
	if m.Router.Len() > 1 {
		global = append([]key.Binding{Keys.Back}, global...)
	}
	return screenHelp{
		screen: m.Router.Top().KeyBindings(),
		global: global,
	}
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	ctx := viewContext{
		Width:        m.Width,
		Height:       m.contentHeight(),
		SpinnerFrame: m.SpinnerFrame,
	}
	content := lipgloss.NewStyle().
		Width(m.Width).
		Height(ctx.Height).
		MaxHeight(ctx.Height).
		Render(m.Router.Top().View(ctx))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

// renderHeader shows the navigation stack as a breadcrumb
func (m Model) renderHeader() string {
	routes := m.Router.Routes()
	parts := make([]string, len(routes))
	for i, r := range routes {
		parts[i] = string(r)
	}
	crumbs := strings.Join(parts, " › ")

	title := "Photo Vault"
	line := title + styles.BreadcrumbStyle.Render("  "+crumbs)
	return styles.HeaderStyle.Width(m.Width).MaxWidth(m.Width).Render(line)
}

// renderFooter renders a single-line footer: status on the left, key hints
// on the right
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	} else if vs, ok := m.Router.Top().(*vaultScreen); ok {
		left = styles.DimStyle.Render(vs.StatusLine(m.SpinnerFrame))
	}

	h := m.help
	h.Width = max(0, m.Width-lipgloss.Width(left)-1)
	right := h.ShortHelpView(m.keyHelp().ShortHelp())

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.FooterStyle.MaxWidth(m.Width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the full key help centered on screen
func (m Model) renderHelp() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Keys"),
		"",
		m.help.FullHelpView(m.keyHelp().FullHelp()),
		"",
		styles.DimStyle.Render("Press ? or esc to return"),
	)
	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.CardStyle.Render(body))
}
