package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mmcdole/photovault/internal/service"
	"github.com/mmcdole/photovault/internal/tui/components"
	"github.com/mmcdole/photovault/internal/tui/styles"
	"github.com/mmcdole/photovault/internal/vault"
)

// vaultScreen shows the paginated photo grid.
// Each mount gets a fresh pager and session id.
type vaultScreen struct {
	session string
	pager   *vault.Pager
	grid    components.PhotoGrid

	vaultSvc  *service.VaultService
	viewerSvc *service.ViewerService
	timeout   time.Duration
	logger    *slog.Logger
}

func newVaultScreen(cfg Config, vaultSvc *service.VaultService, viewerSvc *service.ViewerService, logger *slog.Logger) *vaultScreen {
	grid := components.NewGrid(cfg.GridColumns, cfg.EndThreshold)
	grid.SetFocused(true)

	session := uuid.NewString()
	return &vaultScreen{
		session:   session,
		pager:     vault.New(),
		grid:      grid,
		vaultSvc:  vaultSvc,
		viewerSvc: viewerSvc,
		timeout:   cfg.FetchTimeout,
		logger:    logger.With("session", session),
	}
}

func (v *vaultScreen) Route() Route { return RouteVault }

// Init starts loading the first page
func (v *vaultScreen) Init() tea.Cmd {
	return v.fetchNext()
}

// Capturing is true while the author filter is being typed
func (v *vaultScreen) Capturing() bool {
	return v.grid.IsFilterTyping()
}

func (v *vaultScreen) SetSize(width, height int) {
	v.grid.SetSize(width, height)
}

// fetchNext requests the next page unless one is already in flight
func (v *vaultScreen) fetchNext() tea.Cmd {
	page, ok := v.pager.FetchNext()
	if !ok {
		v.logger.Debug("fetch already in flight, ignoring", "next_page", v.pager.NextPage())
		return nil
	}
	v.logger.Debug("fetching next page", "page", page)
	return FetchPageCmd(v.vaultSvc, v.session, page, v.timeout)
}

// Session returns the id used to match fetch results to this mount
func (v *vaultScreen) Session() string {
	return v.session
}

// Pager exposes the pagination state
func (v *vaultScreen) Pager() *vault.Pager {
	return v.pager
}

func (v *vaultScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		v.pager.FetchSucceeded(msg.Photos, msg.Page)
		v.grid.SetPhotos(v.pager.Photos())
		v.logger.Debug("page applied", "page", msg.Page, "total", v.pager.Len(), "next_page", v.pager.NextPage())
		return v.grid.CheckEnd()

	case PageFailedMsg:
		v.pager.FetchFailed()
		v.logger.Warn("page failed", "page", msg.Page, "error", msg.Err, "shown", v.pager.Len())
		return nil

	case components.EndReachedMsg:
		return v.fetchNext()

	case tea.KeyMsg:
		if !v.grid.IsFilterTyping() && key.Matches(msg, Keys.Enter) {
			if photo, ok := v.grid.SelectedPhoto(); ok {
				return OpenPhotoCmd(v.viewerSvc, photo)
			}
			return nil
		}
		var cmd tea.Cmd
		v.grid, cmd = v.grid.Update(msg)
		return cmd
	}

	return nil
}

// HandleBack clears an applied filter before the screen is popped
func (v *vaultScreen) HandleBack() (bool, tea.Cmd) {
	if !v.grid.IsFiltering() {
		return false, nil
	}
	v.grid.ClearFilter()
	return true, v.grid.CheckEnd()
}

func (v *vaultScreen) View(ctx viewContext) string {
	switch v.pager.Display() {
	case vault.DisplayLoading:
		return lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				styles.TitleStyle.Render("Loading Vault"),
				"",
				styles.Spinner(ctx.SpinnerFrame),
			))

	case vault.DisplayFailed:
		return lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				styles.TitleStyle.Render("Vault Failed"),
				"",
				styles.ErrorStyle.Render("Failed to load photos!"),
			))
	}

	return v.grid.View()
}

// StatusLine describes the loaded range for the footer. Page failures
// after the first page show nothing.
func (v *vaultScreen) StatusLine(frame int) string {
	line := fmt.Sprintf("%d photos", v.pager.Len())
	if v.pager.Loading() && v.pager.Len() > 0 {
		line += " " + styles.Spinner(frame)
	}
	return line
}

func (v *vaultScreen) KeyBindings() []key.Binding {
	openKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	return append(v.grid.KeyBindings(), openKey)
}
