package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/photovault/internal/picker"
	"github.com/mmcdole/photovault/internal/service"
	"github.com/mmcdole/photovault/internal/tui/components"
	"github.com/mmcdole/photovault/internal/tui/styles"
)

// uploadScreen lets the user pick a local image and previews its metadata.
// Nothing is transmitted.
type uploadScreen struct {
	buttons components.Buttons
	picker  components.ImagePicker

	// image is the last successful pick; nil until one is made
	image *picker.Asset

	viewerSvc *service.ViewerService
	logger    *slog.Logger
	width     int
	height    int
}

func newUploadScreen(cfg Config, viewerSvc *service.ViewerService, logger *slog.Logger) *uploadScreen {
	return &uploadScreen{
		buttons:   components.NewButtons("Upload image to Vault"),
		picker:    components.NewImagePicker(cfg.PickerDir, cfg.ShowHidden, cfg.PickerOptions),
		viewerSvc: viewerSvc,
		logger:    logger,
	}
}

func (u *uploadScreen) Route() Route { return RouteUpload }

func (u *uploadScreen) Init() tea.Cmd { return nil }

// Capturing is true while the picker is open so esc cancels the pick
// instead of leaving the screen.
func (u *uploadScreen) Capturing() bool {
	return u.picker.IsVisible()
}

func (u *uploadScreen) SetSize(width, height int) {
	u.width = width
	u.height = height
	u.picker.SetSize(width, height)
}

// Image returns the currently selected asset, if any
func (u *uploadScreen) Image() (picker.Asset, bool) {
	if u.image == nil {
		return picker.Asset{}, false
	}
	return *u.image, true
}

func (u *uploadScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.PickerSettledMsg:
		return u.settle(msg)

	case components.PickerRejectedMsg:
		u.logger.Debug("picker rejected file", "path", msg.Path)
		return statusCmd(fmt.Sprintf("%s is not an image or video", filepath.Base(msg.Path)), true)

	case tea.KeyMsg:
		if u.picker.IsVisible() {
			var cmd tea.Cmd
			u.picker, cmd = u.picker.Update(msg)
			return cmd
		}
		switch {
		case key.Matches(msg, Keys.Pick):
			u.logger.Debug("opening picker", "options", fmt.Sprintf("%+v", u.picker.Options()))
			cmd := u.picker.Open()
			u.picker.SetSize(u.width, u.height)
			return cmd
		case key.Matches(msg, Keys.Open):
			if u.image != nil {
				return OpenAssetCmd(u.viewerSvc, *u.image)
			}
		}
		return nil
	}

	// Directory listings and other picker internals
	if u.picker.IsVisible() {
		var cmd tea.Cmd
		u.picker, cmd = u.picker.Update(msg)
		return cmd
	}
	return nil
}

// settle applies a picker outcome. A cancel leaves the previous image.
func (u *uploadScreen) settle(msg components.PickerSettledMsg) tea.Cmd {
	if msg.Err != nil {
		u.logger.Warn("pick failed", "error", msg.Err)
		return statusCmd("Could not read image: "+msg.Err.Error(), true)
	}
	if msg.Result.Canceled || len(msg.Result.Assets) == 0 {
		u.logger.Debug("pick canceled")
		return nil
	}

	asset := msg.Result.Assets[0]
	u.image = &asset
	u.logger.Info("image picked", "uri", asset.URI, "type", asset.MediaType, "dimensions", asset.Dimensions())
	return nil
}

func (u *uploadScreen) View(ctx viewContext) string {
	if u.picker.IsVisible() {
		return lipgloss.NewStyle().Padding(0, 1).Render(u.picker.View())
	}

	parts := []string{
		styles.TitleStyle.Render("Upload to Vault"),
		"",
		u.buttons.View(min(ctx.Width, 60)),
		"",
	}
	if u.image != nil {
		parts = append(parts, u.renderAsset(*u.image, min(ctx.Width-4, 64)))
	} else {
		parts = append(parts, styles.DimStyle.Render("No image selected"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center, body)
}

func (u *uploadScreen) renderAsset(a picker.Asset, width int) string {
	inner := max(10, width-6)
	label := func(name, value string) string {
		return styles.DimStyle.Render(styles.Pad(name, 11)) + styles.BodyStyle.Render(styles.Truncate(value, inner-11))
	}

	lines := []string{
		styles.AccentStyle.Render(styles.Truncate(a.Name, inner)),
		"",
		label("uri", a.URI),
		label("type", string(a.MediaType)),
		label("size", humanize.IBytes(uint64(a.Size))),
	}
	if dims := a.Dimensions(); dims != "" {
		lines = append(lines, label("dimensions", dims))
	}
	if !a.Crop.Empty() {
		lines = append(lines, label("crop", fmt.Sprintf("%dx%d at (%d,%d)",
			a.Crop.Dx(), a.Crop.Dy(), a.Crop.Min.X, a.Crop.Min.Y)))
	}
	lines = append(lines, "", styles.DimStyle.Render("o open in viewer"))

	return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (u *uploadScreen) KeyBindings() []key.Binding {
	if u.picker.IsVisible() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	bindings := []key.Binding{Keys.Pick}
	if u.image != nil {
		bindings = append(bindings, Keys.Open)
	}
	return bindings
}

func statusCmd(message string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: message, IsError: isError}
	}
}
