package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/photovault/internal/picker"
	"github.com/mmcdole/photovault/internal/tui/styles"
)

// PickerSettledMsg reports the outcome of a picker session
type PickerSettledMsg struct {
	Result picker.Result
	Err    error
}

// PickerRejectedMsg reports a highlighted file outside the allowed media types
type PickerRejectedMsg struct {
	Path string
}

// ImagePicker is a modal file chooser restricted to media files
type ImagePicker struct {
	visible bool
	opts    picker.Options
	fp      filepicker.Model
	width   int
	height  int
}

// NewImagePicker creates a picker rooted at startDir
func NewImagePicker(startDir string, showHidden bool, opts picker.Options) ImagePicker {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.AllowedTypes = picker.AllowedExtensions(opts.MediaTypes)
	fp.ShowHidden = showHidden
	fp.ShowPermissions = false
	fp.AutoHeight = true
	fp.Styles.Cursor = styles.AccentStyle
	fp.Styles.Selected = styles.AccentStyle.Bold(true)
	fp.Styles.Directory = styles.SubtitleStyle
	fp.Styles.DisabledFile = styles.DimStyle

	return ImagePicker{
		opts: opts,
		fp:   fp,
	}
}

// Open shows the picker and reads the current directory
func (p *ImagePicker) Open() tea.Cmd {
	p.visible = true
	return p.fp.Init()
}

// IsVisible returns whether the picker is shown
func (p ImagePicker) IsVisible() bool {
	return p.visible
}

// Options returns the picker options
func (p ImagePicker) Options() picker.Options {
	return p.opts
}

// SetSize updates the component dimensions
func (p *ImagePicker) SetSize(width, height int) {
	p.width = width
	p.height = height
	// Reserve the title and hint lines
	p.fp, _ = p.fp.Update(tea.WindowSizeMsg{Width: width, Height: max(1, height-4)})
}

// Update handles messages while the picker is visible
func (p ImagePicker) Update(msg tea.Msg) (ImagePicker, tea.Cmd) {
	if !p.visible {
		return p, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			p.visible = false
			return p, func() tea.Msg {
				return PickerSettledMsg{Result: picker.Result{Canceled: true}}
			}
		}
	}

	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)

	if ok, path := p.fp.DidSelectFile(msg); ok {
		p.visible = false
		return p, InspectAssetCmd(path, p.opts)
	}

	if ok, path := p.fp.DidSelectDisabledFile(msg); ok {
		return p, tea.Batch(cmd, func() tea.Msg {
			return PickerRejectedMsg{Path: path}
		})
	}

	return p, cmd
}

// InspectAssetCmd describes a picked file off the UI loop
func InspectAssetCmd(path string, opts picker.Options) tea.Cmd {
	return func() tea.Msg {
		asset, err := picker.Inspect(path, opts)
		if err != nil {
			return PickerSettledMsg{Err: err}
		}
		return PickerSettledMsg{Result: picker.Result{Assets: []picker.Asset{asset}}}
	}
}

// View renders the picker
func (p ImagePicker) View() string {
	if !p.visible {
		return ""
	}

	title := styles.TitleStyle.Render("Select an image or video")
	dir := styles.DimStyle.Render(styles.Truncate(p.fp.CurrentDirectory, max(10, p.width-4)))
	hintText := "enter select · esc cancel"
	if p.opts.AllowsEditing {
		hintText += fmt.Sprintf(" · crop %d:%d", p.opts.Aspect[0], p.opts.Aspect[1])
	}
	hint := styles.DimStyle.Render(hintText)

	return lipgloss.JoinVertical(lipgloss.Left, title, dir, p.fp.View(), hint)
}
