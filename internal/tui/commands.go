package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/photovault/internal/domain"
	"github.com/mmcdole/photovault/internal/picker"
	"github.com/mmcdole/photovault/internal/service"
)

// Command factories for async operations

// FetchPageCmd fetches one page for a vault session
func FetchPageCmd(svc *service.VaultService, session string, page int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		photos, err := svc.FetchPage(ctx, page)
		if err != nil {
			return PageFailedMsg{Session: session, Page: page, Err: err}
		}
		return PageLoadedMsg{Session: session, Page: page, Photos: photos}
	}
}

// OpenPhotoCmd opens a remote photo in the external viewer
func OpenPhotoCmd(svc *service.ViewerService, photo domain.Photo) tea.Cmd {
	return func() tea.Msg {
		if err := svc.ViewPhoto(photo); err != nil {
			return ErrMsg{Err: err, Context: "opening photo"}
		}
		return ViewerOpenedMsg{Target: "#" + photo.ID}
	}
}

// OpenAssetCmd opens a picked file in the external viewer
func OpenAssetCmd(svc *service.ViewerService, asset picker.Asset) tea.Cmd {
	return func() tea.Msg {
		if err := svc.ViewAsset(asset); err != nil {
			return ErrMsg{Err: err, Context: "opening image"}
		}
		return ViewerOpenedMsg{Target: asset.Name}
	}
}

// NavigateCmd returns a command that pushes route
func NavigateCmd(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status seq after a delay
func ClearStatusCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
