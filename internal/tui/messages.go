package tui

import (
	"github.com/mmcdole/photovault/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// NavigateMsg pushes a route onto the navigation stack
type NavigateMsg struct {
	Route Route
}

// NavigateBackMsg pops the current route
type NavigateBackMsg struct{}

// PageLoadedMsg signals a page of photos was fetched for a vault session
type PageLoadedMsg struct {
	Session string
	Page    int
	Photos  []domain.Photo
}

// PageFailedMsg signals a page fetch failed for a vault session
type PageFailedMsg struct {
	Session string
	Page    int
	Err     error
}

// ViewerOpenedMsg signals a photo or file was handed to the external viewer
type ViewerOpenedMsg struct {
	Target string
}

// TickMsg drives spinner animation
type TickMsg struct{}

// ClearStatusMsg clears the status bar message if it is still the one
// identified by Seq
type ClearStatusMsg struct {
	Seq int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
