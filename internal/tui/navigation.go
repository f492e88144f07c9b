package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Route names a screen
type Route string

const (
	RouteHome   Route = "Main Page"
	RouteVault  Route = "Vault"
	RouteUpload Route = "Upload Vault"
)

// screen is a single page on the navigation stack
type screen interface {
	Route() Route
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(ctx viewContext) string
	SetSize(width, height int)

	// Capturing reports whether the screen wants every key, including
	// the ones that would normally navigate back.
	Capturing() bool

	KeyBindings() []key.Binding
}

// viewContext carries shared render state to screens
type viewContext struct {
	Width        int
	Height       int
	SpinnerFrame int
}

// Router is a stack of screens. The bottom screen is never popped.
type Router struct {
	screens []screen
}

// NewRouter creates a router with root as the initial screen
func NewRouter(root screen) *Router {
	return &Router{screens: []screen{root}}
}

// Len returns the stack depth
func (r *Router) Len() int {
	return len(r.screens)
}

// Top returns the current screen
func (r *Router) Top() screen {
	if len(r.screens) == 0 {
		return nil
	}
	return r.screens[len(r.screens)-1]
}

// Push adds a screen on top
func (r *Router) Push(s screen) {
	r.screens = append(r.screens, s)
}

// Pop removes the top screen. Returns nil at the root.
func (r *Router) Pop() screen {
	if len(r.screens) <= 1 {
		return nil
	}
	popped := r.screens[len(r.screens)-1]
	r.screens = r.screens[:len(r.screens)-1]
	return popped
}

// Routes returns the route names from bottom to top
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.screens))
	for i, s := range r.screens {
		routes[i] = s.Route()
	}
	return routes
}

// Each calls fn for every screen from bottom to top
func (r *Router) Each(fn func(screen)) {
	for _, s := range r.screens {
		fn(s)
	}
}
