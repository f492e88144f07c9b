package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/photovault/internal/picker"
	"github.com/mmcdole/photovault/internal/service"
)

const (
	spinnerInterval = 100 * time.Millisecond
	statusTimeout   = 3 * time.Second
	errorTimeout    = 5 * time.Second
)

// Config holds the UI settings screens are built from
type Config struct {
	GridColumns   int
	EndThreshold  int
	FetchTimeout  time.Duration
	PickerDir     string
	ShowHidden    bool
	PickerOptions picker.Options
}

// backHandler is implemented by screens that consume the back key
// before the router pops them.
type backHandler interface {
	HandleBack() (bool, tea.Cmd)
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	// Services
	VaultSvc  *service.VaultService
	ViewerSvc *service.ViewerService

	Router *Router
	cfg    Config

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	statusSeq    int // bumped per status so older clears are ignored
	ShowHelp     bool
	SpinnerFrame int
	help         help.Model

	logger *slog.Logger
}

// NewModel creates a new application model rooted at the home screen
func NewModel(vaultSvc *service.VaultService, viewerSvc *service.ViewerService, cfg Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}

	return Model{
		VaultSvc:  vaultSvc,
		ViewerSvc: viewerSvc,
		Router:    NewRouter(newHomeScreen()),
		cfg:       cfg,
		help:      newHelp(),
		logger:    logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Router.Top().Init(),
		TickCmd(spinnerInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(spinnerInterval)

	case NavigateMsg:
		return m.navigate(msg.Route)

	case NavigateBackMsg:
		return m.back()

	case PageLoadedMsg:
		return m, m.routeToSession(msg.Session, msg)

	case PageFailedMsg:
		return m, m.routeToSession(msg.Session, msg)

	case ViewerOpenedMsg:
		cmd := m.setStatus("Opened "+msg.Target, false, statusTimeout)
		return m, cmd

	case ErrMsg:
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		cmd := m.setStatus(msg.Error(), true, errorTimeout)
		return m, cmd

	case StatusMsg:
		cmd := m.setStatus(msg.Message, msg.IsError, statusTimeout)
		return m, cmd

	case ClearStatusMsg:
		if msg.Seq != m.statusSeq {
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Picker results and component internals go to the current screen
	return m, m.Router.Top().Update(msg)
}

// setStatus shows a footer message and schedules its clear
func (m *Model) setStatus(text string, isErr bool, timeout time.Duration) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(timeout, m.statusSeq)
}

// navigate pushes a freshly mounted screen for route
func (m Model) navigate(route Route) (tea.Model, tea.Cmd) {
	var s screen
	switch route {
	case RouteVault:
		s = newVaultScreen(m.cfg, m.VaultSvc, m.ViewerSvc, m.logger)
	case RouteUpload:
		s = newUploadScreen(m.cfg, m.ViewerSvc, m.logger)
	case RouteHome:
		s = newHomeScreen()
	default:
		m.logger.Warn("unknown route", "route", route)
		return m, nil
	}

	m.logger.Debug("navigate", "route", route, "depth", m.Router.Len()+1)
	m.Router.Push(s)
	m.ShowHelp = false
	m.updateLayout()
	return m, s.Init()
}

// back pops the current screen. The root screen stays.
func (m Model) back() (tea.Model, tea.Cmd) {
	popped := m.Router.Pop()
	if popped == nil {
		return m, nil
	}
	m.logger.Debug("navigate back", "from", popped.Route(), "to", m.Router.Top().Route())
	m.ShowHelp = false
	return m, nil
}

// routeToSession delivers a fetch result to the vault screen that issued
// it. Results for an unmounted screen are dropped.
func (m Model) routeToSession(session string, msg tea.Msg) tea.Cmd {
	var target *vaultScreen
	m.Router.Each(func(s screen) {
		if vs, ok := s.(*vaultScreen); ok && vs.Session() == session {
			target = vs
		}
	})
	if target == nil {
		m.logger.Debug("dropping result for unmounted vault", "session", session)
		return nil
	}
	return target.Update(msg)
}
