package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deltawerks/starprint/internal/adapters/download"
	"github.com/Deltawerks/starprint/internal/adapters/preview"
	"github.com/Deltawerks/starprint/internal/adapters/tui/views"
	"github.com/Deltawerks/starprint/internal/domain"
	"github.com/Deltawerks/starprint/internal/ports"
)

// ViewState represents the current screen
type ViewState int

const (
	ViewSetup ViewState = iota
	ViewBrowser
)

// statusMsg carries the startup status query result.
type statusMsg struct {
	status domain.SessionStatus
	err    error
}

// App is the main TUI application model. It bootstraps the session: one
// status query routes to the setup flow or straight into browsing.
type App struct {
	backend ports.Backend

	state   ViewState
	setup   *views.SetupModel
	browser *views.BrowserModel

	width  int
	height int
}

// NewApp creates the TUI application.
func NewApp(backend ports.Backend, session *domain.Session, saver *download.Saver, opener *preview.Opener, serverURL string) *App {
	return &App{
		backend: backend,
		state:   ViewSetup,
		setup:   views.NewSetupModel(backend),
		browser: views.NewBrowserModel(backend, session, saver, opener, serverURL),
	}
}

// Init issues the one-time status query.
func (a *App) Init() tea.Cmd {
	backend := a.backend
	return tea.Batch(
		a.setup.Init(),
		func() tea.Msg {
			status, err := backend.Status(context.Background())
			return statusMsg{status: status, err: err}
		},
	)
}

// Update handles messages for the application.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.setup.SetSize(msg.Width, msg.Height)
		a.browser.SetSize(msg.Width, msg.Height)
		return a, nil

	case statusMsg:
		// Any failure leaves the user on the retryable setup screen.
		if msg.err == nil && msg.status.Configured {
			a.state = ViewBrowser
			return a, a.browser.Init()
		}
		a.state = ViewSetup
		return a, nil

	case views.SetupDoneMsg:
		a.state = ViewBrowser
		return a, a.browser.Init()
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewSetup:
		_, cmd = a.setup.Update(msg)
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	}
	return a, cmd
}

// View renders the current screen.
func (a *App) View() string {
	if a.state == ViewSetup {
		return a.setup.View()
	}
	return a.browser.View()
}
