package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deltawerks/starprint/internal/adapters/tui/styles"
	"github.com/Deltawerks/starprint/internal/ports"
)

// SetupDoneMsg tells the app the service accepted a game data path.
type SetupDoneMsg struct{}

type setPathResultMsg struct {
	err error
}

// SetupModel is the first-run screen: it submits the game data folder to
// the service and stays retryable on every failure.
type SetupModel struct {
	ViewState
	backend ports.Backend

	input   textinput.Model
	spinner spinner.Model
	busy    bool
	errText string
}

// NewSetupModel creates the setup screen model.
func NewSetupModel(backend ports.Backend) *SetupModel {
	input := textinput.New()
	input.Placeholder = "/path/to/StarCitizen/LIVE"
	input.Prompt = "Game data folder: "
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &SetupModel{
		backend: backend,
		input:   input,
		spinner: s,
	}
}

// Init initializes the setup screen.
func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the setup screen.
func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case setPathResultMsg:
		m.busy = false
		if msg.err != nil {
			// Re-armed for retry; never fatal.
			m.errText = ports.UserMessage(msg.err, "Failed to load game data — is the server running?")
			return m, nil
		}
		m.errText = ""
		return m, func() tea.Msg { return SetupDoneMsg{} }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SetupModel) submit() tea.Cmd {
	path := strings.TrimSpace(m.input.Value())
	if path == "" {
		m.errText = "Please enter a path"
		return nil
	}

	m.busy = true
	m.errText = ""
	backend := m.backend
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return setPathResultMsg{err: backend.SetPath(context.Background(), path)}
		},
	)
}

// Busy reports whether a set-path request is in flight.
func (m *SetupModel) Busy() bool {
	return m.busy
}

// ErrText exposes the current inline error.
func (m *SetupModel) ErrText() string {
	return m.errText
}

// View renders the setup screen.
func (m *SetupModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("StarPrint"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Point the service at your game data to begin"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(" Initializing — reading game data...")
	} else if m.errText != "" {
		b.WriteString(styles.ErrorMsg.Render(m.errText))
	} else {
		b.WriteString(styles.MutedText.Render("Press enter to connect"))
	}

	return styles.App.Render(b.String())
}
