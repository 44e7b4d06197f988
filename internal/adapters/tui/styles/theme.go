package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#38BDF8") // Cyan
	Secondary = lipgloss.Color("#34D399") // Green
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Muted     = lipgloss.Color("#64748B") // Slate
	Error     = lipgloss.Color("#F87171") // Red
	White     = lipgloss.Color("#E2E8F0")
	Black     = lipgloss.Color("#0B0C15")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree node styles
	NodeBranch = lipgloss.NewStyle().
			Foreground(Primary)

	NodeLeaf = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Black).
			Bold(true)

	NodeActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Item cards
	CardName = lipgloss.NewStyle().
			Foreground(White)

	CardType = lipgloss.NewStyle().
			Foreground(Muted)

	CardSwatch = lipgloss.NewStyle().
			Foreground(Accent)

	CardSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Black).
			Bold(true)

	// Panels
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	PanelFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Accent)

	// Muted text style
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
