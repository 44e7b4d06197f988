package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Deltawerks/starprint/internal/adapters/download"
	"github.com/Deltawerks/starprint/internal/adapters/preview"
	"github.com/Deltawerks/starprint/internal/adapters/tui/styles"
	"github.com/Deltawerks/starprint/internal/domain"
	"github.com/Deltawerks/starprint/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Tab      key.Binding
	Search   key.Binding
	Generate key.Binding
	Export   key.Binding
	Copy     key.Binding
	Preview  key.Binding
	Confirm  key.Binding
	Decline  key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/select"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "thumbnails"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy id"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "3D preview"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Decline: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type focusZone int

const (
	focusTree focusZone = iota
	focusGrid
	focusSearch
)

// Messages owned by the browser.

type categoriesLoadedMsg struct {
	roots []*domain.CategoryNode
}

type categoriesErrMsg struct {
	err error
}

// gridItemsMsg carries a grid payload plus the generation it was issued
// under. Stale generations are dropped on arrival.
type gridItemsMsg struct {
	gen    uint64
	path   string
	search bool
	query  string
	items  []domain.Item
	err    error
}

type thumbStatusMsg struct {
	path   string
	status domain.ThumbnailStatus
	err    error
}

type previewOpenedMsg struct {
	err error
}

// BrowserModel is the main screen: category tree, item grid, search bar,
// and the selection/export pane. It owns the shared session store.
type BrowserModel struct {
	ViewState
	backend   ports.Backend
	session   *domain.Session
	saver     *download.Saver
	opener    *preview.Opener
	serverURL string

	roots  []*domain.CategoryNode
	flat   []*domain.CategoryNode
	cursor int
	active *domain.CategoryNode

	coverage     *domain.ThumbnailStatus
	coveragePath string

	grid    GridModel
	thumbs  ThumbGenModel
	export  ExportPanel
	input   textinput.Model
	deb     debouncer
	lastRaw string
	spinner spinner.Model

	focus focusZone
}

// NewBrowserModel creates the main screen model.
func NewBrowserModel(backend ports.Backend, session *domain.Session, saver *download.Saver, opener *preview.Opener, serverURL string) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "Search items..."
	input.Prompt = "/ "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &BrowserModel{
		backend:   backend,
		session:   session,
		saver:     saver,
		opener:    opener,
		serverURL: strings.TrimRight(serverURL, "/"),
		input:     input,
		deb:       newDebouncer("search", searchQuietPeriod*time.Millisecond),
		spinner:   s,
	}
}

// Init triggers the one-time category load.
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadCategories()
}

// Update handles messages for the browser.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case categoriesLoadedMsg:
		m.roots = msg.roots
		m.refreshFlat()
		return m, nil

	case categoriesErrMsg:
		// Prior (possibly empty) tree stays; retry is manual.
		m.SetMessage("Failed to load categories", true)
		return m, nil

	case gridItemsMsg:
		return m.handleGridItems(msg)

	case thumbStatusMsg:
		// Optional coverage probe; failures stay silent.
		if msg.err == nil && m.active != nil && m.active.Path == msg.path {
			status := msg.status
			m.coverage = &status
			m.coveragePath = msg.path
		}
		return m, nil

	case thumbGenDoneMsg:
		return m.handleThumbDone(msg)

	case thumbResetMsg:
		m.thumbs.HandleReset(msg)
		return m, nil

	case exportDoneMsg:
		result, ok := m.export.FinishExport(msg)
		if !ok {
			return m, nil
		}
		return m, m.downloadExport(result)

	case downloadDoneMsg:
		m.export.FinishDownload(msg)
		return m, nil

	case thumbProbeMsg:
		m.export.SetProbe(msg)
		return m, nil

	case previewOpenedMsg:
		if msg.err != nil {
			m.SetMessage("Could not open 3D viewer", true)
		}
		return m, nil

	case debounceFiredMsg:
		return m.handleSearchFire(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) busy() bool {
	return m.grid.Loading() || m.export.Busy() || m.thumbs.Requesting()
}

// --- commands ---

func (m *BrowserModel) loadCategories() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		roots, err := backend.Categories(context.Background())
		if err != nil {
			return categoriesErrMsg{err}
		}
		return categoriesLoadedMsg{roots: roots}
	}
}

// loadItems claims the grid for path. DisplayedPath is written at request
// time; the generation is checked again when the response arrives.
func (m *BrowserModel) loadItems(path string) tea.Cmd {
	gen := m.session.NextGridGen()
	m.session.SetDisplayedPath(path)
	m.grid.SetLoading()

	backend := m.backend
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			items, err := backend.Items(context.Background(), path)
			return gridItemsMsg{gen: gen, path: path, items: items, err: err}
		},
	)
}

func (m *BrowserModel) runSearch(query string) tea.Cmd {
	// Search claims the grid but never touches DisplayedPath.
	gen := m.session.NextGridGen()

	backend := m.backend
	return func() tea.Msg {
		items, err := backend.Search(context.Background(), query)
		return gridItemsMsg{gen: gen, search: true, query: query, items: items, err: err}
	}
}

func (m *BrowserModel) probeCoverage(path string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		status, err := backend.ThumbnailStatus(context.Background(), path)
		return thumbStatusMsg{path: path, status: status, err: err}
	}
}

func (m *BrowserModel) generateThumbnails(path string) tea.Cmd {
	backend := m.backend
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			report, err := backend.GenerateThumbnails(context.Background(), path)
			return thumbGenDoneMsg{path: path, report: report, err: err}
		},
	)
}

func (m *BrowserModel) runExport(id string) tea.Cmd {
	backend := m.backend
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			result, err := backend.Export(context.Background(), id)
			return exportDoneMsg{result: result, err: err}
		},
	)
}

func (m *BrowserModel) downloadExport(result domain.ExportResult) tea.Cmd {
	saver := m.saver
	return func() tea.Msg {
		path, err := saver.Save(context.Background(), result)
		return downloadDoneMsg{path: path, err: err}
	}
}

func (m *BrowserModel) probeThumbnail(it domain.Item) tea.Cmd {
	if it.Thumbnail == "" {
		return nil
	}
	backend := m.backend
	url := it.Thumbnail
	id := it.ID
	return func() tea.Msg {
		rc, err := backend.Download(context.Background(), url)
		if err != nil {
			return thumbProbeMsg{id: id, ok: false}
		}
		rc.Close()
		return thumbProbeMsg{id: id, ok: true}
	}
}

func (m *BrowserModel) openPreview(url string) tea.Cmd {
	opener := m.opener
	target := m.resolveURL(url)
	return func() tea.Msg {
		return previewOpenedMsg{err: opener.Open(target)}
	}
}

func (m *BrowserModel) resolveURL(u string) string {
	if strings.HasPrefix(u, "/") {
		return m.serverURL + u
	}
	return u
}

// --- message handlers ---

func (m *BrowserModel) handleGridItems(msg gridItemsMsg) (tea.Model, tea.Cmd) {
	// Staleness guard, taken at response-arrival time: a superseded
	// request must not overwrite a newer grid.
	if !m.session.GridGenCurrent(msg.gen) {
		return m, nil
	}

	if msg.err != nil {
		if msg.search {
			m.SetMessage("Search failed", true)
		} else {
			m.grid.SetError("Error loading items.")
		}
		return m, nil
	}

	m.grid.SetItems(msg.items, msg.search)
	return m, nil
}

func (m *BrowserModel) handleThumbDone(msg thumbGenDoneMsg) (tea.Model, tea.Cmd) {
	reset, success := m.thumbs.Finish(msg)
	if reset == nil {
		return m, nil
	}

	cmds := []tea.Cmd{reset}
	if success {
		m.SetMessage(m.thumbs.Summary(), false)
		// Refresh only when the grid is showing the generated category.
		if displayed, ok := m.session.DisplayedPath(); ok && displayed == msg.path {
			cmds = append(cmds, m.loadItems(msg.path))
		}
		if m.active != nil && m.active.Path == msg.path {
			cmds = append(cmds, m.probeCoverage(msg.path))
		}
	} else {
		m.SetMessage("Thumbnail generation failed", true)
	}
	return m, tea.Batch(cmds...)
}

func (m *BrowserModel) handleSearchFire(msg debounceFiredMsg) (tea.Model, tea.Cmd) {
	if !m.deb.Live(msg) {
		return m, nil
	}
	query := strings.TrimSpace(m.input.Value())
	if len(query) < minQueryLength {
		return m, nil
	}
	return m, m.runSearch(query)
}

// --- key handling ---

func (m *BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending confirmation owns the keyboard.
	if m.thumbs.Confirming() {
		switch {
		case key.Matches(msg, BrowserKeys.Confirm):
			if path, ok := m.thumbs.Confirm(); ok {
				return m, m.generateThumbnails(path)
			}
			return m, nil
		case key.Matches(msg, BrowserKeys.Decline):
			m.thumbs.Decline()
			return m, nil
		}
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	m.ClearMessage()

	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, BrowserKeys.Tab):
		if m.focus == focusTree {
			m.focus = focusGrid
		} else {
			m.focus = focusTree
		}
		return m, nil

	case key.Matches(msg, BrowserKeys.Search):
		m.focus = focusSearch
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, BrowserKeys.Export):
		return m, m.startExport()

	case key.Matches(msg, BrowserKeys.Copy):
		if it, ok := m.session.Selected(); ok {
			clipboard.WriteAll(it.ID)
			m.SetMessage("Copied "+it.ID, false)
		}
		return m, nil

	case key.Matches(msg, BrowserKeys.Preview):
		if url := m.export.PreviewURL(); url != "" {
			return m, m.openPreview(url)
		}
		return m, nil

	case key.Matches(msg, BrowserKeys.Generate):
		if node := m.selectedNode(); node != nil && m.thumbs.Begin(node) {
			return m, nil
		}
		return m, nil
	}

	if m.focus == focusGrid {
		return m.handleGridKey(msg)
	}
	return m.handleTreeKey(msg)
}

func (m *BrowserModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.focus = focusTree
		m.input.Blur()
		m.deb.Cancel()
		return m, nil
	}
	if msg.Type == tea.KeyTab {
		m.focus = focusGrid
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	raw := m.input.Value()
	if raw == m.lastRaw {
		return m, cmd
	}
	m.lastRaw = raw

	// Every change cancels the pending query; short input stays inert.
	m.deb.Cancel()
	if len(strings.TrimSpace(raw)) < minQueryLength {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.deb.Schedule())
}

func (m *BrowserModel) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, BrowserKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, BrowserKeys.Down):
		if m.cursor < len(m.flat)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, BrowserKeys.Left):
		if node := m.selectedNode(); node != nil {
			if node.Expanded {
				node.Collapse()
				m.refreshFlat()
			} else if node.Parent != nil {
				for i, n := range m.flat {
					if n == node.Parent {
						m.cursor = i
						break
					}
				}
			}
		}
		return m, nil

	case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
		node := m.selectedNode()
		if node == nil {
			return m, nil
		}
		if node.IsLeaf() {
			return m, m.selectLeaf(node)
		}
		if node.HasChildren() {
			if node.Expanded && key.Matches(msg, BrowserKeys.Enter) {
				node.Collapse()
			} else {
				node.Expand()
			}
			m.refreshFlat()
		}
		return m, nil
	}
	return m, nil
}

func (m *BrowserModel) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, BrowserKeys.Up):
		m.grid.MoveUp()
		return m, nil

	case key.Matches(msg, BrowserKeys.Down):
		m.grid.MoveDown()
		return m, nil

	case key.Matches(msg, BrowserKeys.Enter):
		if it, ok := m.grid.Selected(); ok {
			return m, m.selectItem(it)
		}
		return m, nil
	}
	return m, nil
}

// --- state transitions ---

// selectLeaf marks node as the single active sidebar leaf and claims the
// grid for its path. This is the only navigation that moves DisplayedPath.
func (m *BrowserModel) selectLeaf(node *domain.CategoryNode) tea.Cmd {
	m.active = node
	m.coverage = nil
	m.coveragePath = ""
	return tea.Batch(
		m.loadItems(node.Path),
		m.probeCoverage(node.Path),
	)
}

func (m *BrowserModel) selectItem(it domain.Item) tea.Cmd {
	m.session.Select(it)
	m.export.Select(it)
	return m.probeThumbnail(it)
}

func (m *BrowserModel) startExport() tea.Cmd {
	if m.export.Busy() {
		return nil
	}
	it, ok := m.session.Selected()
	if !ok {
		// Block with a prompt; no request leaves the client.
		m.export.Prompt("Select an item first")
		return nil
	}
	m.export.StartExport()
	return m.runExport(it.ID)
}

func (m *BrowserModel) selectedNode() *domain.CategoryNode {
	if m.cursor >= 0 && m.cursor < len(m.flat) {
		return m.flat[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlat() {
	m.flat = domain.FlattenTree(m.roots)
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// --- rendering ---

// View renders the browser.
func (m *BrowserModel) View() string {
	treeWidth := 34
	gridHeight := m.Height - 12
	if gridHeight < 5 {
		gridHeight = 5
	}

	tree := m.renderTree()
	treePane := styles.PanelBorder
	if m.focus == focusTree {
		treePane = styles.PanelFocused
	}
	left := treePane.Width(treeWidth).Render(tree)

	searchPane := styles.PanelBorder
	if m.focus == focusSearch {
		searchPane = styles.PanelFocused
	}
	search := searchPane.Render(m.input.View())

	gridPane := styles.PanelBorder
	if m.focus == focusGrid {
		gridPane = styles.PanelFocused
	}
	gridBody := m.grid.View(gridHeight)
	if m.grid.Loading() {
		gridBody = m.spinner.View() + " " + gridBody
	}
	grid := gridPane.Render(gridBody)

	panel := styles.PanelBorder.Render(m.export.View(m.spinner.View()))

	right := lipgloss.JoinVertical(lipgloss.Left, search, grid, panel)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var b strings.Builder
	b.WriteString(styles.Title.Render("StarPrint"))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")

	if m.thumbs.Confirming() {
		b.WriteString(styles.InputLabel.Render(m.thumbs.ConfirmPrompt()))
		b.WriteString(" ")
		b.WriteString(RenderHelpLine(BrowserKeys.Confirm, BrowserKeys.Decline))
		b.WriteString("\n")
	} else if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString(RenderHelpLine(
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Tab, BrowserKeys.Search,
		BrowserKeys.Generate, BrowserKeys.Export, BrowserKeys.Preview, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderTree() string {
	if m.roots == nil {
		return RenderPlaceholder("Loading categories...")
	}

	var b strings.Builder
	for i, node := range m.flat {
		b.WriteString(m.renderNode(node, i == m.cursor && m.focus == focusTree))
		b.WriteString("\n")
	}

	if m.coverage != nil && m.coverage.Total > 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(
			fmt.Sprintf("thumbnails %d/%d", m.coverage.Count, m.coverage.Total)))
	}

	return b.String()
}

func (m *BrowserModel) renderNode(node *domain.CategoryNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth())

	var prefix string
	switch {
	case node.IsLeaf():
		prefix = styles.TreeLeaf
	case node.Expanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := node.Name
	if node.IsLeaf() {
		text += " " + m.thumbs.Glyph(node)
	}

	style := styles.NodeLeaf
	if node.HasChildren() {
		style = styles.NodeBranch
	}
	if node == m.active {
		style = styles.NodeActive
	}

	rendered := style.Render(text)
	if selected {
		rendered = styles.NodeSelected.Render(text)
	}

	return indent + styles.TreeBranch.Render(prefix) + rendered
}
