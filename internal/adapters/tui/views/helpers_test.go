package views

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deltawerks/starprint/internal/adapters/download"
	"github.com/Deltawerks/starprint/internal/adapters/preview"
	"github.com/Deltawerks/starprint/internal/domain"
)

// fakeBackend records calls and answers from pluggable funcs. Commands run
// synchronously in tests, so the call slices need no locking.
type fakeBackend struct {
	statusFn   func(ctx context.Context) (domain.SessionStatus, error)
	setPathFn  func(ctx context.Context, path string) error
	itemsFn    func(ctx context.Context, path string) ([]domain.Item, error)
	searchFn   func(ctx context.Context, query string) ([]domain.Item, error)
	generateFn func(ctx context.Context, path string) (domain.ThumbnailReport, error)
	thumbsFn   func(ctx context.Context, path string) (domain.ThumbnailStatus, error)
	exportFn   func(ctx context.Context, id string) (domain.ExportResult, error)
	downloadFn func(ctx context.Context, url string) (io.ReadCloser, error)

	setPathCalls  []string
	itemsCalls    []string
	searchCalls   []string
	generateCalls []string
	exportCalls   []string
	downloadCalls []string
}

func (f *fakeBackend) Status(ctx context.Context) (domain.SessionStatus, error) {
	if f.statusFn != nil {
		return f.statusFn(ctx)
	}
	return domain.SessionStatus{Configured: true}, nil
}

func (f *fakeBackend) SetPath(ctx context.Context, path string) error {
	f.setPathCalls = append(f.setPathCalls, path)
	if f.setPathFn != nil {
		return f.setPathFn(ctx, path)
	}
	return nil
}

func (f *fakeBackend) Categories(ctx context.Context) ([]*domain.CategoryNode, error) {
	return nil, nil
}

func (f *fakeBackend) Items(ctx context.Context, path string) ([]domain.Item, error) {
	f.itemsCalls = append(f.itemsCalls, path)
	if f.itemsFn != nil {
		return f.itemsFn(ctx, path)
	}
	return nil, nil
}

func (f *fakeBackend) Search(ctx context.Context, query string) ([]domain.Item, error) {
	f.searchCalls = append(f.searchCalls, query)
	if f.searchFn != nil {
		return f.searchFn(ctx, query)
	}
	return nil, nil
}

func (f *fakeBackend) GenerateThumbnails(ctx context.Context, path string) (domain.ThumbnailReport, error) {
	f.generateCalls = append(f.generateCalls, path)
	if f.generateFn != nil {
		return f.generateFn(ctx, path)
	}
	return domain.ThumbnailReport{Status: "complete"}, nil
}

func (f *fakeBackend) ThumbnailStatus(ctx context.Context, path string) (domain.ThumbnailStatus, error) {
	if f.thumbsFn != nil {
		return f.thumbsFn(ctx, path)
	}
	return domain.ThumbnailStatus{}, nil
}

func (f *fakeBackend) Export(ctx context.Context, id string) (domain.ExportResult, error) {
	f.exportCalls = append(f.exportCalls, id)
	if f.exportFn != nil {
		return f.exportFn(ctx, id)
	}
	return domain.ExportResult{Status: "success"}, nil
}

func (f *fakeBackend) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	f.downloadCalls = append(f.downloadCalls, url)
	if f.downloadFn != nil {
		return f.downloadFn(ctx, url)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func newTestBrowser(t *testing.T, backend *fakeBackend) *BrowserModel {
	t.Helper()
	session := domain.NewSession()
	saver := download.NewSaver(backend, t.TempDir())
	opener := preview.NewOpener("true")
	m := NewBrowserModel(backend, session, saver, opener, "http://localhost:8000")
	m.thumbs.ResetDelay = 1 // effectively immediate
	return m
}

// drain executes cmd and every command a batch carries, returning the
// produced messages in order.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed pushes every message through the model's Update.
func feed(m *BrowserModel, msgs []tea.Msg) tea.Cmd {
	var last tea.Cmd
	for _, msg := range msgs {
		_, last = m.Update(msg)
	}
	return last
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func leafNode(name, path string) *domain.CategoryNode {
	return &domain.CategoryNode{Name: name, Path: path, Leaf: true}
}
