package views

import (
	"strings"

	"github.com/Deltawerks/starprint/internal/adapters/tui/styles"
	"github.com/Deltawerks/starprint/internal/domain"
	"github.com/Deltawerks/starprint/internal/ports"
)

// exportDoneMsg reports the outcome of a server-side export request.
type exportDoneMsg struct {
	result domain.ExportResult
	err    error
}

// downloadDoneMsg reports the local save of an exported file.
type downloadDoneMsg struct {
	path string
	err  error
}

// thumbProbeMsg reports whether a selected item's thumbnail URL resolves.
// A failed probe silently degrades to the generic glyph.
type thumbProbeMsg struct {
	id string
	ok bool
}

// ExportPanel shows the selected item and drives the export control.
type ExportPanel struct {
	item      *domain.Item
	thumbOK   bool
	busy      bool
	note      string
	noteErr   bool
	result    *domain.ExportResult
	savedPath string
}

// Select overwrites the panel's item. Probe state resets; notes stay until
// the next export attempt.
func (p *ExportPanel) Select(it domain.Item) {
	p.item = &it
	p.thumbOK = false
}

// Item returns the displayed item.
func (p *ExportPanel) Item() (domain.Item, bool) {
	if p.item == nil {
		return domain.Item{}, false
	}
	return *p.item, true
}

// Busy reports whether an export request is in flight.
func (p *ExportPanel) Busy() bool {
	return p.busy
}

// StartExport disables the control for the request about to be issued.
func (p *ExportPanel) StartExport() {
	p.busy = true
	p.note = ""
	p.noteErr = false
	p.savedPath = ""
}

// Prompt shows the user-facing block message for an export attempt without
// a selection. No request may be issued.
func (p *ExportPanel) Prompt(text string) {
	p.note = text
	p.noteErr = true
}

// FinishExport re-enables the control and records the outcome. It returns
// the result when export succeeded and a download should follow. The
// control is re-enabled on every path, including application failures.
func (p *ExportPanel) FinishExport(msg exportDoneMsg) (domain.ExportResult, bool) {
	p.busy = false

	if msg.err != nil {
		p.note = ports.UserMessage(msg.err, "Export failed")
		p.noteErr = true
		return domain.ExportResult{}, false
	}
	if !msg.result.Succeeded() {
		// HTTP success with a failing payload is still a failure.
		if msg.result.Message != "" {
			p.note = msg.result.Message
		} else {
			p.note = "Export failed"
		}
		p.noteErr = true
		return domain.ExportResult{}, false
	}

	result := msg.result
	p.result = &result
	p.note = "Export complete, downloading..."
	p.noteErr = false
	return result, true
}

// FinishDownload records where the exported file landed.
func (p *ExportPanel) FinishDownload(msg downloadDoneMsg) {
	if msg.err != nil {
		p.note = "Download failed"
		p.noteErr = true
		return
	}
	p.savedPath = msg.path
	p.note = "Saved " + msg.path
	p.noteErr = false
}

// SetProbe records a thumbnail probe outcome for the displayed item.
func (p *ExportPanel) SetProbe(msg thumbProbeMsg) {
	if p.item != nil && p.item.ID == msg.id {
		p.thumbOK = msg.ok
	}
}

// PreviewURL returns the last export's preview URL, when any.
func (p *ExportPanel) PreviewURL() string {
	if p.result == nil {
		return ""
	}
	return p.result.PreviewURL
}

// Note exposes the panel's inline message.
func (p *ExportPanel) Note() (string, bool) {
	return p.note, p.noteErr
}

// View renders the preview/export pane.
func (p *ExportPanel) View(spinnerView string) string {
	var b strings.Builder

	if p.item == nil {
		b.WriteString(RenderPlaceholder("Nothing selected."))
		return b.String()
	}

	swatch := swatchGeneric
	if p.item.Thumbnail != "" && p.thumbOK {
		swatch = swatchThumb
	}
	b.WriteString(styles.CardSwatch.Render(swatch))
	b.WriteString(" ")
	b.WriteString(styles.CardName.Render(p.item.Name))
	b.WriteString("\n")
	if label := p.item.TypeLabel(); label != "" {
		b.WriteString(styles.CardType.Render(label))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render(p.item.ID))
	b.WriteString("\n\n")

	if p.busy {
		b.WriteString(spinnerView)
		b.WriteString(" Exporting...")
	} else if p.note != "" {
		b.WriteString(RenderMessage(p.note, p.noteErr))
	}

	if p.result != nil && p.result.PreviewURL != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("3D preview ready — press p to open"))
	}

	return b.String()
}
