package views

import (
	"testing"

	"github.com/Deltawerks/starprint/internal/domain"
)

func TestExportPanelSelectResetsProbe(t *testing.T) {
	var p ExportPanel

	p.Select(domain.Item{ID: "a", Thumbnail: "/thumb/a.png"})
	p.SetProbe(thumbProbeMsg{id: "a", ok: true})
	if !p.thumbOK {
		t.Fatal("probe for the displayed item should stick")
	}

	p.Select(domain.Item{ID: "b", Thumbnail: "/thumb/b.png"})
	if p.thumbOK {
		t.Fatal("selecting a new item must reset the probe")
	}

	// A late probe for the previous item is ignored.
	p.SetProbe(thumbProbeMsg{id: "a", ok: true})
	if p.thumbOK {
		t.Fatal("probe for a different item must be ignored")
	}
}

func TestExportPanelSelectionOverwrites(t *testing.T) {
	var p ExportPanel

	p.Select(domain.Item{ID: "first"})
	p.Select(domain.Item{ID: "second"})

	it, ok := p.Item()
	if !ok || it.ID != "second" {
		t.Fatalf("item = %v, %v, want the last selection", it, ok)
	}
}

func TestExportPanelFailureWithoutMessage(t *testing.T) {
	var p ExportPanel
	p.StartExport()

	_, ok := p.FinishExport(exportDoneMsg{result: domain.ExportResult{Status: "error"}})
	if ok {
		t.Fatal("failed export must not trigger a download")
	}
	note, isErr := p.Note()
	if note != "Export failed" || !isErr {
		t.Fatalf("note = %q, %v", note, isErr)
	}
	if p.Busy() {
		t.Fatal("control must be re-enabled")
	}
}
