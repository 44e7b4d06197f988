package views

import (
	"errors"
	"testing"

	"github.com/Deltawerks/starprint/internal/domain"
)

func TestThumbGenBeginRules(t *testing.T) {
	var g ThumbGenModel

	if g.Begin(nil) {
		t.Fatal("nil node must be refused")
	}
	branch := &domain.CategoryNode{Name: "ships"}
	if g.Begin(branch) {
		t.Fatal("non-leaf node must be refused")
	}

	leaf := leafNode("AEGS", "ships/aegis::AEGS")
	if !g.Begin(leaf) || !g.Confirming() {
		t.Fatal("leaf should enter confirming")
	}

	path, ok := g.Confirm()
	if !ok || path != "ships/aegis::AEGS" {
		t.Fatalf("confirm = %q, %v", path, ok)
	}
	if g.Begin(leaf) {
		t.Fatal("begin must be refused while requesting")
	}
}

func TestThumbGenDeclineIsIdempotent(t *testing.T) {
	var g ThumbGenModel
	leaf := leafNode("AEGS", "a")

	g.Begin(leaf)
	g.Decline()
	if g.Confirming() || g.Target() != nil {
		t.Fatal("decline should return to idle")
	}
	g.Decline()

	if _, ok := g.Confirm(); ok {
		t.Fatal("confirm after decline must be refused")
	}
}

func TestThumbGenFinishOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		msg     thumbGenDoneMsg
		success bool
	}{
		{"complete", thumbGenDoneMsg{report: domain.ThumbnailReport{Status: "complete", Generated: 2}}, true},
		{"server reports error", thumbGenDoneMsg{report: domain.ThumbnailReport{Status: "error"}}, false},
		{"transport error", thumbGenDoneMsg{err: errors.New("boom")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := ThumbGenModel{ResetDelay: 1}
			g.Begin(leafNode("AEGS", "a"))
			g.Confirm()

			reset, success := g.Finish(tc.msg)
			if reset == nil {
				t.Fatal("finish must always arm a reset")
			}
			if success != tc.success {
				t.Fatalf("success = %v, want %v", success, tc.success)
			}

			msg, ok := reset().(thumbResetMsg)
			if !ok {
				t.Fatalf("reset produced %T", msg)
			}
			if !g.HandleReset(msg) {
				t.Fatal("armed reset must be live")
			}
			if g.Confirming() || g.Requesting() || g.Target() != nil {
				t.Fatal("reset should re-arm to idle")
			}
		})
	}
}

func TestThumbGenFinishWithoutRequestIgnored(t *testing.T) {
	var g ThumbGenModel
	if reset, _ := g.Finish(thumbGenDoneMsg{}); reset != nil {
		t.Fatal("finish outside requesting must be a no-op")
	}
}

func TestThumbGenSummary(t *testing.T) {
	g := ThumbGenModel{ResetDelay: 1}
	g.Begin(leafNode("AEGS", "a"))
	g.Confirm()
	g.Finish(thumbGenDoneMsg{report: domain.ThumbnailReport{Status: "complete", Generated: 5, Skipped: 2, Failed: 1}})

	want := "Thumbnails generated: 5 new, 2 cached, 1 failed"
	if got := g.Summary(); got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}
