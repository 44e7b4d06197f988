package views

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deltawerks/starprint/internal/domain"
)

type thumbPhase int

const (
	thumbIdle thumbPhase = iota
	thumbConfirming
	thumbRequesting
	thumbSuccess
	thumbFailure
)

// thumbGenDoneMsg reports a finished generation request for a category.
type thumbGenDoneMsg struct {
	path   string
	report domain.ThumbnailReport
	err    error
}

// thumbResetMsg re-arms a finished control. Stale sequences are dropped.
type thumbResetMsg struct {
	seq int
}

// ThumbGenModel drives the per-category thumbnail generation control:
// Idle → Confirming → Requesting → Done → Idle, with a fixed display period
// before the control re-arms. A new trigger restarts from Confirming and
// cancels any pending re-arm.
type ThumbGenModel struct {
	phase    thumbPhase
	target   *domain.CategoryNode
	report   domain.ThumbnailReport
	resetSeq int

	// ResetDelay overrides the display period before re-arming. Zero
	// means the default.
	ResetDelay time.Duration
}

// Begin puts the control into Confirming for node. Refused while a request
// is in flight.
func (t *ThumbGenModel) Begin(node *domain.CategoryNode) bool {
	if t.phase == thumbRequesting || node == nil || !node.IsLeaf() {
		return false
	}
	t.resetSeq++ // cancel a pending re-arm
	t.phase = thumbConfirming
	t.target = node
	return true
}

// Confirming reports whether the control awaits a user decision.
func (t *ThumbGenModel) Confirming() bool {
	return t.phase == thumbConfirming
}

// Requesting reports whether a generation request is in flight.
func (t *ThumbGenModel) Requesting() bool {
	return t.phase == thumbRequesting
}

// Decline returns to Idle without any network effect.
func (t *ThumbGenModel) Decline() {
	if t.phase == thumbConfirming {
		t.phase = thumbIdle
		t.target = nil
	}
}

// Confirm moves to Requesting and returns the category path to generate.
func (t *ThumbGenModel) Confirm() (string, bool) {
	if t.phase != thumbConfirming || t.target == nil {
		return "", false
	}
	t.phase = thumbRequesting
	return t.target.Path, true
}

// Finish records the outcome and schedules the re-arm. It returns the reset
// command and whether the run completed successfully.
func (t *ThumbGenModel) Finish(msg thumbGenDoneMsg) (tea.Cmd, bool) {
	if t.phase != thumbRequesting {
		return nil, false
	}

	success := msg.err == nil && msg.report.Complete()
	if success {
		t.phase = thumbSuccess
		t.report = msg.report
	} else {
		t.phase = thumbFailure
	}

	t.resetSeq++
	seq := t.resetSeq
	delay := t.ResetDelay
	if delay == 0 {
		delay = thumbResetDelay * time.Millisecond
	}
	reset := tea.Tick(delay, func(time.Time) tea.Msg {
		return thumbResetMsg{seq: seq}
	})
	return reset, success
}

// HandleReset re-arms the control if msg is still the pending reset.
func (t *ThumbGenModel) HandleReset(msg thumbResetMsg) bool {
	if msg.seq != t.resetSeq {
		return false
	}
	if t.phase == thumbSuccess || t.phase == thumbFailure {
		t.phase = thumbIdle
		t.target = nil
	}
	return true
}

// Target returns the leaf the control currently points at.
func (t *ThumbGenModel) Target() *domain.CategoryNode {
	return t.target
}

// ConfirmPrompt is the question shown while Confirming.
func (t *ThumbGenModel) ConfirmPrompt() string {
	if t.target == nil {
		return ""
	}
	return fmt.Sprintf("Generate thumbnails for %q? This exports and renders every item in the category and may take a while.", t.target.Name)
}

// Summary describes the outcome while the control shows its result.
func (t *ThumbGenModel) Summary() string {
	switch t.phase {
	case thumbSuccess:
		return fmt.Sprintf("Thumbnails generated: %d new, %d cached, %d failed",
			t.report.Generated, t.report.Skipped, t.report.Failed)
	case thumbFailure:
		return "Thumbnail generation failed"
	default:
		return ""
	}
}

// Glyph returns the tree-row affordance for node.
func (t *ThumbGenModel) Glyph(node *domain.CategoryNode) string {
	if t.target == nil || t.target != node {
		return "◎"
	}
	switch t.phase {
	case thumbConfirming:
		return "?"
	case thumbRequesting:
		return "…"
	case thumbSuccess:
		return "✓"
	case thumbFailure:
		return "!"
	default:
		return "◎"
	}
}
