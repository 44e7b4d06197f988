package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debouncer schedules one deferred fire per settled burst of calls. Every
// Schedule supersedes the previous one; a fire whose sequence no longer
// matches is stale and must be dropped by the receiver.
type debouncer struct {
	tag   string
	delay time.Duration
	seq   int
}

// debounceFiredMsg is delivered when a scheduled fire comes due. Receivers
// route on tag and check liveness before acting.
type debounceFiredMsg struct {
	tag string
	seq int
}

func newDebouncer(tag string, delay time.Duration) debouncer {
	return debouncer{tag: tag, delay: delay}
}

// Schedule cancels any pending fire and arms a new one.
func (d *debouncer) Schedule() tea.Cmd {
	d.seq++
	seq := d.seq
	tag := d.tag
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceFiredMsg{tag: tag, seq: seq}
	})
}

// Cancel invalidates any pending fire without arming a new one.
func (d *debouncer) Cancel() {
	d.seq++
}

// Live reports whether msg is the most recently scheduled fire.
func (d *debouncer) Live(msg debounceFiredMsg) bool {
	return msg.tag == d.tag && msg.seq == d.seq
}
