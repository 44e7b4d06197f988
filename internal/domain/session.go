package domain

// Session holds the mutable state shared across browsing flows: the single
// selected item, the category path whose items currently occupy the grid,
// and the grid generation counter used to discard superseded responses.
//
// All access happens on the TUI update loop, so the slots are plain
// last-write-wins fields with no locking.
type Session struct {
	selected     *Item
	displayed    string
	hasDisplayed bool
	gridGen      uint64
}

// NewSession returns an empty session store.
func NewSession() *Session {
	return &Session{}
}

// Select overwrites the single selection slot.
func (s *Session) Select(it Item) {
	s.selected = &it
}

// Selected returns the current selection, if any.
func (s *Session) Selected() (Item, bool) {
	if s.selected == nil {
		return Item{}, false
	}
	return *s.selected, true
}

// SetDisplayedPath records the category path occupying the grid. Taken at
// request time; search never calls this.
func (s *Session) SetDisplayedPath(path string) {
	s.displayed = path
	s.hasDisplayed = true
}

// DisplayedPath returns the path currently occupying the grid.
func (s *Session) DisplayedPath() (string, bool) {
	return s.displayed, s.hasDisplayed
}

// NextGridGen invalidates every in-flight grid response and returns the new
// generation. Callers attach it to the request they are about to issue and
// compare it again when the response arrives.
func (s *Session) NextGridGen() uint64 {
	s.gridGen++
	return s.gridGen
}

// GridGenCurrent reports whether gen is still the latest grid generation.
func (s *Session) GridGenCurrent(gen uint64) bool {
	return gen == s.gridGen
}
