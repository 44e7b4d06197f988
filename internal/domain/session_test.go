package domain

import "testing"

func TestSession_SelectionLastWriteWins(t *testing.T) {
	s := NewSession()

	if _, ok := s.Selected(); ok {
		t.Fatal("fresh session should have no selection")
	}

	s.Select(Item{ID: "a", Name: "first"})
	s.Select(Item{ID: "b", Name: "second"})

	got, ok := s.Selected()
	if !ok || got.ID != "b" {
		t.Errorf("Selected() = %+v, %v; want item b", got, ok)
	}
}

func TestSession_DisplayedPath(t *testing.T) {
	s := NewSession()

	if _, ok := s.DisplayedPath(); ok {
		t.Fatal("fresh session should have no displayed path")
	}

	s.SetDisplayedPath("weapons/rifles")
	s.SetDisplayedPath("armor")

	got, ok := s.DisplayedPath()
	if !ok || got != "armor" {
		t.Errorf("DisplayedPath() = %q, %v; want armor", got, ok)
	}
}

func TestSession_GridGenerationGuard(t *testing.T) {
	s := NewSession()

	older := s.NextGridGen()
	newer := s.NextGridGen()

	if s.GridGenCurrent(older) {
		t.Error("superseded generation must not be current")
	}
	if !s.GridGenCurrent(newer) {
		t.Error("latest generation must be current")
	}
}
