package ui

import (
	"testing"

	"github.com/1siamBot/tactics-engine/engine/core"
)

func TestSlider_ClampsValue(t *testing.T) {
	s := NewSlider("range", 1, 100, 500)
	if s.Value != 100 {
		t.Fatalf("expected clamp to 100, got %d", s.Value)
	}
	if s.SetValue(100) {
		t.Fatal("unchanged value should report no change")
	}
	s.SetValue(-3)
	if s.Value != 1 {
		t.Fatalf("expected clamp to 1, got %d", s.Value)
	}
}

func TestSlider_DragSetsValue(t *testing.T) {
	s := NewSlider("range", 0, 10, 0)
	s.X, s.Y, s.W = 100, 50, 100
	if s.Update(10, 10, true, true) {
		t.Fatal("press outside the track should not change the value")
	}
	if !s.Update(150, 60, true, true) || s.Value != 5 {
		t.Fatalf("press in the middle should set 5, got %d", s.Value)
	}
	// Dragging continues outside the track and clamps.
	s.Update(400, 0, true, false)
	if s.Value != 10 {
		t.Fatalf("expected 10 after dragging past the end, got %d", s.Value)
	}
	s.Update(150, 60, false, false)
	if s.Dragging() || s.Value != 10 {
		t.Fatal("release should stop dragging")
	}
}

func TestSettingsPanel_FiresForActiveMode(t *testing.T) {
	p := NewSettingsPanel(0, 0, 1, 100, 1, 100)
	var ranges, sizes int
	p.OnRanges = func(attack, move int) { ranges++ }
	p.OnResize = func(w, h int) { sizes++ }
	p.SyncSize(10, 10)

	s := p.Width
	mx, my := s.X+s.W, s.Y+sliderHeight/2
	if !p.Update(core.ModeMapEditing, mx, my, true, true) {
		t.Fatal("panel should consume the press")
	}
	if sizes != 1 || ranges != 0 || p.Width.Value != 100 {
		t.Fatalf("unexpected callbacks ranges=%d sizes=%d width=%d", ranges, sizes, p.Width.Value)
	}
	if p.Update(core.ModePathfindingTesting, mx, my, true, true) {
		t.Fatal("no sliders in pathfinding testing")
	}
}
