package ui

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelBG     = color.RGBA{15, 20, 35, 230}
	panelBorder = color.RGBA{0, 140, 200, 255}
	trackColor  = color.RGBA{30, 35, 50, 240}
	accent      = color.RGBA{0, 180, 255, 255}
)

const (
	sliderHeight = 24
	rowHeight    = 44
	panelWidth   = 260
)

// Slider is a horizontal integer slider
type Slider struct {
	Label    string
	X, Y, W  int
	Min, Max int
	Value    int

	dragging bool
}

// NewSlider creates a slider clamped to min..max
func NewSlider(label string, min, max, value int) *Slider {
	s := &Slider{Label: label, W: 160, Min: min, Max: max}
	s.SetValue(value)
	return s
}

// SetValue clamps v into range and reports whether the value changed
func (s *Slider) SetValue(v int) bool {
	v = max(s.Min, min(s.Max, v))
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Update handles a press on the track and dragging. It reports whether the value changed.
func (s *Slider) Update(mx, my int, pressed, justPressed bool) bool {
	if justPressed && s.contains(mx, my) {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}
	return s.SetValue(s.valueAt(mx))
}

// Dragging reports whether the knob is held
func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) contains(mx, my int) bool {
	return mx >= s.X && mx < s.X+s.W && my >= s.Y && my < s.Y+sliderHeight
}

func (s *Slider) valueAt(mx int) int {
	if s.W <= 0 || s.Max <= s.Min {
		return s.Min
	}
	frac := float64(mx-s.X) / float64(s.W)
	frac = max(0, min(1, frac))
	return s.Min + int(frac*float64(s.Max-s.Min)+0.5)
}

// Draw renders the label, track, knob and value
func (s *Slider) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.Label, s.X, s.Y-14)

	trackY := float32(s.Y + sliderHeight/2 - 2)
	vector.DrawFilledRect(screen, float32(s.X), trackY, float32(s.W), 4, trackColor, false)

	frac := 0.0
	if s.Max > s.Min {
		frac = float64(s.Value-s.Min) / float64(s.Max-s.Min)
	}
	fillW := float32(float64(s.W) * frac)
	vector.DrawFilledRect(screen, float32(s.X), trackY, fillW, 4, accent, false)

	knobX := float32(s.X) + fillW
	vector.DrawFilledCircle(screen, knobX, float32(s.Y+sliderHeight/2), 8, accent, false)
	vector.StrokeCircle(screen, knobX, float32(s.Y+sliderHeight/2), 8, 1.5, color.RGBA{255, 255, 255, 100}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.Value), s.X+s.W+12, s.Y+5)
}

// SettingsPanel holds the sliders of the current mode: unit ranges while placing
// units, map size while editing the map.
type SettingsPanel struct {
	X, Y int

	Move, Attack  *Slider
	Width, Height *Slider

	OnRanges func(attack, move int)
	OnResize func(width, height int)
}

// NewSettingsPanel lays out a panel at (x, y)
func NewSettingsPanel(x, y, minRange, maxRange, minSize, maxSize int) *SettingsPanel {
	p := &SettingsPanel{
		X:      x,
		Y:      y,
		Move:   NewSlider("Movement range", minRange, maxRange, minRange),
		Attack: NewSlider("Attack range", minRange, maxRange, minRange),
		Width:  NewSlider("Map width", minSize, maxSize, minSize),
		Height: NewSlider("Map height", minSize, maxSize, minSize),
	}
	p.layout(p.Move, p.Attack)
	p.layout(p.Width, p.Height)
	return p
}

func (p *SettingsPanel) layout(sliders ...*Slider) {
	for i, s := range sliders {
		s.X = p.X + 12
		s.Y = p.Y + 28 + i*rowHeight
	}
}

// SyncRanges shows the given budgets without firing OnRanges
func (p *SettingsPanel) SyncRanges(attack, move int) {
	p.Attack.SetValue(attack)
	p.Move.SetValue(move)
}

// SyncSize shows the given map size without firing OnResize
func (p *SettingsPanel) SyncSize(width, height int) {
	p.Width.SetValue(width)
	p.Height.SetValue(height)
}

func (p *SettingsPanel) sliders(mode core.Mode) []*Slider {
	switch mode {
	case core.ModeUnitPlacement:
		return []*Slider{p.Move, p.Attack}
	case core.ModeMapEditing:
		return []*Slider{p.Width, p.Height}
	}
	return nil
}

// Contains reports whether a screen point is over the panel for mode
func (p *SettingsPanel) Contains(mode core.Mode, mx, my int) bool {
	n := len(p.sliders(mode))
	if n == 0 {
		return false
	}
	return mx >= p.X && mx < p.X+panelWidth && my >= p.Y && my < p.Y+20+n*rowHeight
}

// Update feeds the pointer to the sliders of mode and fires the change callbacks.
// It reports whether the pointer was used by the panel.
func (p *SettingsPanel) Update(mode core.Mode, mx, my int, pressed, justPressed bool) bool {
	sliders := p.sliders(mode)
	changed, held := false, false
	for _, s := range sliders {
		if s.Update(mx, my, pressed, justPressed) {
			changed = true
		}
		held = held || s.Dragging()
	}
	if changed {
		switch mode {
		case core.ModeUnitPlacement:
			if p.OnRanges != nil {
				p.OnRanges(p.Attack.Value, p.Move.Value)
			}
		case core.ModeMapEditing:
			if p.OnResize != nil {
				p.OnResize(p.Width.Value, p.Height.Value)
			}
		}
	}
	return held || (justPressed && p.Contains(mode, mx, my))
}

// Draw renders the panel for mode
func (p *SettingsPanel) Draw(screen *ebiten.Image, mode core.Mode) {
	sliders := p.sliders(mode)
	if len(sliders) == 0 {
		return
	}
	h := float32(20 + len(sliders)*rowHeight)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), panelWidth, h, panelBG, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), panelWidth, h, 1, panelBorder, false)
	for _, s := range sliders {
		s.Draw(screen)
	}
}

// DrawHUD renders the mode title, its control hint and a status line along the top
func DrawHUD(screen *ebiten.Image, mode core.Mode, status string) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), 44, color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[Q] %s [E]", mode), 10, 6)
	ebitenutil.DebugPrintAt(screen, mode.Info(), 10, 24)
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, w-len(status)*6-10, 6)
	}
}
