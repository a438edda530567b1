package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// PopupDuration is how long a popup stays visible, in seconds
const PopupDuration = 1.5

// Popup is a short-lived message anchored to a screen point
type Popup struct {
	Text     string
	Duration float64

	x, y      int
	remaining float64
}

// NewOutOfRangePopup creates the popup shown for unreachable clicks
func NewOutOfRangePopup() *Popup {
	return &Popup{Text: "Out of range", Duration: PopupDuration}
}

// Show displays the popup at (x, y), restarting its timer
func (p *Popup) Show(x, y int) {
	p.x, p.y = x, y
	p.remaining = p.Duration
}

// Hide dismisses the popup
func (p *Popup) Hide() { p.remaining = 0 }

// Visible reports whether the popup is still showing
func (p *Popup) Visible() bool { return p.remaining > 0 }

// Update counts down the display time
func (p *Popup) Update(dt float64) {
	if p.remaining > 0 {
		p.remaining -= dt
	}
}

// Draw renders the message centered above the anchor, fading out near the end
func (p *Popup) Draw(screen *ebiten.Image) {
	if !p.Visible() {
		return
	}
	face := basicfont.Face7x13
	w := font.MeasureString(face, p.Text).Ceil()
	h := face.Metrics().Height.Ceil()
	alpha := uint8(255)
	if p.remaining < 0.5 {
		alpha = uint8(255 * p.remaining / 0.5)
	}
	x, y := p.x-w/2, p.y-h-8
	vector.DrawFilledRect(screen, float32(x-6), float32(y-4), float32(w+12), float32(h+8), color.NRGBA{0, 0, 0, alpha / 2}, false)
	text.Draw(screen, p.Text, face, x, y+face.Metrics().Ascent.Ceil(), color.NRGBA{255, 80, 80, alpha})
}
