package render

import (
	"image/color"

	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
	"github.com/1siamBot/tactics-engine/engine/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TileColors maps tile types to their base color
var TileColors = map[maplib.TileType]color.RGBA{
	maplib.TileOpen:    {235, 235, 235, 255},
	maplib.TileBlocked: {20, 20, 20, 255},
	maplib.TileCover:   {128, 128, 128, 255},
}

var (
	MovementTint = color.NRGBA{0, 160, 0, 110}
	AttackTint   = color.NRGBA{200, 0, 0, 90}
	GridLine     = color.RGBA{60, 60, 60, 255}
	PlayerColor  = color.RGBA{30, 110, 240, 255}
	EnemyColor   = color.RGBA{220, 40, 40, 255}
)

type overlay uint8

const (
	overlayMove overlay = 1 << iota
	overlayAttack
)

// GridRenderer draws the tile map with range overlays. The map and overlays are
// baked into one cached image that is rebuilt only after a change.
type GridRenderer struct {
	Camera *Camera

	tm      *maplib.TileMap
	width   int
	overlay []overlay
	cache   *ebiten.Image
	dirty   bool
}

// NewGridRenderer creates a renderer drawing through cam
func NewGridRenderer(cam *Camera) *GridRenderer {
	return &GridRenderer{Camera: cam, dirty: true}
}

// SetMap points the renderer at tm and drops all overlays
func (r *GridRenderer) SetMap(tm *maplib.TileMap) {
	r.tm = tm
	r.width = 0
	r.overlay = r.overlay[:0]
	if tm.Valid() {
		r.width = tm.Width
		r.overlay = append(r.overlay, make([]overlay, tm.Width*tm.Height)...)
	}
	r.dirty = true
}

// Invalidate forces the cached image to be rebuilt on the next Draw
func (r *GridRenderer) Invalidate() { r.dirty = true }

// Dirty reports whether the next Draw rebuilds the cache
func (r *GridRenderer) Dirty() bool { return r.dirty }

// MarkRange implements pathfind.RangeMarker
func (r *GridRenderer) MarkRange(p pathfind.Point, inMovement, inAttack bool) {
	i, ok := r.index(p)
	if !ok {
		return
	}
	var o overlay
	if inMovement {
		o |= overlayMove
	}
	if inAttack {
		o |= overlayAttack
	}
	if r.overlay[i] != o {
		r.overlay[i] = o
		r.dirty = true
	}
}

// Overlay returns the marks currently shown on p
func (r *GridRenderer) Overlay(p pathfind.Point) (inMovement, inAttack bool) {
	i, ok := r.index(p)
	if !ok {
		return false, false
	}
	return r.overlay[i]&overlayMove != 0, r.overlay[i]&overlayAttack != 0
}

func (r *GridRenderer) index(p pathfind.Point) (int, bool) {
	if r.width == 0 || p.X < 0 || p.Y < 0 || p.X >= r.width {
		return 0, false
	}
	i := p.Y*r.width + p.X
	return i, i < len(r.overlay)
}

// Draw renders the cached map image through the camera
func (r *GridRenderer) Draw(screen *ebiten.Image) {
	if !r.tm.Valid() {
		return
	}
	if r.dirty || r.cache == nil {
		r.rebuild()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Camera.Zoom, r.Camera.Zoom)
	x, y := r.Camera.GridToScreen(0, 0)
	op.GeoM.Translate(x, y)
	screen.DrawImage(r.cache, op)
}

func (r *GridRenderer) rebuild() {
	ts := r.Camera.TileSize
	w, h := r.tm.Width*ts, r.tm.Height*ts
	if r.cache == nil || r.cache.Bounds().Dx() != w || r.cache.Bounds().Dy() != h {
		if r.cache != nil {
			r.cache.Deallocate()
		}
		r.cache = ebiten.NewImage(w, h)
	}
	r.cache.Clear()

	fts := float32(ts)
	for y := 0; y < r.tm.Height; y++ {
		for x := 0; x < r.tm.Width; x++ {
			t, _ := r.tm.At(x, y)
			px, py := float32(x)*fts, float32(y)*fts
			vector.DrawFilledRect(r.cache, px, py, fts, fts, TileColors[t], false)
			if t != maplib.TileBlocked {
				inMove, inAttack := r.Overlay(pathfind.Point{X: x, Y: y})
				switch {
				case inMove:
					vector.DrawFilledRect(r.cache, px, py, fts, fts, MovementTint, false)
				case inAttack:
					vector.DrawFilledRect(r.cache, px, py, fts, fts, AttackTint, false)
				}
			}
			vector.StrokeRect(r.cache, px, py, fts, fts, 1, GridLine, false)
		}
	}
	r.dirty = false
}

// DrawActors draws every actor as a disc. The actor being walked by mover is drawn
// at the mover's position instead of its tile.
func (r *GridRenderer) DrawActors(screen *ebiten.Image, actors []*systems.Actor, mover *systems.Mover) {
	radius := float32(r.Camera.ScaledTile() * 0.35)
	for _, a := range actors {
		gx, gy := float64(a.Pos.X)+0.5, float64(a.Pos.Y)+0.5
		if mover != nil && mover.Actor() == a {
			gx, gy = mover.Position()
		}
		sx, sy := r.Camera.GridToScreen(gx, gy)
		clr := EnemyColor
		if a.Side == systems.SidePlayer {
			clr = PlayerColor
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius, clr, true)
	}
}
