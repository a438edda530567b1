package render

import (
	"image/color"

	"github.com/1siamBot/tactics-engine/engine/pathfind"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	PathColor       = color.RGBA{250, 200, 0, 255}
	AttackPathColor = color.RGBA{255, 60, 60, 255}
)

// DrawPath draws a polyline through the tile centers of path. Paths of one node or
// fewer are not drawn.
func DrawPath(screen *ebiten.Image, cam *Camera, path []pathfind.Point, clr color.Color) {
	if len(path) <= 1 {
		return
	}
	width := float32(cam.ScaledTile() * 0.12)
	px, py := cam.GridToScreen(float64(path[0].X)+0.5, float64(path[0].Y)+0.5)
	for _, p := range path[1:] {
		x, y := cam.GridToScreen(float64(p.X)+0.5, float64(p.Y)+0.5)
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), width, clr, true)
		px, py = x, y
	}
	end := path[len(path)-1]
	ex, ey := cam.GridToScreen(float64(end.X)+0.5, float64(end.Y)+0.5)
	vector.DrawFilledCircle(screen, float32(ex), float32(ey), width*1.5, clr, true)
}
