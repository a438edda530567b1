package render

import (
	"math"

	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

// Camera is a top-down viewport over the tile grid. Grid row 0 is at the top.
type Camera struct {
	X, Y     float64 // camera center position (world pixels)
	Zoom     float64 // zoom level (1.0 = default)
	MinZoom  float64
	MaxZoom  float64
	ScreenW  int     // viewport width in pixels
	ScreenH  int     // viewport height in pixels
	Speed    float64 // pan speed (pixels per second)
	TileSize int
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:     1.0,
		MinZoom:  0.25,
		MaxZoom:  4.0,
		ScreenW:  screenW,
		ScreenH:  screenH,
		Speed:    500,
		TileSize: 32,
	}
}

// Pan moves the camera by a screen pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms while keeping the world point under (screenX, screenY) in place
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	wx, wy := c.ScreenToWorld(float64(screenX), float64(screenY))
	c.SetZoom(c.Zoom + delta)
	wx2, wy2 := c.ScreenToWorld(float64(screenX), float64(screenY))
	c.X += wx - wx2
	c.Y += wy - wy2
}

// CenterOnGrid centers the camera on the middle of a w x h grid
func (c *Camera) CenterOnGrid(w, h int) {
	ts := float64(c.TileSize)
	c.X = float64(w) * ts / 2
	c.Y = float64(h) * ts / 2
}

// WorldToScreen converts world pixels to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts screen pixels to world pixels
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-float64(c.ScreenW)/2)/c.Zoom + c.X
	wy := (sy-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return wx, wy
}

// GridToScreen returns the screen position of a point given in tile units.
// Whole numbers are tile corners; add 0.5 for a tile center.
func (c *Camera) GridToScreen(gx, gy float64) (float64, float64) {
	ts := float64(c.TileSize)
	return c.WorldToScreen(gx*ts, gy*ts)
}

// ScreenToGrid returns the tile under a screen pixel. The point may lie outside the map.
func (c *Camera) ScreenToGrid(sx, sy int) pathfind.Point {
	wx, wy := c.ScreenToWorld(float64(sx), float64(sy))
	ts := float64(c.TileSize)
	return pathfind.Point{X: int(math.Floor(wx / ts)), Y: int(math.Floor(wy / ts))}
}

// ScaledTile returns the on-screen size of one tile
func (c *Camera) ScaledTile() float64 {
	return float64(c.TileSize) * c.Zoom
}
