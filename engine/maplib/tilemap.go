package maplib

import (
	"errors"
	"fmt"
	"strings"
)

// Map size limits accepted by Resize
const (
	MinMapSize = 1
	MaxMapSize = 100
)

// ErrInvalidMap is returned when map data does not describe a rectangular grid
var ErrInvalidMap = errors.New("maplib: invalid map")

// ChangeListener is called after the map's tiles or dimensions change
type ChangeListener func(tm *TileMap)

// TileMap is the editable source map. Tiles are stored row-major (index = y*Width + x).
type TileMap struct {
	Name   string
	Width  int
	Height int
	Tiles  []TileType

	listeners []ChangeListener
}

// NewTileMap creates a map with every tile open
func NewTileMap(name string, width, height int) *TileMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &TileMap{
		Name:   name,
		Width:  width,
		Height: height,
		Tiles:  make([]TileType, width*height),
	}
}

// FromRows builds a map from rune rows ('.' open, '#' blocked, 'c' cover).
// rows[0] is y = 0.
func FromRows(name string, rows []string) (*TileMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidMap)
	}
	width := len([]rune(rows[0]))
	tm := NewTileMap(name, width, len(rows))
	for y, row := range rows {
		rs := []rune(row)
		if len(rs) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidMap, y, len(rs), width)
		}
		for x, r := range rs {
			t, ok := TileTypeFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrInvalidMap, r, x, y)
			}
			tm.Tiles[y*width+x] = t
		}
	}
	return tm, nil
}

// MustFromRows is FromRows for fixtures; it panics on malformed rows
func MustFromRows(name string, rows ...string) *TileMap {
	tm, err := FromRows(name, rows)
	if err != nil {
		panic(err)
	}
	return tm
}

// Rows renders the map as rune rows, the inverse of FromRows
func (tm *TileMap) Rows() []string {
	rows := make([]string, tm.Height)
	var sb strings.Builder
	for y := 0; y < tm.Height; y++ {
		sb.Reset()
		for x := 0; x < tm.Width; x++ {
			sb.WriteRune(tm.Tiles[y*tm.Width+x].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// Valid reports whether the dimensions and tile data agree
func (tm *TileMap) Valid() bool {
	return tm != nil && tm.Width > 0 && tm.Height > 0 && len(tm.Tiles) == tm.Width*tm.Height
}

// InBounds checks if coordinates are within map bounds
func (tm *TileMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < tm.Width && y < tm.Height
}

// At returns the tile at (x, y)
func (tm *TileMap) At(x, y int) (TileType, bool) {
	if !tm.Valid() || !tm.InBounds(x, y) {
		return TileOpen, false
	}
	return tm.Tiles[y*tm.Width+x], true
}

// Set changes the tile at (x, y) and notifies listeners. It reports whether anything changed.
func (tm *TileMap) Set(x, y int, t TileType) bool {
	if !tm.Valid() || !tm.InBounds(x, y) {
		return false
	}
	idx := y*tm.Width + x
	if tm.Tiles[idx] == t {
		return false
	}
	tm.Tiles[idx] = t
	tm.notify()
	return true
}

// Fill sets a rectangular region (inclusive) without firing per-tile notifications
func (tm *TileMap) Fill(x1, y1, x2, y2 int, t TileType) {
	changed := false
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if !tm.InBounds(x, y) {
				continue
			}
			if tm.Tiles[y*tm.Width+x] != t {
				tm.Tiles[y*tm.Width+x] = t
				changed = true
			}
		}
	}
	if changed {
		tm.notify()
	}
}

// Resize changes the map dimensions, keeping tiles in the overlapping rectangle.
// Sizes outside MinMapSize..MaxMapSize and unchanged sizes are rejected.
func (tm *TileMap) Resize(width, height int) bool {
	if width < MinMapSize || height < MinMapSize || width > MaxMapSize || height > MaxMapSize {
		return false
	}
	if width == tm.Width && height == tm.Height {
		return false
	}
	tiles := make([]TileType, width*height)
	if len(tm.Tiles) == tm.Width*tm.Height {
		minW := min(tm.Width, width)
		minH := min(tm.Height, height)
		for y := 0; y < minH; y++ {
			copy(tiles[y*width:y*width+minW], tm.Tiles[y*tm.Width:y*tm.Width+minW])
		}
	}
	tm.Width = width
	tm.Height = height
	tm.Tiles = tiles
	tm.notify()
	return true
}

// OnChange registers a listener for tile or size changes
func (tm *TileMap) OnChange(l ChangeListener) {
	tm.listeners = append(tm.listeners, l)
}

func (tm *TileMap) notify() {
	for _, l := range tm.listeners {
		l(tm)
	}
}

// Clone returns a copy of the map without its listeners
func (tm *TileMap) Clone() *TileMap {
	return &TileMap{
		Name:   tm.Name,
		Width:  tm.Width,
		Height: tm.Height,
		Tiles:  append([]TileType(nil), tm.Tiles...),
	}
}

// Assign replaces the map's name, size and tiles with src's and notifies listeners
func (tm *TileMap) Assign(src *TileMap) {
	tm.Name = src.Name
	tm.Width = src.Width
	tm.Height = src.Height
	tm.Tiles = append(tm.Tiles[:0:0], src.Tiles...)
	tm.notify()
}
