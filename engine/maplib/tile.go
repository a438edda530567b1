package maplib

import "fmt"

// TileType classifies a tile for movement and attack propagation
type TileType uint8

const (
	TileOpen    TileType = iota // walkable
	TileBlocked                 // blocks movement, paths and attack range
	TileCover                   // soft cover: blocks movement, not attack range
	tileTypeCount
)

// Next returns the following classification, wrapping after the last one
func (t TileType) Next() TileType {
	return (t + 1) % tileTypeCount
}

// Previous returns the preceding classification, wrapping before the first one
func (t TileType) Previous() TileType {
	if t == 0 || t >= tileTypeCount {
		return tileTypeCount - 1
	}
	return t - 1
}

func (t TileType) String() string {
	switch t {
	case TileOpen:
		return "open"
	case TileBlocked:
		return "blocked"
	case TileCover:
		return "cover"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Rune returns the character used for t in map rows
func (t TileType) Rune() rune {
	switch t {
	case TileBlocked:
		return '#'
	case TileCover:
		return 'c'
	default:
		return '.'
	}
}

// TileTypeFromRune parses a map row character
func TileTypeFromRune(r rune) (TileType, bool) {
	switch r {
	case '.':
		return TileOpen, true
	case '#':
		return TileBlocked, true
	case 'c', 'C':
		return TileCover, true
	}
	return TileOpen, false
}
