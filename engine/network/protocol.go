package network

import (
	"errors"

	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

// ErrUnknownRequest is reported for a request type the service does not handle
var ErrUnknownRequest = errors.New("network: unknown request type")

// Request types
const (
	ReqPath   = "path"
	ReqRange  = "range"
	ReqLookup = "lookup"
	ReqMap    = "map"
	ReqPlace  = "place"
)

// Coord is a tile coordinate on the wire
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) point() pathfind.Point { return pathfind.Point{X: c.X, Y: c.Y} }

func coords(ps []pathfind.Point) []Coord {
	out := make([]Coord, len(ps))
	for i, p := range ps {
		out[i] = Coord{X: p.X, Y: p.Y}
	}
	return out
}

// Request is a client query. Fields not used by Type are ignored.
type Request struct {
	ID   uint64 `json:"id,omitempty"`
	Type string `json:"type"`

	From       Coord `json:"from"`
	To         Coord `json:"to"`
	AllowCover bool  `json:"allowCover,omitempty"`
	// Budget caps path length; nil means unlimited
	Budget *int `json:"budget,omitempty"`

	Move   int `json:"move,omitempty"`
	Attack int `json:"attack,omitempty"`

	// Rows replaces the map when set on a map request
	Rows []string `json:"rows,omitempty"`
	// Side is "player" or "enemy" for place requests
	Side string `json:"side,omitempty"`
}

// Response answers one Request
type Response struct {
	ID    uint64 `json:"id,omitempty"`
	Type  string `json:"type"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	Path     []Coord `json:"path,omitempty"`
	Movement []Coord `json:"movement,omitempty"`
	Attack   []Coord `json:"attack,omitempty"`

	Tile     string `json:"tile,omitempty"`
	Occupant string `json:"occupant,omitempty"`

	Width  int      `json:"width,omitempty"`
	Height int      `json:"height,omitempty"`
	Rows   []string `json:"rows,omitempty"`
}
