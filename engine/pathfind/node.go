package pathfind

import (
	"math"

	"github.com/1siamBot/tactics-engine/engine/maplib"
)

// Unvisited is the accumulated-cost sentinel of a node not yet reached by a search
const Unvisited = math.MaxInt32

// Score is the cost record of a search candidate
type Score struct {
	G     int // accumulated step cost from the source
	H     int // estimated remaining cost to the target
	Turns int // direction changes along the path so far
}

// F returns the estimated total cost G+H
func (s Score) F() int { return s.G + s.H }

// Less orders scores for the open queue: lower F, then lower H, then fewer turns.
// Equal scores are not less than each other.
func (s Score) Less(o Score) bool {
	if s.F() != o.F() {
		return s.F() < o.F()
	}
	if s.H != o.H {
		return s.H < o.H
	}
	return s.Turns < o.Turns
}

// Node is the search-facing record of one grid tile. Nodes live in their Grid's
// arena and are only reachable through it.
type Node struct {
	pos       Point
	tile      maplib.TileType
	neighbors []*Node

	score      Score
	prev       *Node
	enterAngle int
	index      int // slot in the open queue, -1 when not queued
}

// Pos returns the node's grid coordinate
func (n *Node) Pos() Point { return n.pos }

// Tile returns the node's classification
func (n *Node) Tile() maplib.TileType { return n.tile }

// Neighbors returns the in-bounds cardinal neighbors in N, E, S, W order
func (n *Node) Neighbors() []*Node { return n.neighbors }

// Score returns the cost record of the latest search
func (n *Node) Score() Score { return n.score }

// Prev returns the predecessor on the best known path, nil if not reached
func (n *Node) Prev() *Node { return n.prev }

// EnterAngle returns the heading bucket the path used to enter n, or -1 for a source
func (n *Node) EnterAngle() int { return n.enterAngle }

// Visited reports whether the latest search reached n
func (n *Node) Visited() bool { return n.score.G != Unvisited }

func (n *Node) reset() {
	n.score = Score{G: Unvisited}
	n.prev = nil
	n.enterAngle = angleUnset
	n.index = -1
}

// replaces reports whether candidate s should overwrite n's current record.
// A node that is not queued, or was never reached, always accepts.
func replaces(queued bool, s Score, n *Node) bool {
	if !queued || n.prev == nil {
		return true
	}
	return s.Less(n.score)
}
