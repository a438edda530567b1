package pathfind

import "github.com/1siamBot/tactics-engine/engine/maplib"

// RangeMarker receives range membership changes for display.
// MarkRange(p, false, false) clears a tile that left both sets.
type RangeMarker interface {
	MarkRange(p Point, inMovement, inAttack bool)
}

type bfsEntry struct {
	pos  Point
	dist int
}

// RangeCalculator derives the movement and attack sets of an actor with two bounded
// breadth-first passes. Its scratch buffers and result slices are reused across calls.
type RangeCalculator struct {
	// Marker, when set, is told which tiles left and entered the sets after each Calculate
	Marker RangeMarker

	width    int
	visited  []bool
	queue    []bfsEntry
	seed     [1]Point
	movement []Point
	attack   []Point
	inMove   []bool
	inAttack []bool
	marked   []Point
}

// NewRangeCalculator creates an empty calculator
func NewRangeCalculator() *RangeCalculator {
	return &RangeCalculator{}
}

// Calculate recomputes both sets for an actor standing on origin.
//
// Movement spreads from origin through open tiles only, up to moveBudget steps, and
// includes origin. Attack spreads from every movement tile through open and cover
// tiles, up to attackBudget steps from the nearest movement tile, and includes all
// movement tiles. The returned slices are owned by the calculator and stay valid
// until the next call.
func (rc *RangeCalculator) Calculate(g *Grid, origin Point, moveBudget, attackBudget int) (movement, attack []Point) {
	rc.movement = rc.movement[:0]
	rc.attack = rc.attack[:0]

	if _, ok := g.Get(origin); !ok {
		rc.resize(0, 0)
		rc.remark()
		return rc.movement, rc.attack
	}
	rc.resize(g.Width(), g.Height())

	rc.seed[0] = origin
	rc.movement = rc.flood(g, rc.movement, rc.seed[:], moveBudget, true)
	rc.attack = rc.flood(g, rc.attack, rc.movement, attackBudget, false)

	for _, p := range rc.movement {
		rc.inMove[g.index(p)] = true
	}
	for _, p := range rc.attack {
		rc.inAttack[g.index(p)] = true
	}
	rc.remark()
	return rc.movement, rc.attack
}

// Movement returns the latest movement set
func (rc *RangeCalculator) Movement() []Point { return rc.movement }

// Attack returns the latest attack set
func (rc *RangeCalculator) Attack() []Point { return rc.attack }

// InMovement reports whether p is in the latest movement set
func (rc *RangeCalculator) InMovement(p Point) bool {
	return rc.member(rc.inMove, p)
}

// InAttack reports whether p is in the latest attack set
func (rc *RangeCalculator) InAttack(p Point) bool {
	return rc.member(rc.inAttack, p)
}

// Reset empties both sets and clears any marks
func (rc *RangeCalculator) Reset() {
	rc.movement = rc.movement[:0]
	rc.attack = rc.attack[:0]
	rc.resize(0, 0)
	rc.remark()
}

func (rc *RangeCalculator) member(mask []bool, p Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= rc.width {
		return false
	}
	i := p.Y*rc.width + p.X
	return i < len(mask) && mask[i]
}

// flood runs one bounded BFS phase. Sources are deduplicated and always emitted;
// blockCover additionally stops expansion into soft cover.
func (rc *RangeCalculator) flood(g *Grid, out, sources []Point, budget int, blockCover bool) []Point {
	clear(rc.visited)
	rc.queue = rc.queue[:0]

	for _, p := range sources {
		if !g.InBounds(p) {
			continue
		}
		i := g.index(p)
		if rc.visited[i] {
			continue
		}
		rc.visited[i] = true
		out = append(out, p)
		rc.queue = append(rc.queue, bfsEntry{pos: p, dist: 0})
	}

	for head := 0; head < len(rc.queue); head++ {
		e := rc.queue[head]
		if e.dist >= budget {
			continue
		}
		n, _ := g.Get(e.pos)
		for _, nb := range n.neighbors {
			i := g.index(nb.pos)
			if rc.visited[i] {
				continue
			}
			if nb.tile == maplib.TileBlocked || (blockCover && nb.tile == maplib.TileCover) {
				continue
			}
			rc.visited[i] = true
			out = append(out, nb.pos)
			rc.queue = append(rc.queue, bfsEntry{pos: nb.pos, dist: e.dist + 1})
		}
	}
	return out
}

// resize prepares the masks for a w*h grid, clearing them
func (rc *RangeCalculator) resize(w, h int) {
	size := w * h
	rc.width = w
	if cap(rc.visited) < size {
		rc.visited = make([]bool, size)
		rc.inMove = make([]bool, size)
		rc.inAttack = make([]bool, size)
		return
	}
	rc.visited = rc.visited[:size]
	rc.inMove = rc.inMove[:size]
	rc.inAttack = rc.inAttack[:size]
	clear(rc.inMove)
	clear(rc.inAttack)
}

// remark clears the previously marked tiles, then marks the current sets
func (rc *RangeCalculator) remark() {
	if rc.Marker == nil {
		return
	}
	for _, p := range rc.marked {
		rc.Marker.MarkRange(p, false, false)
	}
	rc.marked = rc.marked[:0]
	// The attack set contains every movement tile.
	for _, p := range rc.attack {
		rc.Marker.MarkRange(p, rc.InMovement(p), true)
		rc.marked = append(rc.marked, p)
	}
}
