package pathfind

import "github.com/1siamBot/tactics-engine/engine/maplib"

// Unlimited disables the movement budget of a path search
const Unlimited = -1

// Pathfinder runs A* searches over one Grid. Its open queue and closed bitmap are
// reused across calls, so a Pathfinder must not run two searches at once.
type Pathfinder struct {
	// IncludeStart controls whether returned paths begin with the start tile
	IncludeStart bool

	grid   *Grid
	open   NodeQueue
	closed []bool
}

// NewPathfinder creates a pathfinder bound to g
func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{
		IncludeStart: true,
		grid:         g,
	}
}

// Grid returns the grid this pathfinder searches
func (pf *Pathfinder) Grid() *Grid { return pf.grid }

// FindPath finds a least-cost, fewest-turns route from start to target.
//
// Soft cover is walkable only when allowCover is set. A non-negative budget caps the
// number of steps; pass Unlimited for no cap. The result is written into buf (cleared
// first) in start-to-target order. ok is false when either tile does not exist or the
// target cannot be reached; the returned slice is then empty.
func (pf *Pathfinder) FindPath(start, target Point, allowCover bool, budget int, buf []Point) (path []Point, ok bool) {
	path = buf[:0]
	g := pf.grid
	if g.Disposed() {
		return path, false
	}
	startNode, ok := g.Get(start)
	if !ok {
		return path, false
	}
	targetNode, ok := g.Get(target)
	if !ok {
		return path, false
	}

	pf.open.Clear()
	g.ResetSearchState()
	if len(pf.closed) != g.Len() {
		pf.closed = make([]bool, g.Len())
	} else {
		clear(pf.closed)
	}

	startNode.score = Score{G: 0, H: start.Manhattan(target)}
	pf.open.Push(startNode)

	for pf.open.Len() > 0 {
		cur := pf.open.Pop()
		if cur == targetNode {
			return pf.retrace(startNode, targetNode, path), true
		}
		pf.closed[g.index(cur.pos)] = true

		for _, nb := range cur.neighbors {
			switch nb.tile {
			case maplib.TileBlocked:
				continue
			case maplib.TileCover:
				if !allowCover {
					continue
				}
			}
			if pf.closed[g.index(nb.pos)] {
				continue
			}

			angle, turn := directionChange(cur, nb)
			s := Score{
				G:     cur.score.G + 1,
				H:     nb.pos.Manhattan(target),
				Turns: cur.score.Turns + turn,
			}
			if budget >= 0 && s.G > budget {
				continue
			}

			queued := pf.open.Contains(nb)
			if !replaces(queued, s, nb) {
				continue
			}
			nb.score = s
			nb.prev = cur
			nb.enterAngle = angle
			if queued {
				pf.open.Rebalance(nb)
			} else {
				pf.open.Push(nb)
			}
		}
	}
	return path, false
}

// retrace walks predecessor links from target back to start, then reverses
func (pf *Pathfinder) retrace(start, target *Node, path []Point) []Point {
	for n := target; n != nil && n != start; n = n.prev {
		path = append(path, n.pos)
	}
	if pf.IncludeStart {
		path = append(path, start.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// directionChange returns the heading used to step from -> to and whether it differs
// from the heading used to enter from. Leaving a source never counts as a turn.
func directionChange(from, to *Node) (angle, turn int) {
	angle = entryAngle(to.pos.X-from.pos.X, to.pos.Y-from.pos.Y)
	if from.enterAngle == angleUnset || from.enterAngle == angle {
		return angle, 0
	}
	return angle, 1
}
