package systems

import (
	"math"

	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

// DefaultSpeed is the walking speed in tiles per second
const DefaultSpeed = 2.0

// arriveDist is how close counts as standing on a waypoint
const arriveDist = 0.01

// Mover walks one actor along a path, one waypoint center at a time
type Mover struct {
	Speed float64

	actor  *Actor
	path   []pathfind.Point
	idx    int
	x, y   float64
	onDone func()
}

// NewMover creates an idle mover at DefaultSpeed
func NewMover() *Mover {
	return &Mover{Speed: DefaultSpeed}
}

// MoveAlongPath starts walking a along path and runs onDone once on arrival.
// It refuses while already moving or when path is empty.
func (m *Mover) MoveAlongPath(a *Actor, path []pathfind.Point, onDone func()) bool {
	if m.Moving() || a == nil || len(path) == 0 {
		return false
	}
	m.actor = a
	m.path = append(m.path[:0], path...)
	m.idx = 0
	m.x, m.y = tileCenter(a.Pos)
	m.onDone = onDone
	return true
}

// Moving reports whether a walk is in progress
func (m *Mover) Moving() bool {
	return m.actor != nil && m.idx < len(m.path)
}

// Actor returns the actor being moved, or nil when idle
func (m *Mover) Actor() *Actor {
	if !m.Moving() {
		return nil
	}
	return m.actor
}

// Position returns the walking actor's position in tile units (tile centers at +0.5)
func (m *Mover) Position() (x, y float64) { return m.x, m.y }

// Update advances the walk by dt seconds
func (m *Mover) Update(dt float64) {
	if !m.Moving() {
		return
	}
	step := m.Speed * dt
	for m.idx < len(m.path) {
		tx, ty := tileCenter(m.path[m.idx])
		dx, dy := tx-m.x, ty-m.y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist <= step || dist < arriveDist {
			m.x, m.y = tx, ty
			step -= dist
			m.idx++
			continue
		}
		// Seek toward the current waypoint
		m.x += dx / dist * step
		m.y += dy / dist * step
		break
	}
	if m.idx < len(m.path) {
		return
	}

	done := m.onDone
	m.actor = nil
	m.path = m.path[:0]
	m.onDone = nil
	if done != nil {
		done()
	}
}

func tileCenter(p pathfind.Point) (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}
