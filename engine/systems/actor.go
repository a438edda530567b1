package systems

import (
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

// Range defaults and limits, in tiles
const (
	DefaultMoveRange   = 5
	DefaultAttackRange = 3
	MinRange           = 1
	MaxRange           = 100
)

type ActorID uint32

// Side separates the player from enemies
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Actor is a unit occupying one board tile
type Actor struct {
	ID          ActorID
	Side        Side
	Pos         pathfind.Point
	MoveRange   int
	AttackRange int
	Ranges      *pathfind.RangeCalculator
}

func newActor(id ActorID, side Side, pos pathfind.Point) *Actor {
	return &Actor{
		ID:          id,
		Side:        side,
		Pos:         pos,
		MoveRange:   DefaultMoveRange,
		AttackRange: DefaultAttackRange,
		Ranges:      pathfind.NewRangeCalculator(),
	}
}

// SetRanges updates both budgets, clamped to MinRange..MaxRange.
// It reports whether either value changed.
func (a *Actor) SetRanges(attack, move int) bool {
	attack = clampRange(attack)
	move = clampRange(move)
	if attack == a.AttackRange && move == a.MoveRange {
		return false
	}
	a.AttackRange = attack
	a.MoveRange = move
	return true
}

// Recalculate refreshes the movement and attack sets against the board's grid
func (a *Actor) Recalculate(b *Board) {
	a.Ranges.Calculate(b.Grid(), a.Pos, a.MoveRange, a.AttackRange)
	b.Bus.Emit(core.EvtRangeUpdated, a.ID)
}

func clampRange(v int) int {
	return max(MinRange, min(MaxRange, v))
}
