package systems

import (
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

// Outcome is the result of a pathfinding click
type Outcome uint8

const (
	OutcomeIgnored Outcome = iota
	OutcomeMove
	OutcomeAttack
	OutcomeOutOfRange
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMove:
		return "move"
	case OutcomeAttack:
		return "attack"
	case OutcomeOutOfRange:
		return "out-of-range"
	}
	return "ignored"
}

// Orders turns clicks into player moves and attack-moves
type Orders struct {
	Board *Board
	Mover *Mover

	// Path and AttackPath hold the routes of the latest order, for display
	Path       []pathfind.Point
	AttackPath []pathfind.Point
}

func NewOrders(b *Board, m *Mover) *Orders {
	return &Orders{Board: b, Mover: m}
}

// Click issues the order implied by clicking tile p
func (o *Orders) Click(p pathfind.Point) Outcome {
	if o.Mover.Moving() {
		return OutcomeIgnored
	}
	player := o.Board.Player()
	if player == nil {
		return OutcomeIgnored
	}
	if t, ok := o.Board.Map.At(p.X, p.Y); !ok || t == maplib.TileBlocked {
		return OutcomeIgnored
	}

	if occ, ok := o.Board.OccupantAt(p); ok && occ != player {
		if !player.Ranges.InAttack(p) {
			return o.outOfRange(p)
		}
		if !o.attack(player, p) {
			return OutcomeIgnored
		}
		return OutcomeAttack
	}

	if !player.Ranges.InMovement(p) {
		return o.outOfRange(p)
	}
	if !o.move(player, p) {
		return OutcomeIgnored
	}
	return OutcomeMove
}

func (o *Orders) move(player *Actor, target pathfind.Point) bool {
	path, ok := o.Board.FindPath(player.Pos, target, false, player.MoveRange, o.Path)
	o.Path = path
	o.AttackPath = o.AttackPath[:0]
	if !ok || len(path) == 0 {
		return false
	}
	bus := o.Board.Bus
	o.Mover.MoveAlongPath(player, path, func() {
		o.Board.MoveActor(player, target)
		bus.Emit(core.EvtMoveComplete, player)
	})
	bus.Emit(core.EvtMoveStarted, player)
	return true
}

func (o *Orders) attack(player *Actor, enemy pathfind.Point) bool {
	plan, ok := PlanAttack(o.Board, player, enemy)
	if !ok {
		return false
	}
	o.Path = append(o.Path[:0], plan.MovePath...)
	o.AttackPath = append(o.AttackPath[:0], plan.AttackPath...)

	bus := o.Board.Bus
	o.Mover.MoveAlongPath(player, plan.MovePath, func() {
		o.Board.MoveActor(player, plan.From)
		o.AttackPath = o.AttackPath[:0]
		if target, ok := o.Board.OccupantAt(enemy); ok && target != player {
			o.Board.Remove(enemy)
		}
		bus.Emit(core.EvtAttackResolved, enemy)
	})
	bus.Emit(core.EvtMoveStarted, player)
	return true
}

func (o *Orders) outOfRange(p pathfind.Point) Outcome {
	o.Path = o.Path[:0]
	o.AttackPath = o.AttackPath[:0]
	o.Board.Bus.Emit(core.EvtOutOfRange, p)
	return OutcomeOutOfRange
}
