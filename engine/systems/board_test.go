package systems

import (
	"testing"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

func newBoard(rows ...string) *Board {
	return NewBoard(maplib.MustFromRows("test", rows...), core.NewEventBus())
}

func pt(x, y int) pathfind.Point { return pathfind.Point{X: x, Y: y} }

func TestBoard_PlaceOnlyOnOpenFreeTiles(t *testing.T) {
	b := newBoard(".#c..")
	if _, ok := b.PlacePlayer(pt(1, 0)); ok {
		t.Fatal("blocked tile should be rejected")
	}
	if _, ok := b.PlaceEnemy(pt(2, 0)); ok {
		t.Fatal("cover tile should be rejected")
	}
	if _, ok := b.PlaceEnemy(pt(9, 0)); ok {
		t.Fatal("out of bounds tile should be rejected")
	}
	if _, ok := b.PlaceEnemy(pt(3, 0)); !ok {
		t.Fatal("open tile should accept an enemy")
	}
	if _, ok := b.PlacePlayer(pt(3, 0)); ok {
		t.Fatal("occupied tile should be rejected")
	}
}

func TestBoard_PlayerIsUnique(t *testing.T) {
	b := newBoard(".....")
	first, _ := b.PlacePlayer(pt(0, 0))
	second, ok := b.PlacePlayer(pt(4, 0))
	if !ok || first != second {
		t.Fatal("placing again should move the existing player")
	}
	if _, ok := b.OccupantAt(pt(0, 0)); ok {
		t.Fatal("old tile should be free")
	}
	if occ, _ := b.OccupantAt(pt(4, 0)); occ != first {
		t.Fatal("player should occupy the new tile")
	}
	if len(b.Actors()) != 1 {
		t.Fatalf("expected one actor, got %d", len(b.Actors()))
	}
	if first.Ranges.Movement()[0] != pt(4, 0) {
		t.Fatalf("ranges should follow the player, got %v", first.Ranges.Movement())
	}
}

func TestBoard_RebuildOnMapChange(t *testing.T) {
	b := newBoard(".....")
	var updated int
	b.Bus.On(core.EvtPathfindingUpdated, func(core.Event) { updated++ })
	old := b.Grid()
	b.Map.Set(2, 0, maplib.TileBlocked)
	if b.Grid() != old {
		t.Fatal("grid should not change before dispatch")
	}
	b.Bus.Dispatch()
	if b.Grid() == old || !old.Disposed() {
		t.Fatal("map change should replace and dispose the grid")
	}
	if updated == 0 {
		t.Fatal("expected a pathfinding-updated event")
	}
	if _, ok := b.FindPath(pt(0, 0), pt(4, 0), false, pathfind.Unlimited, nil); ok {
		t.Fatal("new grid should see the wall")
	}
}

func TestBoard_RebuildRemovesStrandedActors(t *testing.T) {
	b := newBoard(
		".....",
		".....",
	)
	player, _ := b.PlacePlayer(pt(4, 1))
	b.PlaceEnemy(pt(1, 0))
	keep, _ := b.PlaceEnemy(pt(0, 0))
	var removed []*Actor
	b.Bus.On(core.EvtActorRemoved, func(e core.Event) { removed = append(removed, e.Payload.(*Actor)) })

	b.Map.Set(1, 0, maplib.TileCover)
	b.Map.Resize(3, 1)
	b.Bus.Dispatch()

	if len(removed) != 2 {
		t.Fatalf("expected 2 removals, got %d", len(removed))
	}
	if b.Player() != nil {
		t.Fatal("player outside the new bounds should be removed")
	}
	if len(player.Ranges.Movement()) != 0 {
		t.Fatal("removed player's ranges should be cleared")
	}
	if occ, ok := b.OccupantAt(pt(0, 0)); !ok || occ != keep {
		t.Fatal("actor on an open tile should stay")
	}
}

func TestBoard_RecalculatesPlayerRanges(t *testing.T) {
	b := newBoard(".....")
	player, _ := b.PlacePlayer(pt(0, 0))
	if !player.Ranges.InMovement(pt(4, 0)) {
		t.Fatal("(4,0) should be reachable before the wall")
	}
	b.Map.Set(2, 0, maplib.TileBlocked)
	b.Bus.Dispatch()
	if player.Ranges.InMovement(pt(3, 0)) {
		t.Fatal("ranges should be recalculated after the map change")
	}
}

func TestBoard_SetPlayerRanges(t *testing.T) {
	b := newBoard("..........")
	player, _ := b.PlacePlayer(pt(0, 0))
	if b.SetPlayerRanges(DefaultAttackRange, DefaultMoveRange) {
		t.Fatal("unchanged ranges should be a no-op")
	}
	if !b.SetPlayerRanges(1, 2) {
		t.Fatal("new ranges should apply")
	}
	if len(player.Ranges.Movement()) != 3 || len(player.Ranges.Attack()) != 4 {
		t.Fatalf("unexpected sets: move %v attack %v", player.Ranges.Movement(), player.Ranges.Attack())
	}
	b.SetPlayerRanges(0, 1000)
	if player.AttackRange != MinRange || player.MoveRange != MaxRange {
		t.Fatalf("ranges should clamp, got %d/%d", player.AttackRange, player.MoveRange)
	}
}

func TestBoard_MoveActor(t *testing.T) {
	b := newBoard("....")
	player, _ := b.PlacePlayer(pt(0, 0))
	enemy, _ := b.PlaceEnemy(pt(3, 0))
	if b.MoveActor(player, pt(3, 0)) {
		t.Fatal("cannot move onto another actor")
	}
	if !b.MoveActor(player, pt(2, 0)) || player.Pos != pt(2, 0) {
		t.Fatal("move to a free tile should succeed")
	}
	if occ, _ := b.OccupantAt(pt(2, 0)); occ != player {
		t.Fatal("occupancy should follow the move")
	}
	if !b.Remove(enemy.Pos) || b.Remove(enemy.Pos) {
		t.Fatal("Remove should succeed exactly once")
	}
}
