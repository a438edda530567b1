package systems

import (
	"cmp"
	"slices"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

// Board ties the editable map to its navigation grid and the actors standing on it.
// Map edits are picked up on the next EventBus.Dispatch.
type Board struct {
	Map *maplib.TileMap
	Bus *core.EventBus

	grid   *pathfind.Grid
	finder *pathfind.Pathfinder
	actors map[pathfind.Point]*Actor
	player *Actor
	nextID ActorID
}

// NewBoard builds the grid for tm and subscribes to its changes
func NewBoard(tm *maplib.TileMap, bus *core.EventBus) *Board {
	b := &Board{
		Map:    tm,
		Bus:    bus,
		actors: make(map[pathfind.Point]*Actor),
	}
	tm.OnChange(func(m *maplib.TileMap) { bus.Emit(core.EvtMapChanged, m) })
	bus.On(core.EvtMapChanged, func(core.Event) { b.Rebuild() })
	b.Rebuild()
	return b
}

// Grid returns the current navigation grid
func (b *Board) Grid() *pathfind.Grid { return b.grid }

// Pathfinder returns the pathfinder bound to the current grid
func (b *Board) Pathfinder() *pathfind.Pathfinder { return b.finder }

// Player returns the player actor, or nil when none is placed
func (b *Board) Player() *Actor { return b.player }

// Rebuild replaces the grid after a map change and drops actors that no longer
// stand on an open tile.
func (b *Board) Rebuild() {
	if b.grid != nil {
		b.grid.Dispose()
	}
	b.grid = pathfind.NewGrid(b.Map)
	b.finder = pathfind.NewPathfinder(b.grid)
	b.Bus.Emit(core.EvtPathfindingUpdated, b.grid)

	for p, a := range b.actors {
		if t, ok := b.Map.At(p.X, p.Y); !ok || t != maplib.TileOpen {
			b.remove(p, a)
		}
	}
	if b.player != nil {
		b.player.Recalculate(b)
	}
}

// OccupantAt returns the actor standing on p
func (b *Board) OccupantAt(p pathfind.Point) (*Actor, bool) {
	a, ok := b.actors[p]
	return a, ok
}

// Actors returns every actor ordered by ID
func (b *Board) Actors() []*Actor {
	out := make([]*Actor, 0, len(b.actors))
	for _, a := range b.actors {
		out = append(out, a)
	}
	slices.SortFunc(out, func(x, y *Actor) int { return cmp.Compare(x.ID, y.ID) })
	return out
}

// CanPlace reports whether p is an open, unoccupied tile
func (b *Board) CanPlace(p pathfind.Point) bool {
	t, ok := b.Map.At(p.X, p.Y)
	if !ok || t != maplib.TileOpen {
		return false
	}
	_, taken := b.actors[p]
	return !taken
}

// PlacePlayer puts the player on p, moving it if it already exists
func (b *Board) PlacePlayer(p pathfind.Point) (*Actor, bool) {
	if !b.CanPlace(p) {
		return nil, false
	}
	if b.player == nil {
		b.player = b.add(SidePlayer, p)
	} else {
		delete(b.actors, b.player.Pos)
		b.player.Pos = p
		b.actors[p] = b.player
		b.Bus.Emit(core.EvtActorPlaced, b.player)
	}
	b.player.Recalculate(b)
	return b.player, true
}

// PlaceEnemy adds an enemy on p
func (b *Board) PlaceEnemy(p pathfind.Point) (*Actor, bool) {
	if !b.CanPlace(p) {
		return nil, false
	}
	return b.add(SideEnemy, p), true
}

// Remove takes the actor on p off the board
func (b *Board) Remove(p pathfind.Point) bool {
	a, ok := b.actors[p]
	if !ok {
		return false
	}
	b.remove(p, a)
	return true
}

// MoveActor relocates a to the tile to. The player's ranges follow it.
func (b *Board) MoveActor(a *Actor, to pathfind.Point) bool {
	if cur, ok := b.actors[a.Pos]; !ok || cur != a {
		return false
	}
	if other, ok := b.actors[to]; ok && other != a {
		return false
	}
	if !b.Map.InBounds(to.X, to.Y) {
		return false
	}
	delete(b.actors, a.Pos)
	a.Pos = to
	b.actors[to] = a
	if a == b.player {
		a.Recalculate(b)
	}
	return true
}

// SetPlayerRanges changes the player's budgets and recalculates when they differ
func (b *Board) SetPlayerRanges(attack, move int) bool {
	if b.player == nil || !b.player.SetRanges(attack, move) {
		return false
	}
	b.player.Recalculate(b)
	return true
}

// FindPath searches the current grid; see pathfind.Pathfinder.FindPath
func (b *Board) FindPath(start, target pathfind.Point, allowCover bool, budget int, buf []pathfind.Point) ([]pathfind.Point, bool) {
	return b.finder.FindPath(start, target, allowCover, budget, buf)
}

func (b *Board) add(side Side, p pathfind.Point) *Actor {
	b.nextID++
	a := newActor(b.nextID, side, p)
	b.actors[p] = a
	b.Bus.Emit(core.EvtActorPlaced, a)
	return a
}

func (b *Board) remove(p pathfind.Point, a *Actor) {
	delete(b.actors, p)
	if a == b.player {
		b.player = nil
		a.Ranges.Reset()
	}
	b.Bus.Emit(core.EvtActorRemoved, a)
}
