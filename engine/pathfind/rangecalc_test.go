package pathfind

import (
	"testing"

	"github.com/1siamBot/tactics-engine/engine/maplib"
)

type recordingMarker struct {
	state map[Point][2]bool
	calls int
}

func newRecordingMarker() *recordingMarker {
	return &recordingMarker{state: make(map[Point][2]bool)}
}

func (m *recordingMarker) MarkRange(p Point, inMovement, inAttack bool) {
	m.calls++
	if !inMovement && !inAttack {
		delete(m.state, p)
		return
	}
	m.state[p] = [2]bool{inMovement, inAttack}
}

func toSet(ps []Point) map[Point]bool {
	s := make(map[Point]bool, len(ps))
	for _, p := range ps {
		s[p] = true
	}
	return s
}

func TestRangeCalculator_ZeroMovementBudget(t *testing.T) {
	g := NewGrid(maplib.NewTileMap("m", 5, 5))
	rc := NewRangeCalculator()
	move, attack := rc.Calculate(g, Point{2, 2}, 0, 1)
	if len(move) != 1 || move[0] != (Point{2, 2}) {
		t.Fatalf("movement set = %v, want only the source", move)
	}
	want := toSet([]Point{{2, 2}, {2, 3}, {3, 2}, {2, 1}, {1, 2}})
	got := toSet(attack)
	if len(got) != len(want) {
		t.Fatalf("attack set = %v, want %v", attack, want)
	}
	for p := range want {
		if !got[p] {
			t.Fatalf("attack set missing %v", p)
		}
	}
}

func TestRangeCalculator_MovementBudget(t *testing.T) {
	g := NewGrid(maplib.NewTileMap("m", 7, 7))
	rc := NewRangeCalculator()
	move, _ := rc.Calculate(g, Point{3, 3}, 2, 0)
	// Diamond of radius 2: 1 + 4 + 8 tiles.
	if len(move) != 13 {
		t.Fatalf("expected 13 movement tiles, got %d", len(move))
	}
	for _, p := range move {
		if p.Manhattan(Point{3, 3}) > 2 {
			t.Fatalf("tile %v beyond budget", p)
		}
	}
	if move[0] != (Point{3, 3}) {
		t.Fatalf("source should come first, got %v", move[0])
	}
}

func TestRangeCalculator_MovementSubsetOfAttack(t *testing.T) {
	g := NewGrid(maplib.MustFromRows("m",
		"..#....",
		".c#.c..",
		"...#...",
		"c......",
	))
	rc := NewRangeCalculator()
	move, attack := rc.Calculate(g, Point{0, 0}, 4, 2)
	as := toSet(attack)
	for _, p := range move {
		if !as[p] {
			t.Fatalf("movement tile %v missing from attack set", p)
		}
		if !rc.InMovement(p) || !rc.InAttack(p) {
			t.Fatalf("membership queries disagree for %v", p)
		}
	}
	if len(as) != len(attack) {
		t.Fatal("attack set contains duplicates")
	}
}

func TestRangeCalculator_CoverAsymmetry(t *testing.T) {
	g := NewGrid(maplib.MustFromRows("m",
		".c...",
		"#####",
	))
	rc := NewRangeCalculator()
	move, attack := rc.Calculate(g, Point{0, 0}, 3, 1)
	if len(move) != 1 {
		t.Fatalf("cover next to the source should stop movement, got %v", move)
	}
	if rc.InMovement(Point{1, 0}) {
		t.Fatal("cover tile must not be in the movement set")
	}
	if !rc.InAttack(Point{1, 0}) {
		t.Fatal("cover tile should be in the attack set")
	}
	if rc.InAttack(Point{2, 0}) {
		t.Fatalf("attack budget 1 should stop at the cover tile, got %v", attack)
	}
	for _, p := range attack {
		if tt, _ := g.TileAt(p); tt == maplib.TileBlocked {
			t.Fatalf("blocked tile %v in attack set", p)
		}
	}
}

func TestRangeCalculator_AttackPropagatesThroughCover(t *testing.T) {
	g := NewGrid(maplib.MustFromRows("m", ".cc.."))
	rc := NewRangeCalculator()
	_, attack := rc.Calculate(g, Point{0, 0}, 5, 3)
	if len(attack) != 4 {
		t.Fatalf("expected attack to pass through two cover tiles to (3,0), got %v", attack)
	}
	if rc.InAttack(Point{4, 0}) {
		t.Fatal("(4,0) is 4 steps away and beyond the attack budget")
	}
}

func TestRangeCalculator_MultiSourceDistance(t *testing.T) {
	// Movement reaches (0,0)..(3,0); attack budget 1 is measured from the nearest of them.
	g := NewGrid(maplib.MustFromRows("m",
		"......",
		"......",
	))
	rc := NewRangeCalculator()
	rc.Calculate(g, Point{0, 0}, 3, 1)
	if !rc.InAttack(Point{4, 0}) {
		t.Fatal("(4,0) is one step from movement tile (3,0)")
	}
	if rc.InAttack(Point{5, 0}) {
		t.Fatal("(5,0) is two steps from the nearest movement tile")
	}
}

func TestRangeCalculator_ClearsPreviousResult(t *testing.T) {
	g := NewGrid(maplib.NewTileMap("m", 9, 1))
	rc := NewRangeCalculator()
	rc.Calculate(g, Point{0, 0}, 3, 0)
	move, _ := rc.Calculate(g, Point{8, 0}, 1, 0)
	for _, p := range move {
		if p.X < 7 {
			t.Fatalf("stale tile %v kept from previous calculation", p)
		}
	}
	if rc.InMovement(Point{1, 0}) {
		t.Fatal("stale membership kept from previous calculation")
	}
}

func TestRangeCalculator_InvalidOrigin(t *testing.T) {
	g := NewGrid(maplib.NewTileMap("m", 3, 3))
	rc := NewRangeCalculator()
	move, attack := rc.Calculate(g, Point{5, 5}, 3, 3)
	if len(move) != 0 || len(attack) != 0 {
		t.Fatal("out of bounds origin should produce empty sets")
	}
	move, attack = rc.Calculate(nil, Point{0, 0}, 3, 3)
	if len(move) != 0 || len(attack) != 0 {
		t.Fatal("nil grid should produce empty sets")
	}
}

func TestRangeCalculator_MarksAndUnmarks(t *testing.T) {
	g := NewGrid(maplib.NewTileMap("m", 10, 1))
	rc := NewRangeCalculator()
	m := newRecordingMarker()
	rc.Marker = m

	rc.Calculate(g, Point{0, 0}, 1, 1)
	if len(m.state) != 3 {
		t.Fatalf("expected 3 marked tiles, got %v", m.state)
	}
	if m.state[Point{0, 0}] != [2]bool{true, true} || m.state[Point{2, 0}] != [2]bool{false, true} {
		t.Fatalf("unexpected marks: %v", m.state)
	}

	rc.Calculate(g, Point{9, 0}, 0, 0)
	if len(m.state) != 1 {
		t.Fatalf("previous marks should be cleared, got %v", m.state)
	}
	if m.state[Point{9, 0}] != [2]bool{true, true} {
		t.Fatalf("new source should be marked, got %v", m.state)
	}

	rc.Reset()
	if len(m.state) != 0 {
		t.Fatalf("Reset should clear all marks, got %v", m.state)
	}
}
