package network

import (
	"strings"
	"testing"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/systems"
)

func newService(rows ...string) *Service {
	return NewService(systems.NewBoard(maplib.MustFromRows("test", rows...), core.NewEventBus()))
}

func TestService_Path(t *testing.T) {
	s := newService(
		"..#..",
		".....",
	)
	resp := s.Handle(Request{ID: 7, Type: ReqPath, From: Coord{0, 0}, To: Coord{4, 0}})
	if !resp.OK || resp.ID != 7 {
		t.Fatalf("expected a path, got %+v", resp)
	}
	if len(resp.Path) != 7 {
		t.Fatalf("expected 7 nodes around the wall, got %v", resp.Path)
	}
	budget := 5
	resp = s.Handle(Request{Type: ReqPath, From: Coord{0, 0}, To: Coord{4, 0}, Budget: &budget})
	if resp.OK || len(resp.Path) != 0 {
		t.Fatal("budget 5 should not reach the target")
	}
}

func TestService_Range(t *testing.T) {
	s := newService(".c...")
	resp := s.Handle(Request{Type: ReqRange, From: Coord{0, 0}, Move: 3, Attack: 1})
	if !resp.OK || len(resp.Movement) != 1 || len(resp.Attack) != 2 {
		t.Fatalf("unexpected sets %+v", resp)
	}
}

func TestService_LookupAndPlace(t *testing.T) {
	s := newService("..#")
	resp := s.Handle(Request{Type: ReqPlace, From: Coord{1, 0}, Side: "enemy"})
	if !resp.OK {
		t.Fatal("placing an enemy should succeed")
	}
	resp = s.Handle(Request{Type: ReqLookup, From: Coord{1, 0}})
	if !resp.OK || resp.Tile != "open" || resp.Occupant != "enemy" {
		t.Fatalf("unexpected lookup %+v", resp)
	}
	resp = s.Handle(Request{Type: ReqLookup, From: Coord{2, 0}})
	if resp.Tile != "blocked" || resp.Occupant != "" {
		t.Fatalf("unexpected lookup %+v", resp)
	}
	if resp = s.Handle(Request{Type: ReqLookup, From: Coord{9, 0}}); resp.OK {
		t.Fatal("out of bounds lookup should fail")
	}
	if resp = s.Handle(Request{Type: ReqPlace, From: Coord{0, 0}, Side: "ally"}); resp.Error == "" {
		t.Fatal("unknown side should be an error")
	}
}

func TestService_ReplaceMapRebuildsGrid(t *testing.T) {
	s := newService(".....")
	resp := s.Handle(Request{Type: ReqMap, Rows: []string{"..#..", "..#.."}})
	if !resp.OK || resp.Width != 5 || resp.Height != 2 {
		t.Fatalf("unexpected map response %+v", resp)
	}
	if resp = s.Handle(Request{Type: ReqPath, From: Coord{0, 0}, To: Coord{4, 0}}); resp.OK {
		t.Fatal("path should see the new wall")
	}
	resp = s.Handle(Request{Type: ReqMap, Rows: []string{"..", "."}})
	if resp.OK || !strings.Contains(resp.Error, "invalid map") {
		t.Fatalf("ragged rows should be rejected, got %+v", resp)
	}
}

func TestService_UnknownRequest(t *testing.T) {
	s := newService("..")
	resp := s.Handle(Request{Type: "teleport"})
	if resp.OK || !strings.Contains(resp.Error, ErrUnknownRequest.Error()) {
		t.Fatalf("expected unknown request error, got %+v", resp)
	}
}
