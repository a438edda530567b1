package editor

import (
	"path/filepath"
	"testing"

	"github.com/1siamBot/tactics-engine/engine/maplib"
)

func TestEditor_CycleWraps(t *testing.T) {
	e := NewEditor(maplib.NewTileMap("m", 2, 1))
	for _, want := range []maplib.TileType{maplib.TileBlocked, maplib.TileCover, maplib.TileOpen} {
		e.Cycle(0, 0, true)
		if got, _ := e.Map.At(0, 0); got != want {
			t.Fatalf("cycle forward: got %v, want %v", got, want)
		}
	}
	e.Cycle(0, 0, false)
	if got, _ := e.Map.At(0, 0); got != maplib.TileCover {
		t.Fatalf("cycle back from open should give cover, got %v", got)
	}
	if e.Cycle(5, 5, true) {
		t.Fatal("out of bounds cycle should do nothing")
	}
}

func TestEditor_UndoRedoTiles(t *testing.T) {
	e := NewEditor(maplib.NewTileMap("m", 3, 1))
	e.Cycle(0, 0, true)
	e.Cycle(1, 0, true)
	if !e.Undo() {
		t.Fatal("expected an undo")
	}
	if e.Text() != "#.." {
		t.Fatalf("after undo got %q", e.Text())
	}
	if !e.Redo() || e.Text() != "##." {
		t.Fatalf("after redo got %q", e.Text())
	}
	e.Undo()
	e.Cycle(2, 0, false)
	if e.CanRedo() {
		t.Fatal("a new edit should clear the redo stack")
	}
}

func TestEditor_UndoResize(t *testing.T) {
	e := NewEditor(maplib.MustFromRows("m", "#c", ".#"))
	notified := 0
	e.Map.OnChange(func(*maplib.TileMap) { notified++ })
	if !e.Resize(1, 1) {
		t.Fatal("resize should apply")
	}
	if e.Text() != "#" {
		t.Fatalf("resized map = %q", e.Text())
	}
	e.Undo()
	if e.Map.Width != 2 || e.Map.Height != 2 || e.Text() != "#c\n.#" {
		t.Fatalf("undo should restore the original map, got %q", e.Text())
	}
	e.Redo()
	if e.Text() != "#" {
		t.Fatalf("redo should shrink again, got %q", e.Text())
	}
	if notified != 3 {
		t.Fatalf("expected 3 change notifications, got %d", notified)
	}
	if e.Resize(1, 1) {
		t.Fatal("unchanged size should be rejected")
	}
}

func TestEditor_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"map.json", "map.json.lz4"} {
		e := NewEditor(maplib.MustFromRows("m", ".#c", "c#."))
		path := filepath.Join(dir, name)
		if err := e.Save(path); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		if e.Modified || e.FilePath != path {
			t.Fatal("save should record the path and clear the modified flag")
		}

		other := NewEditor(maplib.NewTileMap("blank", 1, 1))
		other.Cycle(0, 0, true)
		if err := other.Load(path); err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if other.Text() != ".#c\nc#." {
			t.Fatalf("loaded %s = %q", name, other.Text())
		}
		if other.CanUndo() {
			t.Fatal("load should drop history")
		}
	}
}

func TestEditor_LoadMissingFile(t *testing.T) {
	e := NewEditor(maplib.NewTileMap("m", 2, 2))
	if err := e.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error")
	}
	if e.Map.Width != 2 {
		t.Fatal("failed load should keep the map")
	}
}
