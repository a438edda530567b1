package editor

import (
	"fmt"
	"strings"

	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/atotto/clipboard"
)

// DefaultPath is used when saving a map that was never saved or loaded
const DefaultPath = "untitled.json"

// Action is one undoable tile change
type Action struct {
	X, Y    int
	OldTile maplib.TileType
	NewTile maplib.TileType
}

// edit is one undo step: tile actions, or whole-map snapshots for resizes
type edit struct {
	actions       []Action
	before, after *maplib.TileMap
}

// Editor edits a tile map in place; listeners on the map see every change
type Editor struct {
	Map      *maplib.TileMap
	FilePath string
	Modified bool

	undo []edit
	redo []edit
}

// NewEditor creates an editor over tm
func NewEditor(tm *maplib.TileMap) *Editor {
	return &Editor{Map: tm}
}

// Cycle steps the tile at (x, y) to the next or previous tile type
func (e *Editor) Cycle(x, y int, forward bool) bool {
	old, ok := e.Map.At(x, y)
	if !ok {
		return false
	}
	t := old.Previous()
	if forward {
		t = old.Next()
	}
	return e.Set(x, y, t)
}

// Set changes one tile, recording it for undo
func (e *Editor) Set(x, y int, t maplib.TileType) bool {
	old, ok := e.Map.At(x, y)
	if !ok || old == t {
		return false
	}
	e.Map.Set(x, y, t)
	e.push(edit{actions: []Action{{X: x, Y: y, OldTile: old, NewTile: t}}})
	return true
}

// Resize changes the map size, keeping the overlapping tiles
func (e *Editor) Resize(w, h int) bool {
	before := e.Map.Clone()
	if !e.Map.Resize(w, h) {
		return false
	}
	e.push(edit{before: before, after: e.Map.Clone()})
	return true
}

func (e *Editor) push(ed edit) {
	e.undo = append(e.undo, ed)
	e.redo = nil
	e.Modified = true
}

// CanUndo reports whether there is an edit to revert
func (e *Editor) CanUndo() bool { return len(e.undo) > 0 }

// CanRedo reports whether there is an undone edit to reapply
func (e *Editor) CanRedo() bool { return len(e.redo) > 0 }

// Undo reverts the last edit
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	ed := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	if ed.before != nil {
		e.Map.Assign(ed.before)
	} else {
		for i := len(ed.actions) - 1; i >= 0; i-- {
			a := ed.actions[i]
			e.Map.Set(a.X, a.Y, a.OldTile)
		}
	}
	e.redo = append(e.redo, ed)
	e.Modified = true
	return true
}

// Redo re-applies the last undone edit
func (e *Editor) Redo() bool {
	if len(e.redo) == 0 {
		return false
	}
	ed := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	if ed.after != nil {
		e.Map.Assign(ed.after)
	} else {
		for _, a := range ed.actions {
			e.Map.Set(a.X, a.Y, a.NewTile)
		}
	}
	e.undo = append(e.undo, ed)
	e.Modified = true
	return true
}

// Load replaces the map with a file's contents. The edit history is dropped.
func (e *Editor) Load(path string) error {
	tm, err := maplib.LoadFile(path)
	if err != nil {
		return err
	}
	e.Map.Assign(tm)
	e.FilePath = path
	e.Modified = false
	e.undo = nil
	e.redo = nil
	return nil
}

// Save writes the map to path, or to the last used path when path is empty.
// A ".lz4" suffix selects the compressed format.
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.FilePath
	}
	if path == "" {
		path = DefaultPath
	}
	if err := e.Map.SaveFile(path); err != nil {
		return err
	}
	e.FilePath = path
	e.Modified = false
	return nil
}

// Text returns the map as rune rows, one line per row
func (e *Editor) Text() string {
	return strings.Join(e.Map.Rows(), "\n")
}

// CopyToClipboard puts Text on the system clipboard
func (e *Editor) CopyToClipboard() error {
	if err := clipboard.WriteAll(e.Text()); err != nil {
		return fmt.Errorf("editor: copy map: %w", err)
	}
	return nil
}
