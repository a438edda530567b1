package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io/fs"
	"log"

	"github.com/1siamBot/tactics-engine/editor"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/input"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/network"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
	"github.com/1siamBot/tactics-engine/engine/render"
	"github.com/1siamBot/tactics-engine/engine/systems"
	"github.com/1siamBot/tactics-engine/engine/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	statusTime   = 3.0
)

// Game implements ebiten.Game interface
type Game struct {
	bus      *core.EventBus
	board    *systems.Board
	editor   *editor.Editor
	mover    *systems.Mover
	orders   *systems.Orders
	modes    core.ModeSwitch
	renderer *render.GridRenderer
	input    *input.InputState
	panel    *ui.SettingsPanel
	popup    *render.Popup
	replay   *network.Replay

	status     string
	statusLeft float64
}

func NewGame(tm *maplib.TileMap, mapPath string) *Game {
	bus := core.NewEventBus()
	cam := render.NewCamera(ScreenWidth, ScreenHeight)
	g := &Game{
		bus:      bus,
		board:    systems.NewBoard(tm, bus),
		editor:   editor.NewEditor(tm),
		mover:    systems.NewMover(),
		renderer: render.NewGridRenderer(cam),
		input:    input.NewInputState(),
		panel:    ui.NewSettingsPanel(ScreenWidth-280, 60, systems.MinRange, systems.MaxRange, maplib.MinMapSize, maplib.MaxMapSize),
		popup:    render.NewOutOfRangePopup(),
	}
	g.editor.FilePath = mapPath
	g.orders = systems.NewOrders(g.board, g.mover)
	g.renderer.SetMap(tm)
	cam.CenterOnGrid(tm.Width, tm.Height)
	g.panel.SyncSize(tm.Width, tm.Height)
	g.panel.SyncRanges(systems.DefaultAttackRange, systems.DefaultMoveRange)

	g.panel.OnResize = func(w, h int) {
		before := g.board.Map.Clone()
		if g.editor.Resize(w, h) {
			g.recordMapDiff(before)
		}
	}
	g.panel.OnRanges = func(attack, move int) {
		if g.board.SetPlayerRanges(attack, move) {
			g.record(network.Order{Type: network.OrderSetRanges, A: int32(attack), B: int32(move)})
		}
	}
	g.modes.OnChange = func(from, to core.Mode) {
		if from == core.ModePathfindingTesting {
			g.orders.Path = g.orders.Path[:0]
			g.orders.AttackPath = g.orders.AttackPath[:0]
			g.popup.Hide()
		}
	}

	bus.On(core.EvtPathfindingUpdated, func(core.Event) {
		g.renderer.SetMap(g.board.Map)
		g.panel.SyncSize(g.board.Map.Width, g.board.Map.Height)
		if p := g.board.Player(); p != nil {
			p.Recalculate(g.board)
		}
	})
	bus.On(core.EvtActorPlaced, func(e core.Event) {
		a := e.Payload.(*systems.Actor)
		if a.Side == systems.SidePlayer && a.Ranges.Marker == nil {
			a.Ranges.Marker = g.renderer
			a.Recalculate(g.board)
			g.panel.SyncRanges(a.AttackRange, a.MoveRange)
		}
	})
	bus.On(core.EvtOutOfRange, func(core.Event) {
		g.popup.Show(g.input.MouseX, g.input.MouseY)
	})
	bus.On(core.EvtAttackResolved, func(e core.Event) {
		g.setStatus(fmt.Sprintf("Enemy at %v defeated", e.Payload.(pathfind.Point)))
	})
	return g
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.input.Update()
	g.handleCamera(dt)

	if next, ok := g.input.PageChange(); ok {
		g.modes.Change(next, g.mover.Moving)
	}

	mode := g.modes.Current
	if !g.panel.Update(mode, g.input.MouseX, g.input.MouseY, g.input.LeftPressed, g.input.LeftJustPressed) {
		switch mode {
		case core.ModeMapEditing:
			g.updateMapEditing()
		case core.ModeUnitPlacement:
			g.updateUnitPlacement()
		case core.ModePathfindingTesting:
			g.updatePathfinding()
		}
	}

	g.mover.Update(dt)
	g.popup.Update(dt)
	if g.statusLeft > 0 {
		g.statusLeft -= dt
	}
	g.bus.Dispatch()
	return nil
}

func (g *Game) handleCamera(dt float64) {
	cam := g.renderer.Camera
	dx, dy := g.input.PanAxis()
	cam.Pan(dx*cam.Speed*dt, dy*cam.Speed*dt)
	if g.input.ScrollY != 0 {
		cam.ZoomAt(g.input.ScrollY*0.1, g.input.MouseX, g.input.MouseY)
	}
	// Middle mouse drag to pan
	if g.input.MiddlePressed {
		cam.Pan(float64(-g.input.MouseDX), float64(-g.input.MouseDY))
	}
}

func (g *Game) hoverTile() pathfind.Point {
	return g.renderer.Camera.ScreenToGrid(g.input.MouseX, g.input.MouseY)
}

func (g *Game) updateMapEditing() {
	switch {
	case g.input.Shortcut(ebiten.KeyC):
		if err := g.editor.CopyToClipboard(); err != nil {
			log.Printf("copy map: %v", err)
			g.setStatus("Copy failed")
			return
		}
		g.setStatus("Map copied to clipboard")
		return
	case g.input.Shortcut(ebiten.KeyS):
		if err := g.editor.Save(""); err != nil {
			log.Printf("save map: %v", err)
			g.setStatus("Save failed")
			return
		}
		g.setStatus("Saved " + g.editor.FilePath)
		return
	case g.input.Shortcut(ebiten.KeyZ):
		before := g.board.Map.Clone()
		if g.editor.Undo() {
			g.recordMapDiff(before)
		}
		return
	case g.input.Shortcut(ebiten.KeyY):
		before := g.board.Map.Clone()
		if g.editor.Redo() {
			g.recordMapDiff(before)
		}
		return
	}

	if !g.input.LeftJustPressed && !g.input.RightJustPressed {
		return
	}
	p := g.hoverTile()
	if g.editor.Cycle(p.X, p.Y, g.input.LeftJustPressed) {
		t, _ := g.board.Map.At(p.X, p.Y)
		g.record(network.Order{Type: network.OrderSetTile, X: int32(p.X), Y: int32(p.Y), A: int32(t)})
	}
}

func (g *Game) updateUnitPlacement() {
	p := g.hoverTile()
	switch {
	case g.input.LeftJustPressed:
		if _, ok := g.board.PlacePlayer(p); ok {
			g.record(network.Order{Type: network.OrderPlacePlayer, X: int32(p.X), Y: int32(p.Y)})
		}
	case g.input.RightJustPressed:
		if _, ok := g.board.PlaceEnemy(p); ok {
			g.record(network.Order{Type: network.OrderPlaceEnemy, X: int32(p.X), Y: int32(p.Y)})
		}
	}
}

func (g *Game) updatePathfinding() {
	if !g.input.LeftJustPressed {
		return
	}
	p := g.hoverTile()
	switch g.orders.Click(p) {
	case systems.OutcomeMove, systems.OutcomeAttack:
		g.record(network.Order{Type: network.OrderClick, X: int32(p.X), Y: int32(p.Y)})
	}
}

// recordMapDiff records the orders that turn before into the current map
func (g *Game) recordMapDiff(before *maplib.TileMap) {
	tm := g.board.Map
	if tm.Width != before.Width || tm.Height != before.Height {
		g.record(network.Order{Type: network.OrderResize, X: int32(tm.Width), Y: int32(tm.Height)})
	}
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			now, _ := tm.At(x, y)
			was, ok := before.At(x, y)
			if !ok {
				was = maplib.TileOpen
			}
			if now != was {
				g.record(network.Order{Type: network.OrderSetTile, X: int32(x), Y: int32(y), A: int32(now)})
			}
		}
	}
}

func (g *Game) record(o network.Order) {
	if g.replay == nil {
		return
	}
	if err := g.replay.Record(o); err != nil {
		log.Printf("record order: %v", err)
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusLeft = statusTime
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})
	mode := g.modes.Current

	g.renderer.Draw(screen)
	if mode == core.ModePathfindingTesting {
		render.DrawPath(screen, g.renderer.Camera, g.orders.Path, render.PathColor)
		render.DrawPath(screen, g.renderer.Camera, g.orders.AttackPath, render.AttackPathColor)
	}
	g.renderer.DrawActors(screen, g.board.Actors(), g.mover)

	g.panel.Draw(screen, mode)
	status := ""
	if g.statusLeft > 0 {
		status = g.status
	}
	ui.DrawHUD(screen, mode, status)
	g.popup.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.Camera.ScreenW = outsideWidth
	g.renderer.Camera.ScreenH = outsideHeight
	return outsideWidth, outsideHeight
}

func loadMap(path string, w, h int) (*maplib.TileMap, error) {
	if path == "" {
		return maplib.NewTileMap("Untitled", w, h), nil
	}
	tm, err := maplib.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("%s not found, starting a new %dx%d map", path, w, h)
		return maplib.NewTileMap("Untitled", w, h), nil
	}
	return tm, err
}

func main() {
	mapPath := flag.String("map", "", "map file to load and save (.json or .json.lz4)")
	record := flag.String("record", "", "record issued orders to this replay file")
	width := flag.Int("width", 10, "width of a new map")
	height := flag.Int("height", 10, "height of a new map")
	flag.Parse()

	tm, err := loadMap(*mapPath, *width, *height)
	if err != nil {
		log.Fatalf("load map: %v", err)
	}

	game := NewGame(tm, *mapPath)
	if *record != "" {
		game.replay, err = network.NewReplayRecorder(*record)
		if err != nil {
			log.Fatalf("create replay: %v", err)
		}
		defer func() {
			if err := game.replay.Close(); err != nil {
				log.Printf("close replay: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tactics Engine")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
