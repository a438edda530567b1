package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/network"
	"github.com/1siamBot/tactics-engine/engine/systems"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	mapPath := flag.String("map", "", "map file to serve (.json or .json.lz4)")
	width := flag.Int("width", 10, "width of the empty map used without -map")
	height := flag.Int("height", 10, "height of the empty map used without -map")
	flag.Parse()

	var tm *maplib.TileMap
	if *mapPath != "" {
		var err error
		tm, err = maplib.LoadFile(*mapPath)
		if err != nil {
			log.Fatalf("load map: %v", err)
		}
	} else {
		tm = maplib.NewTileMap("Untitled", *width, *height)
	}
	if !tm.Valid() {
		log.Fatalf("map %q is empty", tm.Name)
	}

	board := systems.NewBoard(tm, core.NewEventBus())
	server := network.NewServer(network.NewService(board), nil)

	mux := http.NewServeMux()
	mux.Handle("/ws", server)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.Printf("serving %dx%d map %q on %s/ws", tm.Width, tm.Height, tm.Name, *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
