package pathfind

import "github.com/1siamBot/tactics-engine/engine/maplib"

// Grid is a fixed-size arena of search nodes derived from a tile map.
// It is rebuilt, not mutated, whenever the source map changes.
type Grid struct {
	width, height int
	nodes         []Node
	disposed      bool
}

// NewGrid builds one node per map cell and wires cardinal neighbors.
// An invalid map yields an empty grid on which every lookup is absent.
func NewGrid(tm *maplib.TileMap) *Grid {
	g := &Grid{}
	if !tm.Valid() {
		return g
	}
	g.width, g.height = tm.Width, tm.Height
	g.nodes = make([]Node, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			g.nodes[i] = Node{pos: Point{x, y}, tile: tm.Tiles[i]}
			g.nodes[i].reset()
		}
	}
	// Second pass: every node exists now, so neighbor pointers are stable.
	for i := range g.nodes {
		n := &g.nodes[i]
		n.neighbors = make([]*Node, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			if nb, ok := g.Get(n.pos.Add(d)); ok {
				n.neighbors = append(n.neighbors, nb)
			}
		}
	}
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// Len returns the number of nodes
func (g *Grid) Len() int { return len(g.nodes) }

// InBounds checks if p addresses a node
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Get returns the node at p. Out-of-range coordinates are absent, not errors.
func (g *Grid) Get(p Point) (*Node, bool) {
	if g == nil || g.disposed || !g.InBounds(p) {
		return nil, false
	}
	return &g.nodes[g.index(p)], true
}

// TileAt returns the classification at p
func (g *Grid) TileAt(p Point) (maplib.TileType, bool) {
	n, ok := g.Get(p)
	if !ok {
		return maplib.TileOpen, false
	}
	return n.tile, true
}

// ResetSearchState returns every node's transient fields to their sentinels
func (g *Grid) ResetSearchState() {
	for i := range g.nodes {
		g.nodes[i].reset()
	}
}

// Dispose releases all nodes. A disposed grid reports every lookup as absent.
func (g *Grid) Dispose() {
	if g == nil || g.disposed {
		return
	}
	for i := range g.nodes {
		g.nodes[i].neighbors = nil
		g.nodes[i].prev = nil
	}
	g.nodes = nil
	g.width, g.height = 0, 0
	g.disposed = true
}

// Disposed reports whether Dispose has been called
func (g *Grid) Disposed() bool {
	return g == nil || g.disposed
}

func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}
