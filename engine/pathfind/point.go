package pathfind

import (
	"fmt"
	"math"
)

// Point represents a 2D integer grid coordinate
type Point struct{ X, Y int }

// neighborOffsets are the four cardinal steps: north, east, south, west
var neighborOffsets = [4]Point{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

// Add returns p offset by q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Manhattan returns the 4-connected grid distance between p and q
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// angleUnset marks a node that was not entered from any direction (a search source)
const angleUnset = -1

// entryAngle returns the bearing of a (dx, dy) step in degrees, 0 = +Y, 90 = +X,
// normalized to [0, 360) and snapped to 5 degree buckets.
func entryAngle(dx, dy int) int {
	deg := math.Atan2(float64(dx), float64(dy)) * 180 / math.Pi
	a := int(math.Round(deg))
	if a < 0 {
		a += 360
	}
	a = int(math.Round(float64(a)/5)) * 5
	return a % 360
}

// Turns counts how many times a path changes its 5 degree heading bucket.
// The first step never counts.
func Turns(path []Point) int {
	turns := 0
	last := angleUnset
	for i := 1; i < len(path); i++ {
		a := entryAngle(path[i].X-path[i-1].X, path[i].Y-path[i-1].Y)
		if last != angleUnset && a != last {
			turns++
		}
		last = a
	}
	return turns
}
