package network

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
	"github.com/1siamBot/tactics-engine/engine/systems"
)

// OrderType identifies a recorded order
type OrderType uint8

const (
	OrderSetTile OrderType = iota
	OrderResize
	OrderPlacePlayer
	OrderPlaceEnemy
	OrderSetRanges
	OrderClick
	orderTypeCount
)

// Order is one user action that changes board state. Field meaning depends on Type:
// SetTile uses X, Y and A (tile type); Resize uses X, Y as width and height;
// SetRanges uses A (attack) and B (move); the rest use X, Y as the tile.
type Order struct {
	Seq  uint32
	Type OrderType
	X, Y int32
	A, B int32
}

// orderSize is the encoded length of one order
const orderSize = 4 + 1 + 4*4

// Encode writes an order in little-endian binary
func (o *Order) Encode(w io.Writer) error {
	var buf [orderSize]byte
	binary.LittleEndian.PutUint32(buf[0:], o.Seq)
	buf[4] = byte(o.Type)
	binary.LittleEndian.PutUint32(buf[5:], uint32(o.X))
	binary.LittleEndian.PutUint32(buf[9:], uint32(o.Y))
	binary.LittleEndian.PutUint32(buf[13:], uint32(o.A))
	binary.LittleEndian.PutUint32(buf[17:], uint32(o.B))
	_, err := w.Write(buf[:])
	return err
}

// Decode reads an order. It returns io.EOF only when r is exhausted before the
// first byte.
func (o *Order) Decode(r io.Reader) error {
	var buf [orderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	t := OrderType(buf[4])
	if t >= orderTypeCount {
		return fmt.Errorf("network: unknown order type %d", t)
	}
	o.Seq = binary.LittleEndian.Uint32(buf[0:])
	o.Type = t
	o.X = int32(binary.LittleEndian.Uint32(buf[5:]))
	o.Y = int32(binary.LittleEndian.Uint32(buf[9:]))
	o.A = int32(binary.LittleEndian.Uint32(buf[13:]))
	o.B = int32(binary.LittleEndian.Uint32(buf[17:]))
	return nil
}

// Point returns the order's tile
func (o *Order) Point() pathfind.Point {
	return pathfind.Point{X: int(o.X), Y: int(o.Y)}
}

// Apply runs o against the board behind orders and dispatches resulting events.
// A click walks to completion immediately. It reports whether the order had an effect.
func Apply(o Order, orders *systems.Orders) bool {
	b := orders.Board
	var ok bool
	switch o.Type {
	case OrderSetTile:
		ok = b.Map.Set(int(o.X), int(o.Y), maplib.TileType(o.A))
	case OrderResize:
		ok = b.Map.Resize(int(o.X), int(o.Y))
	case OrderPlacePlayer:
		_, ok = b.PlacePlayer(o.Point())
	case OrderPlaceEnemy:
		_, ok = b.PlaceEnemy(o.Point())
	case OrderSetRanges:
		ok = b.SetPlayerRanges(int(o.A), int(o.B))
	case OrderClick:
		out := orders.Click(o.Point())
		ok = out == systems.OutcomeMove || out == systems.OutcomeAttack
		if ok {
			orders.Mover.Update(math.MaxFloat32)
		}
	}
	b.Bus.Dispatch()
	return ok
}
