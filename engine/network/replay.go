package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/1siamBot/tactics-engine/engine/systems"
)

// Replay records and plays back board orders
type Replay struct {
	Orders []Order
	file   *os.File
	writer *bufio.Writer
}

// NewReplayRecorder creates a replay file for recording
func NewReplayRecorder(path string) (*Replay, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Replay{
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// Record numbers an order and appends it to the replay
func (r *Replay) Record(o Order) error {
	o.Seq = uint32(len(r.Orders)) + 1
	r.Orders = append(r.Orders, o)
	if r.writer == nil {
		return nil
	}
	return o.Encode(r.writer)
}

// Close flushes and closes the replay file
func (r *Replay) Close() error {
	if r.writer != nil {
		if err := r.writer.Flush(); err != nil {
			r.file.Close()
			return err
		}
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// LoadReplay loads a replay file
func LoadReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	replay := &Replay{}
	reader := bufio.NewReader(f)
	for {
		var o Order
		err := o.Decode(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read replay %s: order %d: %w", path, len(replay.Orders)+1, err)
		}
		replay.Orders = append(replay.Orders, o)
	}
	return replay, nil
}

// Play applies every recorded order in sequence and returns how many took effect
func (r *Replay) Play(orders *systems.Orders) int {
	n := 0
	for _, o := range r.Orders {
		if Apply(o, orders) {
			n++
		}
	}
	return n
}
