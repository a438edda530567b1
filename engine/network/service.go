package network

import (
	"fmt"
	"sync"

	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
	"github.com/1siamBot/tactics-engine/engine/systems"
)

// Service answers requests against one board. Map rebuilds, searches and range
// calculations share the board's scratch state, so every request runs under mu.
type Service struct {
	mu     sync.Mutex
	board  *systems.Board
	ranges *pathfind.RangeCalculator
	buf    []pathfind.Point
}

// NewService creates a service over b
func NewService(b *systems.Board) *Service {
	return &Service{
		board:  b,
		ranges: pathfind.NewRangeCalculator(),
	}
}

// Handle answers one request
func (s *Service) Handle(req Request) Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := Response{ID: req.ID, Type: req.Type}
	var err error
	switch req.Type {
	case ReqPath:
		err = s.path(req, &resp)
	case ReqRange:
		s.rangeSets(req, &resp)
	case ReqLookup:
		s.lookup(req, &resp)
	case ReqMap:
		err = s.mapRows(req, &resp)
	case ReqPlace:
		err = s.place(req, &resp)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownRequest, req.Type)
	}
	if err != nil {
		resp.OK = false
		resp.Error = err.Error()
	}
	return resp
}

func (s *Service) path(req Request, resp *Response) error {
	budget := pathfind.Unlimited
	if req.Budget != nil {
		if *req.Budget < 0 {
			return fmt.Errorf("negative budget %d", *req.Budget)
		}
		budget = *req.Budget
	}
	var ok bool
	s.buf, ok = s.board.FindPath(req.From.point(), req.To.point(), req.AllowCover, budget, s.buf)
	resp.OK = ok
	if ok {
		resp.Path = coords(s.buf)
	}
	return nil
}

func (s *Service) rangeSets(req Request, resp *Response) {
	move, attack := s.ranges.Calculate(s.board.Grid(), req.From.point(), req.Move, req.Attack)
	resp.OK = len(move) > 0
	resp.Movement = coords(move)
	resp.Attack = coords(attack)
}

func (s *Service) lookup(req Request, resp *Response) {
	t, ok := s.board.Map.At(req.From.X, req.From.Y)
	if !ok {
		return
	}
	resp.OK = true
	resp.Tile = t.String()
	if a, ok := s.board.OccupantAt(req.From.point()); ok {
		resp.Occupant = a.Side.String()
	}
}

func (s *Service) mapRows(req Request, resp *Response) error {
	if len(req.Rows) > 0 {
		tm, err := maplib.FromRows(s.board.Map.Name, req.Rows)
		if err != nil {
			return err
		}
		if tm.Width > maplib.MaxMapSize || tm.Height > maplib.MaxMapSize {
			return fmt.Errorf("%w: %dx%d exceeds %d", maplib.ErrInvalidMap, tm.Width, tm.Height, maplib.MaxMapSize)
		}
		s.board.Map.Assign(tm)
		s.board.Bus.Dispatch()
	}
	resp.OK = true
	resp.Width = s.board.Map.Width
	resp.Height = s.board.Map.Height
	resp.Rows = s.board.Map.Rows()
	return nil
}

func (s *Service) place(req Request, resp *Response) error {
	p := req.From.point()
	switch req.Side {
	case systems.SidePlayer.String():
		_, resp.OK = s.board.PlacePlayer(p)
	case systems.SideEnemy.String():
		_, resp.OK = s.board.PlaceEnemy(p)
	default:
		return fmt.Errorf("unknown side %q", req.Side)
	}
	s.board.Bus.Dispatch()
	return nil
}
