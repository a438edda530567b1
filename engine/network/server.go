package network

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Server exposes a Service over websocket. Each connection sends JSON requests and
// receives one JSON response per request, in order.
type Server struct {
	service  *Service
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a server. A nil logger uses the standard logger.
func NewServer(service *Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP upgrades the connection and runs its read loop
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("read from %s: %v", r.RemoteAddr, err)
			}
			return
		}

		var req Request
		var resp Response
		if err := json.Unmarshal(payload, &req); err != nil {
			s.logger.Printf("discarding malformed request from %s: %v", r.RemoteAddr, err)
			resp = Response{Error: "malformed request"}
		} else {
			resp = s.service.Handle(req)
		}

		data, err := json.Marshal(resp)
		if err != nil {
			s.logger.Printf("marshal response for %s: %v", r.RemoteAddr, err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}
