// Package stream pushes per-step simulation frames to websocket viewers.
// It is a read-only collaborator surface: the simulation itself stays
// single-process, the server only steps it and publishes snapshots.
package stream

import (
	"log"
	"net/http"
	"sync"
	"time"

	"daynight/internal/core"
	"daynight/internal/sims/daynight"

	"github.com/gorilla/websocket"
)

// Source is the simulation surface the server drives and publishes.
type Source interface {
	Name() string
	Size() core.Size
	Cells() []uint8
	Counts() (day, night int)
	StepCount() int
	Entities() []daynight.Entity
	Step()
}

// EntityState is the wire form of one entity.
type EntityState struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Type string `json:"type"`
	Dir  string `json:"dir"`
}

// Frame is one per-step snapshot. Cells is the display buffer in row-major
// order; JSON encodes it as base64.
type Frame struct {
	Type     string        `json:"type"`
	Step     int           `json:"step"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Cells    []uint8       `json:"cells"`
	Day      int           `json:"day"`
	Night    int           `json:"night"`
	Entities []EntityState `json:"entities"`
}

// Hello is sent once per connection before the first frame.
type Hello struct {
	Type   string                  `json:"type"`
	Name   string                  `json:"name"`
	Width  int                     `json:"width"`
	Height int                     `json:"height"`
	Params *core.ParameterSnapshot `json:"params,omitempty"`
}

// Server steps a simulation at a fixed rate and broadcasts frames to every
// connected viewer.
type Server struct {
	src   Source
	pacer *core.FixedStep

	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewServer constructs a Server stepping src at the given rate.
func NewServer(src Source, stepsPerSecond int) *Server {
	return &Server{
		src:   src,
		pacer: core.NewFixedStep(stepsPerSecond),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// HandleViewer upgrades the request, sends the hello and the current frame,
// and registers the connection for subsequent broadcasts.
func (s *Server) HandleViewer(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade failed: %v", err)
		return
	}

	s.mu.Lock()
	hello := s.buildHelloLocked()
	frame := s.buildFrameLocked()
	s.mu.Unlock()

	if err := conn.WriteJSON(hello); err != nil {
		conn.Close()
		return
	}
	if err := conn.WriteJSON(frame); err != nil {
		conn.Close()
		return
	}

	s.mu.Lock()
	s.conns[conn] = true
	viewers := len(s.conns)
	s.mu.Unlock()
	log.Printf("stream: viewer connected (%d total)", viewers)

	// Drain (and discard) client messages so pings and close frames are
	// processed; dropping the read side unregisters the connection.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// Run steps the simulation and broadcasts frames until stop is closed.
func (s *Server) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(s.pacer.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			due := s.pacer.Due()
			if due == 0 {
				continue
			}
			s.mu.Lock()
			for i := 0; i < due; i++ {
				s.src.Step()
			}
			frame := s.buildFrameLocked()
			s.mu.Unlock()
			s.broadcast(frame)
		}
	}
}

func (s *Server) buildHelloLocked() Hello {
	size := s.src.Size()
	hello := Hello{Type: "hello", Name: s.src.Name(), Width: size.W, Height: size.H}
	if provider, ok := s.src.(core.ParameterProvider); ok {
		params := provider.Parameters()
		hello.Params = &params
	}
	return hello
}

func (s *Server) buildFrameLocked() Frame {
	size := s.src.Size()
	day, night := s.src.Counts()

	entities := s.src.Entities()
	states := make([]EntityState, len(entities))
	for i, e := range entities {
		states[i] = EntityState{X: e.X, Y: e.Y, Type: e.Type.String(), Dir: e.Dir.String()}
	}

	return Frame{
		Type:     "frame",
		Step:     s.src.StepCount(),
		Width:    size.W,
		Height:   size.H,
		Cells:    append([]uint8(nil), s.src.Cells()...),
		Day:      day,
		Night:    night,
		Entities: states,
	}
}

func (s *Server) broadcast(frame Frame) {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(frame); err != nil {
			s.drop(conn)
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	if _, ok := s.conns[conn]; ok {
		delete(s.conns, conn)
		log.Printf("stream: viewer disconnected (%d total)", len(s.conns))
	}
	s.mu.Unlock()
	conn.Close()
}
