// Package server exposes the minesweeper engine over websockets. Each
// client connection can create and drive any number of game sessions; all
// board mutation is serialized per session by the game manager.
package server

import (
	"context"
	"encoding/json"
	rand "math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const idleGameExpiry = 30 * time.Minute

// Server is the websocket front end.
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	games       *GameManager
	config      *Config
	httpServer  *http.Server
	logger      *log.Logger
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewServer creates a server from a validated config. The rng seeds new
// boards; the clock is injectable for tests.
func NewServer(config *Config, rng *rand.Rand, clock quartz.Clock, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		addr: config.Addr(),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		games:       NewGameManager(rng, clock, logger, config.Server.MaxGames),
		config:      config,
		logger:      logger.WithPrefix("server"),
		ctx:         ctx,
		cancel:      cancel,
	}
	s.httpServer = &http.Server{Addr: s.addr, Handler: s.Handler()}
	return s
}

// Games exposes the game manager, mainly for tests.
func (s *Server) Games() *GameManager {
	return s.games
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start runs the connection loop and listens for clients. It blocks until
// the listener fails or Stop is called; after Stop it returns
// http.ErrServerClosed.
func (s *Server) Start() error {
	go s.run()
	go s.expireLoop()

	s.logger.Info("starting websocket server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Stop closes the listener and all live connections, unblocking Start.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("client disconnected", "total", total)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Server) expireLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.games.ExpireIdle(idleGameExpiry)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	conn := NewConnection(ws, s.games, s.config, s.logger)
	select {
	case s.register <- conn:
	case <-s.ctx.Done():
		// run() is gone; refuse the upgrade instead of blocking forever.
		_ = ws.Close()
		return
	}
	conn.Start()

	go func() {
		<-conn.ctx.Done()
		select {
		case s.unregister <- conn:
		case <-s.ctx.Done():
		}
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      "ok",
		"activeGames": s.games.ActiveGames(),
	})
}
