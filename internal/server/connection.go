package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/minesweeper/internal/game"
	"github.com/lox/minesweeper/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Connection wraps a websocket client. Outbound messages go through a
// buffered send channel drained by the write pump so handlers never block
// on a slow client.
type Connection struct {
	conn      *websocket.Conn
	send      chan *protocol.Message
	games     *GameManager
	catalog   *Config
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection wrapper.
func NewConnection(conn *websocket.Conn, games *GameManager, catalog *Config, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:    conn,
		send:    make(chan *protocol.Message, 64),
		games:   games,
		catalog: catalog,
		logger:  logger.WithPrefix("conn"),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins handling the connection.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Send queues a message for the client. A full buffer closes the
// connection rather than blocking the caller.
func (c *Connection) Send(msg *protocol.Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg protocol.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("read error", "error", err)
			}
			return
		}
		c.handleMessage(&msg)
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("write error", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) handleMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.TypeNewGame:
		c.handleNewGame(msg)
	case protocol.TypeReveal:
		c.handleReveal(msg)
	case protocol.TypeFlag:
		c.handleFlag(msg)
	default:
		c.sendError("unknown_type", fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

func (c *Connection) handleNewGame(msg *protocol.Message) {
	var data protocol.NewGameData
	if err := msg.DecodeData(&data); err != nil {
		c.sendError("bad_request", err.Error())
		return
	}

	d, err := c.resolveDifficulty(data)
	if err != nil {
		c.sendError("bad_difficulty", err.Error())
		return
	}

	state, err := c.games.NewGame(d)
	if err != nil {
		c.sendError("new_game_failed", err.Error())
		return
	}
	c.sendState(state)
}

func (c *Connection) handleReveal(msg *protocol.Message) {
	var data protocol.RevealData
	if err := msg.DecodeData(&data); err != nil {
		c.sendError("bad_request", err.Error())
		return
	}
	state, err := c.games.Reveal(data.GameID, data.Row, data.Col)
	if err != nil {
		c.sendGameError(err)
		return
	}
	c.sendState(state)
}

func (c *Connection) handleFlag(msg *protocol.Message) {
	var data protocol.FlagData
	if err := msg.DecodeData(&data); err != nil {
		c.sendError("bad_request", err.Error())
		return
	}
	state, err := c.games.Flag(data.GameID, data.Row, data.Col)
	if err != nil {
		c.sendGameError(err)
		return
	}
	c.sendState(state)
}

// resolveDifficulty maps a new-game request to an engine difficulty: an
// explicit triple wins, then a named entry from the server catalog.
func (c *Connection) resolveDifficulty(data protocol.NewGameData) (game.Difficulty, error) {
	if data.Rows != 0 || data.Cols != 0 || data.Mines != 0 {
		d := game.Difficulty{Rows: data.Rows, Cols: data.Cols, Mines: data.Mines}
		return d, d.Validate()
	}
	name := data.Difficulty
	if name == "" {
		name = "beginner"
	}
	dc, ok := c.catalog.DifficultyByName(name)
	if !ok {
		return game.Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
	}
	return dc.Difficulty(), nil
}

func (c *Connection) sendState(state *protocol.GameStateData) {
	msg, err := protocol.NewMessage(protocol.TypeGameState, state)
	if err != nil {
		c.logger.Error("failed to build game_state message", "error", err)
		return
	}
	_ = c.Send(msg)
}

func (c *Connection) sendGameError(err error) {
	code := "internal"
	switch {
	case errors.Is(err, ErrGameNotFound):
		code = "game_not_found"
	case errors.Is(err, ErrTooManyGames):
		code = "too_many_games"
	}
	c.sendError(code, err.Error())
}

func (c *Connection) sendError(code, message string) {
	msg, err := protocol.NewMessage(protocol.TypeError, protocol.ErrorData{Code: code, Message: message})
	if err != nil {
		c.logger.Error("failed to build error message", "error", err)
		return
	}
	_ = c.Send(msg)
}
