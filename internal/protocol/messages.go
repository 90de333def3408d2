// Package protocol defines the wire messages exchanged between the
// minesweeper server and its clients. Every frame is a JSON envelope with a
// type tag and a raw payload decoded by type.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lox/minesweeper/internal/game"
)

// MessageType identifies the type of message.
type MessageType string

const (
	// Client -> Server
	TypeNewGame MessageType = "new_game"
	TypeReveal  MessageType = "reveal"
	TypeFlag    MessageType = "flag"

	// Server -> Client
	TypeGameState MessageType = "game_state"
	TypeError     MessageType = "error"
)

// ErrUnknownMessageType is returned when a frame carries a type tag the
// server does not understand.
var ErrUnknownMessageType = errors.New("unknown message type")

// Message is the envelope for every frame on the wire.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps a payload in an envelope with the current timestamp.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", messageType, err)
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// DecodeData unmarshals the envelope's payload into v.
func (m *Message) DecodeData(v interface{}) error {
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return nil
}

// Client -> Server payloads

// NewGameData starts a fresh game. Either a preset difficulty name or an
// explicit rows/cols/mines triple; the triple wins when both are present.
type NewGameData struct {
	Difficulty string `json:"difficulty,omitempty"`
	Rows       int    `json:"rows,omitempty"`
	Cols       int    `json:"cols,omitempty"`
	Mines      int    `json:"mines,omitempty"`
}

// RevealData reveals a cell of an existing game.
type RevealData struct {
	GameID string `json:"gameId"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// FlagData toggles a flag on a cell of an existing game.
type FlagData struct {
	GameID string `json:"gameId"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Server -> Client payloads

// GameStateData carries the full renderable state of a game. Elapsed is
// whole seconds since the game's first reveal, owned by the server clock,
// not the board.
type GameStateData struct {
	GameID  string         `json:"gameId"`
	Board   game.BoardView `json:"board"`
	Elapsed int            `json:"elapsed"`
}

// ErrorData reports a rejected request.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
