package server

import "errors"

var (
	// ErrConnectionClosed is returned when sending on a closed connection.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrGameNotFound is returned for operations on an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrTooManyGames is returned when the session cap is reached.
	ErrTooManyGames = errors.New("too many active games")
)
