package server

import (
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/minesweeper/internal/game"
	"github.com/lox/minesweeper/internal/gameid"
	"github.com/lox/minesweeper/internal/protocol"
)

// gameSession is one board plus its timing state. The session mutex
// serializes all access to the board: the flood fill reads and writes many
// cells and is not safe under interleaved mutation.
type gameSession struct {
	id    string
	board *game.Board

	mu         sync.Mutex
	startedAt  time.Time // zero until the first reveal
	finishedAt time.Time // zero while playing
	lastActive time.Time
}

// elapsedAt returns whole seconds of play time at now. The clock starts on
// the first reveal and freezes the moment the game ends.
func (gs *gameSession) elapsedAt(now time.Time) int {
	if gs.startedAt.IsZero() {
		return 0
	}
	end := now
	if !gs.finishedAt.IsZero() {
		end = gs.finishedAt
	}
	return int(end.Sub(gs.startedAt) / time.Second)
}

// GameManager owns all active game sessions.
type GameManager struct {
	mu       sync.Mutex
	games    map[string]*gameSession
	rng      *rand.Rand
	clock    quartz.Clock
	logger   *log.Logger
	maxGames int
}

// NewGameManager creates a game manager. The rng seeds each new board;
// the clock drives elapsed-time tracking and idle expiry.
func NewGameManager(rng *rand.Rand, clock quartz.Clock, logger *log.Logger, maxGames int) *GameManager {
	return &GameManager{
		games:    make(map[string]*gameSession),
		rng:      rng,
		clock:    clock,
		logger:   logger.WithPrefix("games"),
		maxGames: maxGames,
	}
}

// NewGame creates a session for the given difficulty and returns its
// initial state.
func (gm *GameManager) NewGame(d game.Difficulty) (*protocol.GameStateData, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	gm.mu.Lock()
	if len(gm.games) >= gm.maxGames {
		gm.mu.Unlock()
		return nil, ErrTooManyGames
	}
	gs := &gameSession{
		id:         gameid.Generate(),
		board:      game.NewBoard(d, gm.rng),
		lastActive: gm.clock.Now(),
	}
	gm.games[gs.id] = gs
	gm.mu.Unlock()

	gm.logger.Info("new game", "id", gs.id, "difficulty", d.String())
	return gm.stateOf(gs), nil
}

// Reveal uncovers a cell. The first effective reveal of a session starts
// its clock; no-op attempts (flagged cell, out of bounds) leave it untouched.
func (gm *GameManager) Reveal(id string, row, col int) (*protocol.GameStateData, error) {
	gs, err := gm.session(id)
	if err != nil {
		return nil, err
	}

	gs.mu.Lock()
	now := gm.clock.Now()
	if gs.board.Reveal(row, col) > 0 && gs.startedAt.IsZero() {
		gs.startedAt = now
	}
	if gs.board.Status() != game.Playing && gs.finishedAt.IsZero() {
		gs.finishedAt = now
	}
	gs.lastActive = now
	gs.mu.Unlock()

	return gm.stateOf(gs), nil
}

// Flag toggles a flag on a cell.
func (gm *GameManager) Flag(id string, row, col int) (*protocol.GameStateData, error) {
	gs, err := gm.session(id)
	if err != nil {
		return nil, err
	}

	gs.mu.Lock()
	gs.board.ToggleFlag(row, col)
	gs.lastActive = gm.clock.Now()
	gs.mu.Unlock()

	return gm.stateOf(gs), nil
}

// State returns the current state of a session without mutating it.
func (gm *GameManager) State(id string) (*protocol.GameStateData, error) {
	gs, err := gm.session(id)
	if err != nil {
		return nil, err
	}
	return gm.stateOf(gs), nil
}

// ActiveGames returns the number of live sessions.
func (gm *GameManager) ActiveGames() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return len(gm.games)
}

// ExpireIdle drops sessions idle for longer than maxIdle and returns how
// many were removed.
func (gm *GameManager) ExpireIdle(maxIdle time.Duration) int {
	cutoff := gm.clock.Now().Add(-maxIdle)

	gm.mu.Lock()
	defer gm.mu.Unlock()
	expired := 0
	for id, gs := range gm.games {
		gs.mu.Lock()
		idle := gs.lastActive.Before(cutoff)
		gs.mu.Unlock()
		if idle {
			delete(gm.games, id)
			expired++
		}
	}
	if expired > 0 {
		gm.logger.Info("expired idle games", "count", expired, "remaining", len(gm.games))
	}
	return expired
}

func (gm *GameManager) session(id string) (*gameSession, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gs, ok := gm.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return gs, nil
}

func (gm *GameManager) stateOf(gs *gameSession) *protocol.GameStateData {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return &protocol.GameStateData{
		GameID:  gs.id,
		Board:   gs.board.View(),
		Elapsed: gs.elapsedAt(gm.clock.Now()),
	}
}
