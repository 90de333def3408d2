package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/minesweeper/internal/game"
	"github.com/lox/minesweeper/internal/gameid"
	"github.com/lox/minesweeper/internal/randutil"
)

func newTestManager(t *testing.T) (*GameManager, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	logger := log.New(io.Discard)
	return NewGameManager(randutil.New(1), clock, logger, 100), clock
}

func TestNewGameReturnsInitialState(t *testing.T) {
	gm, _ := newTestManager(t)

	state, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)

	require.NoError(t, gameid.Validate(state.GameID))
	assert.Equal(t, "playing", state.Board.Status)
	assert.Equal(t, 10, state.Board.MinesRemaining)
	assert.Equal(t, 0, state.Elapsed)
	assert.Equal(t, 1, gm.ActiveGames())
}

func TestNewGameRejectsInvalidDifficulty(t *testing.T) {
	gm, _ := newTestManager(t)
	_, err := gm.NewGame(game.Difficulty{Rows: 2, Cols: 2, Mines: 4})
	assert.Error(t, err)
}

func TestNewGameEnforcesSessionCap(t *testing.T) {
	clock := quartz.NewMock(t)
	gm := NewGameManager(randutil.New(1), clock, log.New(io.Discard), 2)

	_, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)
	_, err = gm.NewGame(game.Beginner)
	require.NoError(t, err)
	_, err = gm.NewGame(game.Beginner)
	assert.ErrorIs(t, err, ErrTooManyGames)
}

func TestRevealUnknownGame(t *testing.T) {
	gm, _ := newTestManager(t)
	_, err := gm.Reveal("0123456789abcdefghjkmnpqrs", 0, 0)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestElapsedStartsOnFirstReveal(t *testing.T) {
	gm, clock := newTestManager(t)

	state, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)
	id := state.GameID

	clock.Advance(5 * time.Second)
	state, err = gm.State(id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Elapsed, "clock must not run before the first reveal")

	_, err = gm.Reveal(id, 0, 0)
	require.NoError(t, err)

	clock.Advance(3 * time.Second)
	state, err = gm.State(id)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Elapsed)
}

func TestElapsedFreezesWhenGameEnds(t *testing.T) {
	gm, clock := newTestManager(t)

	state, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)
	id := state.GameID

	_, err = gm.Reveal(id, 0, 0)
	require.NoError(t, err)
	clock.Advance(4 * time.Second)

	// Reveal hidden cells through the view until the game ends, win or lose.
	state, err = gm.State(id)
	require.NoError(t, err)
	done := false
	for row := 0; row < state.Board.Rows && !done; row++ {
		for col := 0; col < state.Board.Cols && !done; col++ {
			if state.Board.Cells[row][col].State == "hidden" {
				state, err = gm.Reveal(id, row, col)
				require.NoError(t, err)
				done = state.Board.Status != "playing"
			}
		}
	}
	require.True(t, done)

	frozen := state.Elapsed
	clock.Advance(10 * time.Second)
	state, err = gm.State(id)
	require.NoError(t, err)
	assert.Equal(t, frozen, state.Elapsed)
	assert.NotEqual(t, "playing", state.Board.Status)
}

func TestFlagUpdatesCounter(t *testing.T) {
	gm, _ := newTestManager(t)

	state, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)

	state, err = gm.Flag(state.GameID, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 9, state.Board.MinesRemaining)
	assert.Equal(t, "flagged", state.Board.Cells[4][4].State)
}

func TestExpireIdleDropsStaleGames(t *testing.T) {
	gm, clock := newTestManager(t)

	fresh, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)
	stale, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	_, err = gm.Flag(fresh.GameID, 0, 0)
	require.NoError(t, err)
	clock.Advance(15 * time.Minute)

	expired := gm.ExpireIdle(30 * time.Minute)

	assert.Equal(t, 1, expired)
	_, err = gm.State(stale.GameID)
	assert.ErrorIs(t, err, ErrGameNotFound)
	_, err = gm.State(fresh.GameID)
	assert.NoError(t, err)
}

func TestClockIgnoresNoopReveals(t *testing.T) {
	gm, clock := newTestManager(t)

	state, err := gm.NewGame(game.Beginner)
	require.NoError(t, err)
	id := state.GameID

	_, err = gm.Flag(id, 0, 0)
	require.NoError(t, err)
	_, err = gm.Reveal(id, 0, 0) // flagged: nothing is uncovered
	require.NoError(t, err)
	_, err = gm.Reveal(id, -1, 99) // out of bounds
	require.NoError(t, err)

	clock.Advance(5 * time.Second)
	state, err = gm.State(id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Elapsed, "no-op reveals must not start the clock")

	_, err = gm.Flag(id, 0, 0)
	require.NoError(t, err)
	_, err = gm.Reveal(id, 0, 0)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	state, err = gm.State(id)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Elapsed)
}
