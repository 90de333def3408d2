package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/minesweeper/internal/game"
	"github.com/lox/minesweeper/internal/randutil"
)

func TestForcedFlagDeduction(t *testing.T) {
	// 1x3 with the mine on the right. Revealing the middle shows a 1 whose
	// only hidden neighbor is the mine: it must be flagged.
	b := game.NewBoardWithMines(1, 3, [2]int{0, 2})
	b.Reveal(0, 1)
	b.Reveal(0, 0)

	s := New(b, randutil.New(1))
	m := s.NextMove()

	require.NotNil(t, m)
	assert.Equal(t, MoveFlag, m.Type)
	assert.Equal(t, 0, m.Row)
	assert.Equal(t, 2, m.Col)
	assert.False(t, m.Guess)
	assert.Equal(t, "logic", m.Strategy)
}

func TestSafeRevealDeduction(t *testing.T) {
	// 1x3, mine on the right and already flagged. The revealed middle 1 is
	// satisfied, so the remaining hidden neighbor on the left is safe.
	b := game.NewBoardWithMines(1, 3, [2]int{0, 2})
	b.Reveal(0, 1)
	b.ToggleFlag(0, 2)

	s := New(b, randutil.New(1))
	m := s.NextMove()

	require.NotNil(t, m)
	assert.Equal(t, MoveReveal, m.Type)
	assert.Equal(t, 0, m.Row)
	assert.Equal(t, 0, m.Col)
	assert.False(t, m.Guess)
}

func TestGuessWhenNoDeductionApplies(t *testing.T) {
	b := game.NewBoardWithMines(3, 3, [2]int{0, 0})

	s := New(b, randutil.New(1))
	m := s.NextMove()

	require.NotNil(t, m)
	assert.Equal(t, MoveReveal, m.Type)
	assert.True(t, m.Guess)
	assert.Equal(t, "random", m.Strategy)
}

func TestNoMoveOnFinishedBoard(t *testing.T) {
	b := game.NewBoardWithMines(2, 2, [2]int{0, 0})
	b.Reveal(0, 0)
	require.Equal(t, game.Lost, b.Status())

	s := New(b, randutil.New(1))
	assert.Nil(t, s.NextMove())
}

func TestPlayFinishesEveryGame(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := randutil.New(seed)
		b := game.NewBoard(game.Beginner, rng)
		s := New(b, rng)

		moves, guesses := s.Play()

		assert.NotEqual(t, game.Playing, b.Status(), "seed %d", seed)
		assert.Greater(t, moves, 0, "seed %d", seed)
		assert.GreaterOrEqual(t, moves, guesses, "seed %d", seed)
	}
}

func TestPlaySolvesMinelessBoardWithoutGuessing(t *testing.T) {
	b := game.NewBoardWithMines(4, 4)
	s := New(b, randutil.New(1))

	_, guesses := s.Play()

	assert.Equal(t, game.Won, b.Status())
	// The first move is always blind; the flood fill finishes the rest.
	assert.Equal(t, 1, guesses)
}
