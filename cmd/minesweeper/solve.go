package main

import (
	"fmt"

	"github.com/lox/minesweeper/cmd/minesweeper/shared"
	"github.com/lox/minesweeper/internal/game"
	"github.com/lox/minesweeper/internal/randutil"
	"github.com/lox/minesweeper/internal/solver"
)

// SolveCmd has the logic solver play a single game, tracing each move.
type SolveCmd struct {
	difficultyFlags
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Trace bool   `kong:"help='Print the board after every move'"`
}

func (c *SolveCmd) Run() error {
	logger := shared.SetupLogger(true)

	d, err := c.resolve()
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	rng := randutil.New(seed)
	board := game.NewBoard(d, rng)
	s := solver.New(board, rng)

	logger.Info("solving", "difficulty", d.String(), "seed", seed)

	moves := 0
	for {
		m := s.NextMove()
		if m == nil {
			break
		}
		moves++
		logger.Debug("move", "n", moves, "type", m.Type.String(),
			"row", m.Row, "col", m.Col, "strategy", m.Strategy, "guess", m.Guess)

		switch m.Type {
		case solver.MoveFlag:
			board.ToggleFlag(m.Row, m.Col)
		default:
			board.Reveal(m.Row, m.Col)
		}

		if c.Trace {
			fmt.Println(board.String())
		}
	}

	fmt.Println(board.String())
	logger.Info("finished", "result", board.Status().String(), "moves", moves)
	if board.Status() == game.Lost {
		logger.Info("replay this board", "seed", seed)
	}
	return nil
}
