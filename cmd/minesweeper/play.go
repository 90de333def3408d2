package main

import (
	"github.com/lox/minesweeper/cmd/minesweeper/shared"
	"github.com/lox/minesweeper/internal/randutil"
	"github.com/lox/minesweeper/internal/tui"
)

// PlayCmd runs the interactive terminal game.
type PlayCmd struct {
	difficultyFlags
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	d, err := c.resolve()
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	logger.Debug("starting game", "difficulty", d.String(), "seed", seed)

	return tui.Run(d, randutil.New(seed), logger)
}
