package main

import (
	"fmt"

	"github.com/lox/minesweeper/cmd/minesweeper/shared"
	"github.com/lox/minesweeper/internal/randutil"
	"github.com/lox/minesweeper/internal/simulator"
)

// SimulateCmd plays many solver games and reports aggregate statistics.
type SimulateCmd struct {
	difficultyFlags
	Games   int    `kong:"default='1000',help='Number of games to play'"`
	Seed    *int64 `kong:"help='Base RNG seed; game i plays with seed+i (optional)'"`
	Workers int    `kong:"help='Worker goroutines (default GOMAXPROCS)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	d, err := c.resolve()
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	logger.Info("simulating", "difficulty", d.String(), "games", c.Games, "seed", seed)

	sim := simulator.New(simulator.Config{
		Difficulty: d,
		Games:      c.Games,
		Seed:       seed,
		Workers:    c.Workers,
		Logger:     logger,
	})

	ctx := shared.SetupSignalHandler(logger)
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(stats.Summary())
	return nil
}
