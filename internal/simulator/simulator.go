// Package simulator plays many solver-driven minesweeper games and
// aggregates the outcomes.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/minesweeper/internal/game"
	"github.com/lox/minesweeper/internal/randutil"
	"github.com/lox/minesweeper/internal/solver"
	"github.com/lox/minesweeper/internal/statistics"
)

// Config holds configuration for a simulation run.
type Config struct {
	Difficulty game.Difficulty
	Games      int
	Seed       int64 // base seed; game i plays with Seed+i
	Workers    int   // 0 means GOMAXPROCS
	Logger     *log.Logger
}

// Simulator runs solver-vs-board simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run plays the configured number of games across a worker pool and returns
// the aggregated statistics. Each game derives its seed from the base seed
// plus its index, so a run is reproducible regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.config.Difficulty.Validate(); err != nil {
		return nil, fmt.Errorf("invalid difficulty: %w", err)
	}
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	stats := &statistics.Statistics{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	indexes := make(chan int)

	g.Go(func() error {
		defer close(indexes)
		for i := 0; i < s.config.Games; i++ {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := &statistics.Statistics{}
			for i := range indexes {
				local.Add(s.playGame(s.config.Seed + int64(i)))
			}
			mu.Lock()
			stats.Merge(local)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("simulation complete",
			"games", stats.Games, "wins", stats.Wins, "win_rate", stats.WinRate())
	}
	return stats, nil
}

func (s *Simulator) playGame(seed int64) statistics.GameResult {
	rng := randutil.New(seed)
	board := game.NewBoard(s.config.Difficulty, rng)
	moves, guesses := solver.New(board, rng).Play()

	revealed := 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if c, _ := board.CellAt(row, col); c.State == game.Revealed {
				revealed++
			}
		}
	}

	return statistics.GameResult{
		Won:      board.Status() == game.Won,
		Moves:    moves,
		Guesses:  guesses,
		Revealed: revealed,
		Seed:     seed,
	}
}
