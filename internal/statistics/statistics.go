// Package statistics aggregates results of solver-played minesweeper games.
package statistics

import (
	"fmt"
	"math"
	"strings"
)

// GameResult is the outcome of a single solver-played game.
type GameResult struct {
	Won      bool
	Moves    int   // total moves the solver made
	Guesses  int   // moves that were not logically forced
	Revealed int   // cells revealed when the game ended
	Seed     int64 // RNG seed for this game, for replay
}

// Statistics tracks aggregate outcomes across many games.
type Statistics struct {
	Games       int
	Wins        int
	Losses      int
	CleanWins   int // wins that needed exactly one guess (the opening move)
	Moves       int
	Guesses     int
	Revealed    int
	LosingSeeds []int64 // kept for replaying failures, capped by caller
}

// Add incorporates one game result.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.Moves += result.Moves
	s.Guesses += result.Guesses
	s.Revealed += result.Revealed
	if result.Won {
		s.Wins++
		if result.Guesses <= 1 {
			s.CleanWins++
		}
	} else {
		s.Losses++
		if len(s.LosingSeeds) < 10 {
			s.LosingSeeds = append(s.LosingSeeds, result.Seed)
		}
	}
}

// Merge folds another statistics value into this one. LosingSeeds keeps the
// first ten across both.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.CleanWins += other.CleanWins
	s.Moves += other.Moves
	s.Guesses += other.Guesses
	s.Revealed += other.Revealed
	for _, seed := range other.LosingSeeds {
		if len(s.LosingSeeds) >= 10 {
			break
		}
		s.LosingSeeds = append(s.LosingSeeds, seed)
	}
}

// WinRate returns the fraction of games won, in [0,1].
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// StdError returns the standard error of the win rate (binomial).
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	p := s.WinRate()
	return math.Sqrt(p * (1 - p) / float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval of the win rate.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	p := s.WinRate()
	margin := 1.96 * s.StdError()
	return p - margin, p + margin
}

// GuessesPerGame returns the mean number of guesses per game.
func (s *Statistics) GuessesPerGame() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Guesses) / float64(s.Games)
}

// Validate performs consistency checks before results are reported.
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses != s.Games {
		return fmt.Errorf("wins (%d) + losses (%d) != games (%d)", s.Wins, s.Losses, s.Games)
	}
	if s.Guesses > s.Moves {
		return fmt.Errorf("guesses (%d) exceed moves (%d)", s.Guesses, s.Moves)
	}
	return nil
}

// Summary renders a human-readable report.
func (s *Statistics) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games:          %d\n", s.Games)
	fmt.Fprintf(&sb, "Wins:           %d (%.1f%%)\n", s.Wins, s.WinRate()*100)
	fmt.Fprintf(&sb, "Losses:         %d\n", s.Losses)
	fmt.Fprintf(&sb, "Clean wins:     %d\n", s.CleanWins)
	lo, hi := s.ConfidenceInterval95()
	fmt.Fprintf(&sb, "Win rate 95%%:   %.1f%% - %.1f%%\n", lo*100, hi*100)
	fmt.Fprintf(&sb, "Guesses/game:   %.2f\n", s.GuessesPerGame())
	if s.Games > 0 {
		fmt.Fprintf(&sb, "Revealed/game:  %.1f\n", float64(s.Revealed)/float64(s.Games))
	}
	if len(s.LosingSeeds) > 0 {
		fmt.Fprintf(&sb, "Losing seeds:   %v\n", s.LosingSeeds)
	}
	return sb.String()
}
