// Package solver plays minesweeper with single-point logic: deductions that
// follow from one revealed digit and its neighborhood. When no deduction
// applies it falls back to a uniform random guess. It only reads the
// player-visible side of the board, never the mine layout.
package solver

import (
	rand "math/rand/v2"

	"github.com/lox/minesweeper/internal/game"
)

// MoveType says whether a move reveals or flags its target.
type MoveType int

const (
	MoveReveal MoveType = iota
	MoveFlag
)

func (mt MoveType) String() string {
	if mt == MoveFlag {
		return "flag"
	}
	return "reveal"
}

// Move is a single action the solver wants to take.
type Move struct {
	Row      int
	Col      int
	Type     MoveType
	Guess    bool   // true when the move is not a certainty
	Strategy string // "logic" or "random"
}

// Solver drives a board toward completion.
type Solver struct {
	board *game.Board
	rng   *rand.Rand
}

// New creates a solver for the given board. The rng is only consulted for
// guesses.
func New(board *game.Board, rng *rand.Rand) *Solver {
	return &Solver{board: board, rng: rng}
}

// NextMove returns the solver's next action, or nil when the board is
// finished or has nothing left to play. Certain moves are preferred over
// guesses: first safe reveals, then forced flags, then a random pick.
func (s *Solver) NextMove() *Move {
	if s.board.Status() != game.Playing {
		return nil
	}
	if m := s.findSafeReveal(); m != nil {
		return m
	}
	if m := s.findForcedFlag(); m != nil {
		return m
	}
	return s.randomGuess()
}

// Play runs the solver until the game ends, applying each move to the
// board. Returns the number of moves made and how many were guesses.
func (s *Solver) Play() (moves, guesses int) {
	for {
		m := s.NextMove()
		if m == nil {
			return moves, guesses
		}
		switch m.Type {
		case MoveFlag:
			s.board.ToggleFlag(m.Row, m.Col)
		default:
			s.board.Reveal(m.Row, m.Col)
		}
		moves++
		if m.Guess {
			guesses++
		}
	}
}

// findSafeReveal looks for a revealed digit whose flagged neighbors already
// account for all its mines; any other hidden neighbor is then safe.
func (s *Solver) findSafeReveal() *Move {
	for row := 0; row < s.board.Rows(); row++ {
		for col := 0; col < s.board.Cols(); col++ {
			cell, _ := s.board.CellAt(row, col)
			if cell.State != game.Revealed || cell.Mine || cell.Adjacent == 0 {
				continue
			}
			flags, hidden := s.neighborhood(row, col)
			if flags == cell.Adjacent && len(hidden) > 0 {
				h := hidden[0]
				return &Move{Row: h.row, Col: h.col, Type: MoveReveal, Strategy: "logic"}
			}
		}
	}
	return nil
}

// findForcedFlag looks for a revealed digit whose hidden and flagged
// neighbors together exactly cover its mines; every unflagged hidden
// neighbor must then be a mine.
func (s *Solver) findForcedFlag() *Move {
	for row := 0; row < s.board.Rows(); row++ {
		for col := 0; col < s.board.Cols(); col++ {
			cell, _ := s.board.CellAt(row, col)
			if cell.State != game.Revealed || cell.Mine || cell.Adjacent == 0 {
				continue
			}
			flags, hidden := s.neighborhood(row, col)
			if flags+len(hidden) == cell.Adjacent && len(hidden) > 0 {
				h := hidden[0]
				return &Move{Row: h.row, Col: h.col, Type: MoveFlag, Strategy: "logic"}
			}
		}
	}
	return nil
}

// randomGuess picks uniformly over hidden unflagged cells.
func (s *Solver) randomGuess() *Move {
	var candidates []point
	for row := 0; row < s.board.Rows(); row++ {
		for col := 0; col < s.board.Cols(); col++ {
			cell, _ := s.board.CellAt(row, col)
			if cell.State == game.Hidden {
				candidates = append(candidates, point{row, col})
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	p := candidates[s.rng.IntN(len(candidates))]
	return &Move{Row: p.row, Col: p.col, Type: MoveReveal, Guess: true, Strategy: "random"}
}

type point struct{ row, col int }

// neighborhood counts flagged neighbors and collects hidden unflagged ones.
func (s *Solver) neighborhood(row, col int) (flags int, hidden []point) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			cell, ok := s.board.CellAt(r, c)
			if !ok {
				continue
			}
			switch cell.State {
			case game.Flagged:
				flags++
			case game.Hidden:
				hidden = append(hidden, point{r, c})
			}
		}
	}
	return flags, hidden
}
