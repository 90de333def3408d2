// Package game implements the minesweeper rules engine: board generation,
// reveal propagation, flag bookkeeping and win/loss determination. It is
// UI-agnostic and, given the same RNG, fully deterministic.
package game

import (
	rand "math/rand/v2"
	"time"
)

// CellState is the player-visible state of a single cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a board. It only moves forward:
// Playing -> Won or Playing -> Lost, and a finished board never mutates.
type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Cell is a single grid position. Mine and Adjacent are fixed at board
// creation; only State changes afterwards. Adjacent is not meaningful for
// mine cells.
type Cell struct {
	Mine     bool
	State    CellState
	Adjacent int
}

// Board owns the grid and all game state. Cells are stored row-major:
// index = row*cols + col. A Board is not safe for concurrent mutation;
// callers running it under concurrency must serialize all mutating calls.
type Board struct {
	rows    int
	cols    int
	mines   int
	cells   []Cell
	flagged int
	status  Status
	events  EventBus
}

// NewBoard allocates a board for the given difficulty, places exactly
// d.Mines mines uniformly at random and precomputes every non-mine cell's
// adjacent-mine count. The difficulty must satisfy Validate; NewBoard does
// not re-check it. A nil rng gets a time-seeded one.
//
// Placement is rejection sampling: draw a cell, resample if it already holds
// a mine. This terminates with probability 1 because Validate guarantees at
// least one safe cell, and mine density stays far from saturation for every
// preset.
func NewBoard(d Difficulty, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	b := &Board{
		rows:  d.Rows,
		cols:  d.Cols,
		mines: d.Mines,
		cells: make([]Cell, d.Rows*d.Cols),
	}

	placed := 0
	for placed < d.Mines {
		i := rng.IntN(len(b.cells))
		if b.cells[i].Mine {
			continue
		}
		b.cells[i].Mine = true
		placed++
	}

	for i := range b.cells {
		if b.cells[i].Mine {
			continue
		}
		b.cells[i].Adjacent = b.countAdjacentMines(i/d.Cols, i%d.Cols)
	}

	return b
}

// NewBoardWithMines builds a board with an explicit mine layout, given as
// (row, col) pairs. Out-of-bounds and duplicate positions are ignored.
// Useful for fixed puzzles and deterministic tests.
func NewBoardWithMines(rows, cols int, mines ...[2]int) *Board {
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for _, m := range mines {
		if !b.inBounds(m[0], m[1]) {
			continue
		}
		i := m[0]*cols + m[1]
		if !b.cells[i].Mine {
			b.cells[i].Mine = true
			b.mines++
		}
	}
	for i := range b.cells {
		if !b.cells[i].Mine {
			b.cells[i].Adjacent = b.countAdjacentMines(i/cols, i%cols)
		}
	}
	return b
}

// SetEventBus attaches a bus that receives game events from mutating calls.
// The engine works identically without one.
func (b *Board) SetEventBus(bus EventBus) {
	b.events = bus
}

func (b *Board) publish(ev GameEvent) {
	if b.events != nil {
		b.events.Publish(ev)
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Mines returns the number of mines on the board.
func (b *Board) Mines() int { return b.mines }

// Status returns the board's lifecycle state.
func (b *Board) Status() Status { return b.status }

// FlaggedCount returns the number of currently flagged cells.
func (b *Board) FlaggedCount() int { return b.flagged }

// RemainingMines returns mines minus flags. It is deliberately unclamped:
// over-flagging drives it negative and the caller displays it as-is.
func (b *Board) RemainingMines() int {
	return b.mines - b.flagged
}

// CellAt returns the cell at (row, col). ok is false out of bounds.
func (b *Board) CellAt(row, col int) (Cell, bool) {
	if !b.inBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row*b.cols+col], true
}

// HiddenSafeCount returns the number of non-mine cells not yet revealed.
// The board is won when this reaches zero.
func (b *Board) HiddenSafeCount() int {
	n := 0
	for _, c := range b.cells {
		if !c.Mine && c.State != Revealed {
			n++
		}
	}
	return n
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) countAdjacentMines(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if b.inBounds(r, c) && b.cells[r*b.cols+c].Mine {
				count++
			}
		}
	}
	return count
}

// Reveal uncovers the cell at (row, col) and returns how many cells it
// revealed. Revealing a mine loses the game and discloses the full mine
// layout; revealing a zero-count cell flood fills its contiguous zero region
// plus the numbered boundary. Calls on a finished board, an out-of-bounds
// coordinate, or a non-Hidden cell are silent no-ops returning zero.
func (b *Board) Reveal(row, col int) int {
	if b.status != Playing || !b.inBounds(row, col) {
		return 0
	}
	if b.cells[row*b.cols+col].State != Hidden {
		return 0
	}

	revealed := b.floodReveal(row, col)

	if b.status == Playing && b.HiddenSafeCount() == 0 {
		b.status = Won
	}

	b.publish(NewCellsRevealedEvent(row, col, revealed))
	if b.status != Playing {
		b.publish(NewGameOverEvent(b.status))
	}
	return revealed
}

type coord struct{ row, col int }

// floodReveal is an iterative worklist traversal rather than the naive
// recursive fill: recursion depth would otherwise be bounded only by the
// size of the contiguous zero region. Returns how many cells were revealed.
func (b *Board) floodReveal(row, col int) int {
	revealed := 0
	stack := []coord{{row, col}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Guards both the entry call and every expansion: already-revealed
		// neighbors terminate here, which bounds the traversal.
		if !b.inBounds(cur.row, cur.col) {
			continue
		}
		cell := &b.cells[cur.row*b.cols+cur.col]
		if cell.State != Hidden {
			continue
		}

		cell.State = Revealed
		revealed++

		if cell.Mine {
			b.status = Lost
			b.discloseMines()
			return revealed
		}

		if cell.Adjacent == 0 {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr != 0 || dc != 0 {
						stack = append(stack, coord{cur.row + dr, cur.col + dc})
					}
				}
			}
		}
	}
	return revealed
}

// discloseMines reveals every mine cell on loss, flags included.
func (b *Board) discloseMines() {
	for i := range b.cells {
		if !b.cells[i].Mine {
			continue
		}
		if b.cells[i].State == Flagged {
			b.flagged--
		}
		b.cells[i].State = Revealed
	}
}

// ToggleFlag flips the flag on a Hidden or Flagged cell. Flags are a player
// annotation only: toggling never consults mine placement and never changes
// the board status. Calls on a finished board, an out-of-bounds coordinate,
// or a Revealed cell are silent no-ops.
func (b *Board) ToggleFlag(row, col int) {
	if b.status != Playing || !b.inBounds(row, col) {
		return
	}
	cell := &b.cells[row*b.cols+col]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		b.flagged++
	case Flagged:
		cell.State = Hidden
		b.flagged--
	default:
		return
	}
	b.publish(NewFlagToggledEvent(row, col, cell.State == Flagged, b.RemainingMines()))
}
