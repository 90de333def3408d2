package game

import "fmt"

// Difficulty describes the shape of a board: its dimensions and how many
// mines are buried in it. Values are immutable once handed to NewBoard.
type Difficulty struct {
	Rows  int
	Cols  int
	Mines int
}

// The classic preset catalog.
var (
	Beginner     = Difficulty{Rows: 9, Cols: 9, Mines: 10}
	Intermediate = Difficulty{Rows: 16, Cols: 16, Mines: 40}
	Expert       = Difficulty{Rows: 16, Cols: 30, Mines: 99}
)

// Presets maps difficulty names to their descriptors.
var Presets = map[string]Difficulty{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// PresetByName looks up a named preset difficulty.
func PresetByName(name string) (Difficulty, error) {
	d, ok := Presets[name]
	if !ok {
		return Difficulty{}, fmt.Errorf("unknown difficulty %q (want beginner, intermediate or expert)", name)
	}
	return d, nil
}

// Validate checks that the difficulty describes a playable board. Mine
// placement requires at least one safe cell, so Mines must be strictly less
// than the cell count. NewBoard assumes a validated difficulty; callers must
// reject invalid ones here first.
func (d Difficulty) Validate() error {
	if d.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", d.Rows)
	}
	if d.Cols <= 0 {
		return fmt.Errorf("cols must be positive, got %d", d.Cols)
	}
	if d.Mines < 0 {
		return fmt.Errorf("mines must not be negative, got %d", d.Mines)
	}
	if d.Mines >= d.Rows*d.Cols {
		return fmt.Errorf("mines must be less than %d cells, got %d", d.Rows*d.Cols, d.Mines)
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%dx%d/%d", d.Rows, d.Cols, d.Mines)
}
