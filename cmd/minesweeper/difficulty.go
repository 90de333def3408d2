package main

import (
	"github.com/lox/minesweeper/internal/game"
)

// difficultyFlags are the board-shape flags shared by the play, solve and
// simulate commands. An explicit rows/cols/mines triple overrides the
// preset name.
type difficultyFlags struct {
	Difficulty string `kong:"default='beginner',help='Preset difficulty: beginner, intermediate or expert'"`
	Rows       int    `kong:"help='Custom board rows (overrides --difficulty)'"`
	Cols       int    `kong:"help='Custom board columns (overrides --difficulty)'"`
	Mines      int    `kong:"help='Custom mine count (overrides --difficulty)'"`
}

func (f difficultyFlags) resolve() (game.Difficulty, error) {
	if f.Rows != 0 || f.Cols != 0 || f.Mines != 0 {
		d := game.Difficulty{Rows: f.Rows, Cols: f.Cols, Mines: f.Mines}
		return d, d.Validate()
	}
	return game.PresetByName(f.Difficulty)
}
