package game

// CellView is the renderable projection of a single cell. Mine placement is
// only disclosed for revealed cells, so a view of a live board can be sent
// to an untrusted client without leaking the layout.
type CellView struct {
	State string `json:"state"`
	Count int    `json:"count,omitempty"`
	Mine  bool   `json:"mine,omitempty"`
}

// BoardView is the renderable projection of a whole board: everything a
// presentation layer needs and nothing it must not see.
type BoardView struct {
	Rows           int          `json:"rows"`
	Cols           int          `json:"cols"`
	Cells          [][]CellView `json:"cells"`
	MinesRemaining int          `json:"minesRemaining"`
	Status         string       `json:"status"`
}

// View builds the projection of the board's current state. A revealed
// zero-count cell carries Count 0 and renders blank; revealed digits carry
// 1-8. On a lost board every mine cell is already Revealed, so the full
// layout shows through here without special-casing.
func (b *Board) View() BoardView {
	cells := make([][]CellView, b.rows)
	for row := 0; row < b.rows; row++ {
		cells[row] = make([]CellView, b.cols)
		for col := 0; col < b.cols; col++ {
			c := b.cells[row*b.cols+col]
			v := CellView{State: c.State.String()}
			if c.State == Revealed {
				v.Mine = c.Mine
				if !c.Mine {
					v.Count = c.Adjacent
				}
			}
			cells[row][col] = v
		}
	}

	return BoardView{
		Rows:           b.rows,
		Cols:           b.cols,
		Cells:          cells,
		MinesRemaining: b.RemainingMines(),
		Status:         b.status.String(),
	}
}
