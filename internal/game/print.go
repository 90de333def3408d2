package game

import (
	"fmt"
	"strings"
)

// String renders the board as plain text, one glyph per cell: '.' hidden,
// 'F' flagged, '*' revealed mine, ' ' revealed blank, digits otherwise.
// Meant for logs and solver traces, not gameplay.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			c := b.cells[row*b.cols+col]
			switch {
			case c.State == Flagged:
				sb.WriteByte('F')
			case c.State == Hidden:
				sb.WriteByte('.')
			case c.Mine:
				sb.WriteByte('*')
			case c.Adjacent == 0:
				sb.WriteByte(' ')
			default:
				fmt.Fprintf(&sb, "%d", c.Adjacent)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
