package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	WonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	HiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	FlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	MineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// digitStyles colors revealed counts 1-8 after the classic minesweeper
// palette. Index 0 is unused: zero-count cells render blank.
var digitStyles = [9]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("#4FC3F7")).Bold(true), // blue
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("#81C784")).Bold(true), // green
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("#E57373")).Bold(true), // red
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("#7986CB")).Bold(true), // dark blue
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("#A1887F")).Bold(true), // maroon
	6: lipgloss.NewStyle().Foreground(lipgloss.Color("#4DB6AC")).Bold(true), // teal
	7: lipgloss.NewStyle().Foreground(lipgloss.Color("#F06292")).Bold(true), // magenta
	8: lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD")).Bold(true), // grey
}
