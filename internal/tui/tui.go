// Package tui renders an interactive minesweeper session in the terminal
// using Bubble Tea. The model owns everything the engine deliberately does
// not: the cursor, the elapsed-time clock and the keybindings.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/minesweeper/internal/game"
)

// maxElapsedDisplay caps the timer readout; the clock itself keeps going.
const maxElapsedDisplay = 999

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reveal key.Binding
	Flag   key.Binding
	New    key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.New, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.New, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Reveal: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "reveal")),
	Flag:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
	New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// tickMsg advances the elapsed-time clock once per second.
type tickMsg time.Time

// Model is the Bubble Tea model for a minesweeper session.
type Model struct {
	board      *game.Board
	difficulty game.Difficulty
	rng        *rand.Rand
	logger     *log.Logger

	cursorRow int
	cursorCol int
	started   bool // first reveal made; clock is running
	elapsed   int
	quitting  bool

	keys keyMap
	help help.Model
}

// NewModel creates a model playing the given difficulty. The difficulty
// must already be validated.
func NewModel(d game.Difficulty, rng *rand.Rand, logger *log.Logger) *Model {
	return &Model{
		board:      game.NewBoard(d, rng),
		difficulty: d,
		rng:        rng,
		logger:     logger.WithPrefix("tui"),
		keys:       defaultKeyMap,
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// A stale tick chain from a previous game dies here: new game
		// resets started until its first reveal.
		if !m.started || m.board.Status() != game.Playing {
			return m, nil
		}
		m.elapsed++
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Reveal):
		// Only an effective reveal starts the clock: pressing reveal on a
		// flagged cell leaves the game untouched.
		if m.board.Reveal(m.cursorRow, m.cursorCol) > 0 && !m.started {
			m.started = true
			if m.board.Status() == game.Playing {
				return m, tick()
			}
		}

	case key.Matches(msg, m.keys.Flag):
		m.board.ToggleFlag(m.cursorRow, m.cursorCol)

	case key.Matches(msg, m.keys.New):
		m.board = game.NewBoard(m.difficulty, m.rng)
		m.cursorRow, m.cursorCol = 0, 0
		m.started = false
		m.elapsed = 0
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	row, col := m.cursorRow+dr, m.cursorCol+dc
	if row >= 0 && row < m.board.Rows() {
		m.cursorRow = row
	}
	if col >= 0 && col < m.board.Cols() {
		m.cursorCol = col
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("minesweeper " + m.difficulty.String()))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderGrid())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return sb.String()
}

func (m *Model) renderGrid() string {
	var sb strings.Builder
	for row := 0; row < m.board.Rows(); row++ {
		for col := 0; col < m.board.Cols(); col++ {
			cell, _ := m.board.CellAt(row, col)
			var glyph string
			if row == m.cursorRow && col == m.cursorCol {
				// Plain glyph under the cursor so the highlight reads cleanly.
				glyph = CursorStyle.Render(cellGlyph(cell))
			} else {
				glyph = m.renderCell(cell)
			}
			sb.WriteString(glyph)
			if col < m.board.Cols()-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellGlyph(cell game.Cell) string {
	switch cell.State {
	case game.Flagged:
		return "⚑"
	case game.Hidden:
		return "·"
	default:
		if cell.Mine {
			return "✱"
		}
		if cell.Adjacent == 0 {
			return " "
		}
		return fmt.Sprintf("%d", cell.Adjacent)
	}
}

func (m *Model) renderCell(cell game.Cell) string {
	switch cell.State {
	case game.Flagged:
		return FlagStyle.Render("⚑")
	case game.Hidden:
		return HiddenStyle.Render("·")
	default:
		if cell.Mine {
			return MineStyle.Render("✱")
		}
		if cell.Adjacent == 0 {
			return " "
		}
		return digitStyles[cell.Adjacent].Render(fmt.Sprintf("%d", cell.Adjacent))
	}
}

func (m *Model) renderStatus() string {
	elapsed := m.elapsed
	if elapsed > maxElapsedDisplay {
		elapsed = maxElapsedDisplay
	}
	counter := fmt.Sprintf("mines: %d  time: %03d", m.board.RemainingMines(), elapsed)

	switch m.board.Status() {
	case game.Won:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			StatusStyle.Render(counter+"  "), WonStyle.Render("cleared! press n for a new game"))
	case game.Lost:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			StatusStyle.Render(counter+"  "), LostStyle.Render("boom. press n for a new game"))
	default:
		return StatusStyle.Render(counter)
	}
}

// Run starts the program and blocks until the player quits.
func Run(d game.Difficulty, rng *rand.Rand, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(d, rng, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
