// Package tui is the terminal front end: a column cursor over the board,
// driven by the same engine notifications the browser page consumes.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/view"
	"github.com/rs/zerolog/log"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Drop:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "drop")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("27")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	cursorMark  = "▼"
	previewMark = "⭕"
)

type Model struct {
	width  int
	height int
	game   *domain.Game
	cursor int
	status string
}

func New(width, height int) *Model {
	m := &Model{width: width, height: height}
	m.newGame()
	return m
}

// newGame builds a fresh engine; a restart never reuses the old one
func (m *Model) newGame() {
	m.game = domain.NewGame(m.width, m.height)
	m.cursor = m.width / 2
	m.status = view.TurnMessage(m.game.CurrentPlayer())

	m.game.OnTurnChanged(func(player domain.Mark) { m.status = view.TurnMessage(player) })
	m.game.OnVictory(func(winner domain.Mark) { m.status = view.VictoryMessage(winner) })
	m.game.OnDraw(func() { m.status = view.DrawMessage() })
}

func (m *Model) Game() *domain.Game { return m.game }
func (m *Model) Cursor() int        { return m.cursor }
func (m *Model) Status() string     { return m.status }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Left):
		m.moveCursor(-1)
	case key.Matches(keyMsg, keys.Right):
		m.moveCursor(1)
	case key.Matches(keyMsg, keys.Drop):
		if !m.game.PlayColumn(m.cursor) {
			log.Debug().Int("column", m.cursor).Msg("Move rejected")
			break
		}
		if !m.columnOpen(m.cursor) {
			m.snapCursor()
		}
	case key.Matches(keyMsg, keys.Restart):
		m.newGame()
	}
	return m, nil
}

// moveCursor steps to the next column in dir that can still take a disc.
// With none left in that direction the cursor stays put.
func (m *Model) moveCursor(dir int) {
	open := domain.ValidColumns(m.game.Board(), m.width)
	if dir < 0 {
		for i := len(open) - 1; i >= 0; i-- {
			if open[i] < m.cursor {
				m.cursor = open[i]
				return
			}
		}
		return
	}
	for _, col := range open {
		if col > m.cursor {
			m.cursor = col
			return
		}
	}
}

// snapCursor moves off a column that just filled up, preferring the left.
func (m *Model) snapCursor() {
	before := m.cursor
	m.moveCursor(-1)
	if m.cursor == before {
		m.moveCursor(1)
	}
}

func (m *Model) columnOpen(col int) bool {
	for _, open := range domain.ValidColumns(m.game.Board(), m.width) {
		if open == col {
			return true
		}
	}
	return false
}

func (m *Model) View() string {
	var sb strings.Builder

	// cursor row and drop preview, hidden once the game is over
	preview := -1
	if !m.game.Finished() {
		if landing, ok := m.game.LandingIndex(m.cursor); ok {
			preview = landing
		}
	}
	for col := 0; col < m.width; col++ {
		if col == m.cursor && !m.game.Finished() {
			sb.WriteString(" " + cursorMark)
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	grid := view.RenderPreview(m.game.Board(), m.width, m.height, preview, previewMark)
	sb.WriteString(boardStyle.Render(strings.TrimSuffix(grid, "\n")))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.status))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(fmt.Sprintf("Moves: %d", m.game.MoveCount())))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(helpLine()))
	sb.WriteString("\n")
	return sb.String()
}

func helpLine() string {
	bindings := []key.Binding{keys.Left, keys.Right, keys.Drop, keys.Restart, keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " • ")
}
