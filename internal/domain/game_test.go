package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every notification a game emits.
type recorder struct {
	updates   []Board
	turns     []Mark
	victories []Mark
	draws     int
}

func (r *recorder) total() int {
	return len(r.updates) + len(r.turns) + len(r.victories) + r.draws
}

func record(g *Game) *recorder {
	r := &recorder{}
	g.OnBoardUpdate(func(b Board) { r.updates = append(r.updates, b) })
	g.OnTurnChanged(func(m Mark) { r.turns = append(r.turns, m) })
	g.OnVictory(func(m Mark) { r.victories = append(r.victories, m) })
	g.OnDraw(func() { r.draws++ })
	return r
}

func playColumns(t *testing.T, g *Game, cols ...int) {
	t.Helper()
	for _, col := range cols {
		require.True(t, g.Play(col), "move into column %d rejected", col)
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame(7, 6)

	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 6, g.Height())
	assert.Len(t, g.Board(), 42)
	assert.Equal(t, Yellow, g.CurrentPlayer())
	assert.False(t, g.Finished())
	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, Empty, g.Winner())
	for i, cell := range g.Board() {
		assert.Equal(t, Empty, cell, "cell %d", i)
	}
}

func TestPlayLandsOnBottomRow(t *testing.T) {
	g := NewGame(7, 7)
	r := record(g)

	require.True(t, g.Play(3))

	assert.Equal(t, Yellow, g.Cell(Index(7, 6, 3)))
	for i, cell := range g.Board() {
		if i != Index(7, 6, 3) {
			assert.Equal(t, Empty, cell, "cell %d", i)
		}
	}
	require.Len(t, r.updates, 1)
	assert.Equal(t, Yellow, r.updates[0][45])
	assert.Equal(t, []Mark{Red}, r.turns)
}

func TestPlayStacksMarks(t *testing.T) {
	g := NewGame(7, 7)
	playColumns(t, g, 2, 2, 2)

	assert.Equal(t, Yellow, g.Cell(Index(7, 6, 2)))
	assert.Equal(t, Red, g.Cell(Index(7, 5, 2)))
	assert.Equal(t, Yellow, g.Cell(Index(7, 4, 2)))
	assert.Equal(t, Empty, g.Cell(Index(7, 3, 2)))
}

func TestPlayNeverLeavesGapBelow(t *testing.T) {
	for _, dims := range [][2]int{{7, 7}, {7, 6}, {4, 4}, {5, 9}} {
		width, height := dims[0], dims[1]
		g := NewGame(width, height)
		for col := 0; col < width && !g.Finished(); col++ {
			for n := 0; n < height && !g.Finished(); n++ {
				landing, ok := g.LandingIndex(col)
				require.True(t, ok)
				require.True(t, g.Play(col))
				assert.Equal(t, height-1-n, RowOf(width, landing))
				if below := landing + width; below < width*height {
					assert.NotEqual(t, Empty, g.Cell(below))
				}
			}
		}
	}
}

func TestPlayRejectsFullColumn(t *testing.T) {
	g := NewGame(7, 7)
	// alternating marks in one column never make four
	playColumns(t, g, 0, 0, 0, 0, 0, 0, 0)
	require.False(t, g.Finished())

	before := g.Board()
	player := g.CurrentPlayer()
	r := record(g)

	assert.False(t, g.Play(0))
	assert.Equal(t, before, g.Board())
	assert.Equal(t, player, g.CurrentPlayer())
	assert.Zero(t, r.total())
	assert.ErrorIs(t, g.Validate(0), ErrColumnFull)
}

func TestPlayRejectsOutOfRange(t *testing.T) {
	g := NewGame(7, 7)
	r := record(g)

	for _, target := range []int{-1, 49, 100} {
		assert.False(t, g.Play(target), "target %d", target)
		assert.ErrorIs(t, g.Validate(target), ErrOutOfRange)
	}
	assert.Zero(t, r.total())
	assert.Equal(t, NewBoard(7, 7), g.Board())
}

func TestPlayColumnRejectsOutOfRange(t *testing.T) {
	g := NewGame(7, 7)

	assert.False(t, g.PlayColumn(-1))
	assert.False(t, g.PlayColumn(7))
	assert.True(t, g.PlayColumn(6))
	assert.Equal(t, Yellow, g.Cell(48))
}

func TestPlayFromLowerCellUsesThatCellsColumn(t *testing.T) {
	g := NewGame(7, 7)

	// a non-top index is accepted as long as that cell itself is empty
	require.True(t, g.Play(Index(7, 3, 2)))
	assert.Equal(t, Yellow, g.Cell(Index(7, 6, 2)))

	require.True(t, g.Play(Index(7, 3, 2)))
	assert.Equal(t, Red, g.Cell(Index(7, 5, 2)))
}

func TestTurnAlternates(t *testing.T) {
	g := NewGame(7, 7)
	r := record(g)

	expected := Yellow
	for _, col := range []int{0, 1, 2, 3, 4, 5, 6, 0} {
		require.Equal(t, expected, g.CurrentPlayer())
		require.True(t, g.Play(col))
		assert.Equal(t, expected.Opponent(), g.CurrentPlayer())
		expected = expected.Opponent()
	}
	assert.Equal(t, []Mark{Red, Yellow, Red, Yellow, Red, Yellow, Red, Yellow}, r.turns)
	assert.Equal(t, 8, g.MoveCount())
}

func TestBottomRowVictory(t *testing.T) {
	g := NewGame(7, 7)
	r := record(g)

	// yellow takes columns 0..3 on the bottom row, red stacks on top
	playColumns(t, g, 0, 0, 1, 1, 2, 2)
	turnsBefore := len(r.turns)
	require.True(t, g.Play(3))

	assert.True(t, g.Finished())
	assert.Equal(t, StatusWon, g.Status())
	assert.Equal(t, Yellow, g.Winner())
	assert.Equal(t, []Mark{Yellow}, r.victories)
	assert.Equal(t, turnsBefore, len(r.turns), "no turn switch after the winning move")
	assert.Equal(t, Yellow, g.CurrentPlayer())
	assert.Zero(t, r.draws)
	assert.Len(t, r.updates, 7)
}

func TestVerticalVictory(t *testing.T) {
	g := NewGame(7, 6)
	r := record(g)

	playColumns(t, g, 4, 5, 4, 5, 4, 5, 4)

	assert.True(t, g.Finished())
	assert.Equal(t, Yellow, g.Winner())
	assert.Equal(t, []Mark{Yellow}, r.victories)
}

func TestRedCanWin(t *testing.T) {
	g := NewGame(7, 6)
	r := record(g)

	playColumns(t, g, 0, 6, 1, 6, 0, 6, 1, 6)

	assert.True(t, g.Finished())
	assert.Equal(t, Red, g.Winner())
	assert.Equal(t, []Mark{Red}, r.victories)
}

func TestDiagonalVictoryThroughPlay(t *testing.T) {
	g := NewGame(7, 6)

	// yellow builds a rising diagonal from (5,0) to (2,3)
	playColumns(t, g,
		0, 1, // Y(5,0) R(5,1)
		1, 2, // Y(4,1) R(5,2)
		2, 3, // Y(4,2) R(5,3)
		2, 3, // Y(3,2) R(4,3)
		3, 6, // Y(3,3) R(5,6)
	)
	require.False(t, g.Finished())
	require.True(t, g.Play(3)) // Y(2,3)

	assert.True(t, g.Finished())
	assert.Equal(t, Yellow, g.Winner())
}

func TestPlayAfterFinishedIsRejected(t *testing.T) {
	g := NewGame(7, 7)
	playColumns(t, g, 0, 0, 1, 1, 2, 2, 3)
	require.True(t, g.Finished())

	before := g.Board()
	r := record(g)

	for col := 0; col < 7; col++ {
		assert.False(t, g.Play(col))
	}
	assert.Equal(t, before, g.Board())
	assert.Zero(t, r.total())
	assert.ErrorIs(t, g.Validate(4), ErrGameFinished)
	_, ok := g.LandingIndex(4)
	assert.False(t, ok)
}

// drawOrder returns a move sequence that fills a board whose width is a
// multiple of four without ever making four in a row. Cells are coloured by
// pairs of columns, flipping every row, and each row is played bottom-up with
// the colours interleaved so alternation holds.
func drawOrder(width, height int) []int {
	var order []int
	for row := height - 1; row >= 0; row-- {
		var yellow, red []int
		for col := 0; col < width; col++ {
			if (col/2+row)%2 == (height-1)%2 {
				yellow = append(yellow, col)
			} else {
				red = append(red, col)
			}
		}
		for i := range yellow {
			order = append(order, yellow[i], red[i])
		}
	}
	return order
}

func TestDrawWhenBoardFills(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {8, 6}, {4, 7}} {
		width, height := dims[0], dims[1]
		g := NewGame(width, height)
		r := record(g)

		order := drawOrder(width, height)
		require.Len(t, order, width*height)
		playColumns(t, g, order...)

		assert.True(t, g.Finished(), "%dx%d", width, height)
		assert.Equal(t, StatusDraw, g.Status())
		assert.Equal(t, Empty, g.Winner())
		assert.Equal(t, 1, r.draws)
		assert.Empty(t, r.victories)
		assert.Len(t, r.turns, width*height-1)
		assert.True(t, g.CheckDraw())
		assert.False(t, g.CheckVictory())
	}
}

func TestSmallBoardCanOnlyDraw(t *testing.T) {
	g := NewGame(3, 3)
	r := record(g)

	for col := 0; col < 3; col++ {
		playColumns(t, g, col, col, col)
	}

	assert.True(t, g.Finished())
	assert.Equal(t, StatusDraw, g.Status())
	assert.Equal(t, 1, r.draws)
}

func TestDegenerateBoardRejectsEverything(t *testing.T) {
	g := NewGame(0, 5)

	assert.Empty(t, g.Board())
	assert.False(t, g.Play(0))
	assert.False(t, g.PlayColumn(0))
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	g := NewGame(7, 7)
	var calls []string
	g.OnBoardUpdate(func(Board) { calls = append(calls, "first") })
	g.OnBoardUpdate(func(Board) { calls = append(calls, "second") })
	g.OnTurnChanged(func(Mark) { calls = append(calls, "turn") })

	require.True(t, g.Play(0))

	assert.Equal(t, []string{"first", "second", "turn"}, calls)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGame(7, 7)
	g.OnBoardUpdate(func(b Board) { b[0] = Red })

	require.True(t, g.Play(0))

	assert.Equal(t, Empty, g.Cell(0))
	snapshot := g.Board()
	snapshot[1] = Red
	assert.Equal(t, Empty, g.Cell(1))
}

func TestMarkOpponent(t *testing.T) {
	assert.Equal(t, Red, Yellow.Opponent())
	assert.Equal(t, Yellow, Red.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.True(t, Yellow.IsPlayer())
	assert.False(t, Empty.IsPlayer())
}

func TestCellOffBoardIsEmpty(t *testing.T) {
	g := NewGame(4, 4)
	require.True(t, g.Play(0))

	assert.Equal(t, Yellow, g.Cell(12))
	assert.Equal(t, Empty, g.Cell(-1))
	assert.Equal(t, Empty, g.Cell(16))
	assert.Equal(t, Empty, NewGame(0, 0).Cell(0))
}
