package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boardWith(width, height int, mark Mark, cells ...int) Board {
	b := NewBoard(width, height)
	for _, c := range cells {
		b[c] = mark
	}
	return b
}

func TestHasFourInARow(t *testing.T) {
	const w, h = 7, 7

	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{"empty board", NewBoard(w, h), Empty},
		{"bottom row", boardWith(w, h, Yellow, 42, 43, 44, 45), Yellow},
		{"bottom row right edge", boardWith(w, h, Red, 45, 46, 47, 48), Red},
		{"top row", boardWith(w, h, Red, 0, 1, 2, 3), Red},
		{"vertical", boardWith(w, h, Yellow, Index(w, 3, 5), Index(w, 4, 5), Index(w, 5, 5), Index(w, 6, 5)), Yellow},
		{"vertical from top", boardWith(w, h, Yellow, 6, 13, 20, 27), Yellow},
		{"descending diagonal", boardWith(w, h, Red, 0, 8, 16, 24), Red},
		{"descending diagonal bottom right", boardWith(w, h, Red, Index(w, 3, 3), Index(w, 4, 4), Index(w, 5, 5), Index(w, 6, 6)), Red},
		{"ascending diagonal", boardWith(w, h, Yellow, 3, 9, 15, 21), Yellow},
		{"ascending diagonal bottom left", boardWith(w, h, Yellow, Index(w, 3, 3), Index(w, 4, 2), Index(w, 5, 1), Index(w, 6, 0)), Yellow},
		{"three horizontal", boardWith(w, h, Yellow, 42, 43, 44), Empty},
		{"three vertical", boardWith(w, h, Yellow, 28, 35, 42), Empty},
		{"three diagonal", boardWith(w, h, Yellow, 0, 8, 16), Empty},
		{"row does not wrap", boardWith(w, h, Yellow, 5, 6, 7, 8), Empty},
		{"gap in the line", boardWith(w, h, Red, 42, 43, 45, 46), Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasFourInARow(tt.board, w, h))
		})
	}
}

func TestHasFourInARowNeedsMatchingMarks(t *testing.T) {
	b := boardWith(7, 7, Yellow, 42, 43, 44)
	b[45] = Red

	assert.Equal(t, Empty, HasFourInARow(b, 7, 7))
}

func TestHasFourInARowOnNarrowBoards(t *testing.T) {
	// a 3-wide board can still win vertically
	b := boardWith(3, 5, Red, Index(3, 1, 1), Index(3, 2, 1), Index(3, 3, 1), Index(3, 4, 1))
	assert.Equal(t, Red, HasFourInARow(b, 3, 5))

	// and never horizontally or diagonally
	full := NewBoard(3, 3)
	for i := range full {
		full[i] = Yellow
	}
	assert.Equal(t, Empty, HasFourInARow(full, 3, 3))
}

func TestHasFourInARowRejectsShortBoard(t *testing.T) {
	assert.Equal(t, Empty, HasFourInARow(Board{Yellow, Yellow}, 7, 7))
	assert.Equal(t, Empty, HasFourInARow(Board{}, 0, 0))
}

func TestIsFull(t *testing.T) {
	b := NewBoard(4, 4)
	assert.False(t, IsFull(b))

	for i := range b {
		b[i] = Yellow
	}
	assert.True(t, IsFull(b))

	b[7] = Empty
	assert.False(t, IsFull(b))
}

func TestDropIndex(t *testing.T) {
	b := NewBoard(7, 7)
	assert.Equal(t, 44, DropIndex(b, 7, 2))

	b[44] = Red
	assert.Equal(t, 37, DropIndex(b, 7, 2))
	assert.Equal(t, 37, DropIndex(b, 7, 30))

	// the bottom row never moves
	assert.Equal(t, 48, DropIndex(b, 7, 48))
}

func TestValidColumns(t *testing.T) {
	b := NewBoard(4, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, ValidColumns(b, 4))

	b[1] = Red
	b[3] = Yellow
	assert.Equal(t, []int{0, 2}, ValidColumns(b, 4))
	assert.Equal(t, []int{}, ValidColumns(b, 0))
}

func TestIndexHelpers(t *testing.T) {
	assert.Equal(t, 45, Index(7, 6, 3))
	assert.Equal(t, 3, ColumnOf(7, 45))
	assert.Equal(t, 6, RowOf(7, 45))
}
