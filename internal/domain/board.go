package domain

// Board is the flat, row-major grid. Cell (row, col) lives at row*width + col;
// row 0 is the top row and gravity pulls toward the last row.
type Board []Mark

func NewBoard(width, height int) Board {
	if width <= 0 || height <= 0 {
		return Board{}
	}
	return make(Board, width*height)
}

// this creates a copy of the board so listeners can't write into the game
func (b Board) Copy() Board {
	newBoard := make(Board, len(b))
	copy(newBoard, b)
	return newBoard
}

func (b Board) InRange(index int) bool {
	return index >= 0 && index < len(b)
}

func (b Board) IsOccupied(index int) bool {
	return b.InRange(index) && b[index] != Empty
}

// Index converts (row, col) to a flat cell index.
func Index(width, row, col int) int {
	return row*width + col
}

// ColumnOf returns the column a flat index belongs to.
func ColumnOf(width, index int) int {
	return index % width
}

// RowOf returns the row a flat index belongs to.
func RowOf(width, index int) int {
	return index / width
}

// DropIndex follows gravity from target: while the cell one row below is on
// the board and empty, move down one row. It does not check target itself.
func DropIndex(board Board, width, target int) int {
	for target+width < len(board) && board[target+width] == Empty {
		target += width
	}
	return target
}

// ValidColumns lists the columns whose top cell is still free.
func ValidColumns(board Board, width int) []int {
	validMoves := []int{}
	if width <= 0 {
		return validMoves
	}
	for col := 0; col < width && col < len(board); col++ {
		if board[col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}
