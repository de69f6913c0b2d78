package domain

// HasFourInARow scans the whole board for four equal, non-empty marks in a
// line. Order: horizontal, vertical, descending diagonal, ascending diagonal.
// It returns the mark that completed the line, or Empty.
func HasFourInARow(board Board, width, height int) Mark {
	if width <= 0 || height <= 0 || len(board) < width*height {
		return Empty
	}

	// horizontal
	for row := 0; row < height; row++ {
		for col := 0; col < width-3; col++ {
			start := Index(width, row, col)
			if m := checkFour(board, start, 1); m != Empty {
				return m
			}
		}
	}

	// vertical
	for col := 0; col < width; col++ {
		for row := 0; row < height-3; row++ {
			start := Index(width, row, col)
			if m := checkFour(board, start, width); m != Empty {
				return m
			}
		}
	}

	// top-left to bottom-right
	for row := 0; row < height-3; row++ {
		for col := 0; col < width-3; col++ {
			start := Index(width, row, col)
			if m := checkFour(board, start, width+1); m != Empty {
				return m
			}
		}
	}

	// top-right to bottom-left
	for row := 0; row < height-3; row++ {
		for col := 3; col < width; col++ {
			start := Index(width, row, col)
			if m := checkFour(board, start, width-1); m != Empty {
				return m
			}
		}
	}

	return Empty
}

func checkFour(board Board, start, step int) Mark {
	first := board[start]
	if first == Empty {
		return Empty
	}
	for i := 1; i < ToWin; i++ {
		if board[start+i*step] != first {
			return Empty
		}
	}
	return first
}

// IsFull reports whether every cell holds a mark.
func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}
	return true
}
