package domain

// Mark is the token occupying a cell. The zero value is an empty cell.
type Mark string

const (
	Empty  Mark = ""
	Yellow Mark = "🟡"
	Red    Mark = "🔴"
)

// Yellow always opens the game
const FirstPlayer = Yellow

const (
	DefaultWidth  = 7
	DefaultHeight = 7
	ToWin         = 4
)

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case Yellow:
		return Red
	case Red:
		return Yellow
	}
	return Empty
}

func (m Mark) IsPlayer() bool {
	return m == Yellow || m == Red
}

func (m Mark) String() string {
	return string(m)
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrGameFinished Error = "game is already finished"
	ErrOutOfRange   Error = "cell is out of range"
	ErrColumnFull   Error = "column is full"
)
