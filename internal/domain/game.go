package domain

// Game is the board engine. It owns the grid and turn state; everything
// else observes it through the On* notifications and mutates it through Play.
type Game struct {
	width         int
	height        int
	board         Board
	currentPlayer Mark
	status        GameStatus
	winner        Mark
	moveCount     int
	listeners     listeners
}

func NewGame(width, height int) *Game {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Game{
		width:         width,
		height:        height,
		board:         NewBoard(width, height),
		currentPlayer: FirstPlayer,
		status:        StatusActive,
		winner:        Empty,
	}
}

func (g *Game) Width() int          { return g.width }
func (g *Game) Height() int         { return g.height }
func (g *Game) Board() Board        { return g.board.Copy() }
func (g *Game) CurrentPlayer() Mark { return g.currentPlayer }
func (g *Game) Status() GameStatus  { return g.status }
func (g *Game) Winner() Mark        { return g.winner }
func (g *Game) MoveCount() int      { return g.moveCount }
func (g *Game) Finished() bool      { return g.status != StatusActive }

// Cell returns the mark at index, or Empty for an index off the board.
func (g *Game) Cell(index int) Mark {
	if !g.board.InRange(index) {
		return Empty
	}
	return g.board[index]
}

// Validate explains why Play(target) would be rejected, or returns nil.
// The occupancy check is on target itself: callers pass the top cell of the
// column they mean.
func (g *Game) Validate(target int) error {
	if g.Finished() {
		return ErrGameFinished
	}
	if !g.board.InRange(target) {
		return ErrOutOfRange
	}
	if g.board[target] != Empty {
		return ErrColumnFull
	}
	return nil
}

// LandingIndex returns the cell Play(target) would fill, without playing.
func (g *Game) LandingIndex(target int) (int, bool) {
	if g.Validate(target) != nil {
		return -1, false
	}
	return DropIndex(g.board, g.width, target), true
}

// Play drops the current player's mark starting from target and returns
// whether the move was accepted. A rejected move changes nothing and fires
// no notifications.
func (g *Game) Play(target int) bool {
	landing, ok := g.LandingIndex(target)
	if !ok {
		return false
	}

	g.board[landing] = g.currentPlayer
	g.moveCount++
	g.emitBoardUpdate()

	if g.CheckVictory() {
		g.status = StatusWon
		g.winner = g.currentPlayer
		g.emitVictory(g.winner)
		return true
	}

	if g.CheckDraw() {
		g.status = StatusDraw
		g.emitDraw()
		return true
	}

	g.switchPlayer()
	g.emitTurnChanged()
	return true
}

// PlayColumn plays into col by way of its top cell.
func (g *Game) PlayColumn(col int) bool {
	if col < 0 || col >= g.width {
		return false
	}
	return g.Play(col)
}

// CheckVictory reports whether four in a row exists anywhere on the board.
func (g *Game) CheckVictory() bool {
	return HasFourInARow(g.board, g.width, g.height) != Empty
}

// CheckDraw reports whether the board is full. Play only consults it after
// CheckVictory came back false.
func (g *Game) CheckDraw() bool {
	return IsFull(g.board)
}

func (g *Game) switchPlayer() {
	g.currentPlayer = g.currentPlayer.Opponent()
}
