package domain

// listeners holds one subscriber list per notification channel. Callbacks run
// synchronously in registration order.
type listeners struct {
	boardUpdate []func(Board)
	turnChanged []func(Mark)
	victory     []func(Mark)
	draw        []func()
}

// OnBoardUpdate registers fn to receive a snapshot after every placed mark.
func (g *Game) OnBoardUpdate(fn func(Board)) {
	g.listeners.boardUpdate = append(g.listeners.boardUpdate, fn)
}

// OnTurnChanged registers fn to receive the new current player after a
// non-terminal move.
func (g *Game) OnTurnChanged(fn func(Mark)) {
	g.listeners.turnChanged = append(g.listeners.turnChanged, fn)
}

// OnVictory registers fn to receive the winning mark.
func (g *Game) OnVictory(fn func(Mark)) {
	g.listeners.victory = append(g.listeners.victory, fn)
}

// OnDraw registers fn to be called when the board fills without a winner.
func (g *Game) OnDraw(fn func()) {
	g.listeners.draw = append(g.listeners.draw, fn)
}

func (g *Game) emitBoardUpdate() {
	for _, fn := range g.listeners.boardUpdate {
		fn(g.board.Copy())
	}
}

func (g *Game) emitTurnChanged() {
	for _, fn := range g.listeners.turnChanged {
		fn(g.currentPlayer)
	}
}

func (g *Game) emitVictory(winner Mark) {
	for _, fn := range g.listeners.victory {
		fn(winner)
	}
}

func (g *Game) emitDraw() {
	for _, fn := range g.listeners.draw {
		fn()
	}
}
