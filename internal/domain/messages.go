package domain

// message types sent to presentation clients
const (
	MsgState       = "state"
	MsgBoardUpdate = "board_update"
	MsgTurnChanged = "turn_changed"
	MsgVictory     = "victory"
	MsgDraw        = "draw"
	MsgRestarted   = "restarted"
	MsgError       = "error"
)

// message types received from presentation clients
const (
	MsgMakeMove = "make_move"
	MsgRestart  = "restart"
	MsgSync     = "sync"
)

type ClientMessage struct {
	Type   string `json:"type"`
	Cell   *int   `json:"cell,omitempty"`
	Column *int   `json:"column,omitempty"`
}

type ServerMessage struct {
	Type          string     `json:"type"`
	Message       string     `json:"message,omitempty"`
	GameID        string     `json:"gameId,omitempty"`
	Width         int        `json:"width,omitempty"`
	Height        int        `json:"height,omitempty"`
	Board         []string   `json:"board,omitempty"`
	CurrentPlayer Mark       `json:"currentPlayer,omitempty"`
	Winner        Mark       `json:"winner,omitempty"`
	Status        GameStatus `json:"status,omitempty"`
	Finished      bool       `json:"finished"`
	MoveCount     int        `json:"moveCount"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// BoardStrings converts the board into a JSON friendly slice; empty cells
// become "".
func BoardStrings(board Board) []string {
	out := make([]string, len(board))
	for i, cell := range board {
		out[i] = string(cell)
	}
	return out
}
