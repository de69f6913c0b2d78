// Package view holds the presentation text shared by the browser and
// terminal front ends.
package view

import (
	"fmt"
	"strings"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
)

const emptyCell = "⚪"

func TurnMessage(player domain.Mark) string {
	return fmt.Sprintf("It's turn of %s", player)
}

func VictoryMessage(winner domain.Mark) string {
	return fmt.Sprintf("%s wins!", winner)
}

func DrawMessage() string {
	return "It's a draw!"
}

// StatusMessage picks the message line for the current state of g.
func StatusMessage(g *domain.Game) string {
	switch g.Status() {
	case domain.StatusWon:
		return VictoryMessage(g.Winner())
	case domain.StatusDraw:
		return DrawMessage()
	}
	return TurnMessage(g.CurrentPlayer())
}

// RenderText draws the board one row per line, top row first.
func RenderText(board domain.Board, width, height int) string {
	return RenderPreview(board, width, height, -1, "")
}

// RenderPreview is RenderText with glyph drawn on the empty cell at preview,
// the cell the next drop would fill. A preview off the board or on an
// occupied cell is ignored.
func RenderPreview(board domain.Board, width, height, preview int, glyph string) string {
	if width <= 0 || height <= 0 || len(board) < width*height {
		return ""
	}
	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			index := domain.Index(width, row, col)
			cell := board[index]
			switch {
			case cell.IsPlayer():
				sb.WriteString(cell.String())
			case index == preview:
				sb.WriteString(glyph)
			default:
				sb.WriteString(emptyCell)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
