package game

import "github.com/iamasit07/connect4-hotseat/internal/domain"

// Service is the entry point the transports use (facade)
type Service interface {
	State() domain.ServerMessage
	Move(cell int) (domain.ServerMessage, error)
	MoveColumn(column int) (domain.ServerMessage, error)
	Restart() domain.ServerMessage
}

var _ Service = (*Session)(nil)
