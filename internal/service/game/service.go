package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/view"
	"github.com/iamasit07/connect4-hotseat/pkg/uid"
	"github.com/rs/zerolog/log"
)

// Broadcaster fans a message out to every connected presentation client.
type Broadcaster interface {
	BroadcastMessage(message domain.ServerMessage)
}

// Session owns the one engine of a running server and wires its
// notifications to the connected clients. The engine is single threaded, so
// every access goes through mu.
type Session struct {
	GameID    string
	Game      *domain.Game
	CreatedAt time.Time

	width  int
	height int
	out    Broadcaster
	mu     sync.Mutex
}

func NewSession(width, height int, out Broadcaster) *Session {
	s := &Session{
		width:  width,
		height: height,
		out:    out,
	}
	s.newGameLocked()
	return s
}

// newGameLocked discards the current engine and builds a fresh one with the
// configured dimensions (caller must hold mu, or own s exclusively)
func (s *Session) newGameLocked() {
	s.GameID = uid.GenerateGameID()
	s.CreatedAt = time.Now()
	game := domain.NewGame(s.width, s.height)
	s.Game = game

	gameID := s.GameID
	game.OnBoardUpdate(func(board domain.Board) {
		s.broadcast(domain.ServerMessage{
			Type:      domain.MsgBoardUpdate,
			GameID:    gameID,
			Width:     s.width,
			Height:    s.height,
			Board:     domain.BoardStrings(board),
			MoveCount: game.MoveCount(),
		})
	})
	game.OnTurnChanged(func(player domain.Mark) {
		s.broadcast(domain.ServerMessage{
			Type:          domain.MsgTurnChanged,
			GameID:        gameID,
			CurrentPlayer: player,
			Message:       view.TurnMessage(player),
			MoveCount:     game.MoveCount(),
		})
	})
	game.OnVictory(func(winner domain.Mark) {
		log.Info().Str("gameID", gameID).Str("winner", winner.String()).
			Int("moves", game.MoveCount()).Msg("Game won")
		s.broadcast(domain.ServerMessage{
			Type:      domain.MsgVictory,
			GameID:    gameID,
			Winner:    winner,
			Status:    domain.StatusWon,
			Finished:  true,
			Message:   view.VictoryMessage(winner),
			MoveCount: game.MoveCount(),
		})
	})
	game.OnDraw(func() {
		log.Info().Str("gameID", gameID).Msg("Game drawn")
		s.broadcast(domain.ServerMessage{
			Type:      domain.MsgDraw,
			GameID:    gameID,
			Status:    domain.StatusDraw,
			Finished:  true,
			Message:   view.DrawMessage(),
			MoveCount: game.MoveCount(),
		})
	})

	log.Info().Str("gameID", gameID).Int("width", s.width).Int("height", s.height).Msg("New game created")
}

func (s *Session) broadcast(msg domain.ServerMessage) {
	if s.out == nil {
		return
	}
	s.out.BroadcastMessage(msg)
}

// Move forwards a cell selection to the engine and returns the state right
// after it, read under the same lock. A rejected move returns the reason.
func (s *Session) Move(cell int) (domain.ServerMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.moveLocked(cell); err != nil {
		return domain.ServerMessage{}, err
	}
	return s.stateLocked(domain.MsgState), nil
}

// MoveColumn plays into column by way of its top cell.
func (s *Session) MoveColumn(column int) (domain.ServerMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if column < 0 || column >= s.width {
		return domain.ServerMessage{}, fmt.Errorf("column %d: %w", column, domain.ErrOutOfRange)
	}
	if err := s.moveLocked(column); err != nil {
		return domain.ServerMessage{}, err
	}
	return s.stateLocked(domain.MsgState), nil
}

func (s *Session) moveLocked(cell int) error {
	landing, ok := s.Game.LandingIndex(cell)
	if !ok {
		err := s.Game.Validate(cell)
		log.Debug().Str("gameID", s.GameID).Int("cell", cell).Err(err).Msg("Move rejected")
		return fmt.Errorf("cell %d: %w", cell, err)
	}

	s.Game.Play(cell)

	log.Debug().Str("gameID", s.GameID).
		Int("row", domain.RowOf(s.width, landing)).
		Int("column", domain.ColumnOf(s.width, landing)).
		Str("mark", s.Game.Cell(landing).String()).
		Int("moves", s.Game.MoveCount()).Msg("Move played")
	return nil
}

// Restart replaces the engine with a fresh one of the same size and tells
// every client about it.
func (s *Session) Restart() domain.ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.GameID
	s.newGameLocked()
	log.Info().Str("previousGameID", previous).Str("gameID", s.GameID).Msg("Game restarted")

	msg := s.stateLocked(domain.MsgRestarted)
	s.broadcast(msg)
	return msg
}

// State returns a full snapshot, used when a client connects or resyncs.
func (s *Session) State() domain.ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked(domain.MsgState)
}

func (s *Session) stateLocked(msgType string) domain.ServerMessage {
	return domain.ServerMessage{
		Type:          msgType,
		GameID:        s.GameID,
		Width:         s.Game.Width(),
		Height:        s.Game.Height(),
		Board:         domain.BoardStrings(s.Game.Board()),
		CurrentPlayer: s.Game.CurrentPlayer(),
		Winner:        s.Game.Winner(),
		Status:        s.Game.Status(),
		Finished:      s.Game.Finished(),
		Message:       view.StatusMessage(s.Game),
		MoveCount:     s.Game.MoveCount(),
	}
}
