package websocket

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	"github.com/iamasit07/connect4-hotseat/pkg/uid"
	"github.com/rs/zerolog/log"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	Game        game.Service
	Upgrader    websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. checkOrigin may be nil to
// accept every origin.
func NewHandler(cm *ConnectionManager, gs game.Service, checkOrigin func(r *http.Request) bool) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool {
			return true
		}
	}
	return &Handler{
		ConnManager: cm,
		Game:        gs,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	connID := uid.GenerateConnectionID()
	h.ConnManager.AddConnection(connID, conn)
	log.Info().Str("connID", connID).Int("connections", h.ConnManager.Count()).Msg("WebSocket connection established")

	defer func() {
		h.ConnManager.RemoveConnection(connID)
		log.Info().Str("connID", connID).Msg("WebSocket connection closed")
	}()

	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Keep-alive pinger
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := h.ConnManager.Ping(connID); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// the page renders from this snapshot before any notification arrives
	if err := h.ConnManager.SendMessage(connID, h.Game.State()); err != nil {
		log.Warn().Err(err).Str("connID", connID).Msg("Failed to send initial state")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("connID", connID).Msg("Client disconnected unexpectedly")
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Err(err).Str("connID", connID).Msg("Invalid message format")
			h.sendError(connID, "invalid message")
			continue
		}

		h.processMessage(connID, msg)
	}
}

// processMessage routes client actions
func (h *Handler) processMessage(connID string, msg domain.ClientMessage) {
	switch msg.Type {
	case domain.MsgMakeMove:
		var err error
		switch {
		case msg.Cell != nil:
			_, err = h.Game.Move(*msg.Cell)
		case msg.Column != nil:
			_, err = h.Game.MoveColumn(*msg.Column)
		default:
			err = errors.New("cell or column is required")
		}
		// accepted moves reach every client through the engine notifications
		if err != nil {
			h.sendError(connID, err.Error())
		}

	case domain.MsgRestart:
		h.Game.Restart()

	case domain.MsgSync:
		if err := h.ConnManager.SendMessage(connID, h.Game.State()); err != nil {
			log.Warn().Err(err).Str("connID", connID).Msg("Failed to send state")
		}

	default:
		h.sendError(connID, "unknown message type")
	}
}

func (h *Handler) sendError(connID, message string) {
	err := h.ConnManager.SendMessage(connID, domain.ErrorMessage{Type: domain.MsgError, Message: message})
	if err != nil {
		log.Warn().Err(err).Str("connID", connID).Msg("Failed to send error")
	}
}
