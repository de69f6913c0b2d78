package http

import (
	_ "embed"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
)

//go:embed static/index.html
var indexPage []byte

type GameHandler struct {
	Game game.Service
}

func NewGameHandler(gs game.Service) *GameHandler {
	return &GameHandler{Game: gs}
}

type moveRequest struct {
	Cell   *int `json:"cell"`
	Column *int `json:"column"`
}

// Register mounts the game routes on router.
func (h *GameHandler) Register(router gin.IRouter) {
	router.GET("/", h.Index)
	router.GET("/healthz", h.Health)
	router.GET("/api/game", h.GetState)
	router.POST("/api/game/move", h.Move)
	router.POST("/api/game/restart", h.Restart)
}

// Index serves the single game page
func (h *GameHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetState returns the current board, turn and result
func (h *GameHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.Game.State())
}

// Move accepts {"cell": n} (top cell of the target column) or {"column": n}
func (h *GameHandler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var (
		state domain.ServerMessage
		err   error
	)
	switch {
	case req.Cell != nil:
		state, err = h.Game.Move(*req.Cell)
	case req.Column != nil:
		state, err = h.Game.MoveColumn(*req.Column)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "cell or column is required"})
		return
	}

	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// Restart discards the game and starts a new one of the same size
func (h *GameHandler) Restart(c *gin.Context) {
	c.JSON(http.StatusOK, h.Game.Restart())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrColumnFull), errors.Is(err, domain.ErrGameFinished):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
