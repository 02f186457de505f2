package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/service/game"
	"github.com/iamasit07/hotseat-connect4/internal/transport/http/middleware"
	"github.com/iamasit07/hotseat-connect4/internal/transport/wire"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"github.com/iamasit07/hotseat-connect4/pkg/httputil"
)

type GameHandler struct {
	Sessions      *game.SessionManager
	Signer        *auth.Signer
	TokenTTL      time.Duration
	SecureCookies bool
	logger        *log.Logger
}

func NewGameHandler(sm *game.SessionManager, signer *auth.Signer, tokenTTL time.Duration, secureCookies bool, logger *log.Logger) *GameHandler {
	return &GameHandler{
		Sessions:      sm,
		Signer:        signer,
		TokenTTL:      tokenTTL,
		SecureCookies: secureCookies,
		logger:        logger.WithPrefix("http"),
	}
}

type createGameResponse struct {
	GameID string             `json:"gameId"`
	Token  string             `json:"token"`
	State  wire.StateResponse `json:"state"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

// CreateGame starts a new hot-seat session and hands back its seat token
func (h *GameHandler) CreateGame(c *gin.Context) {
	session, err := h.Sessions.CreateSession()
	if err != nil {
		if errors.Is(err, game.ErrTooManySessions) {
			c.JSON(http.StatusServiceUnavailable, wire.ErrorResponse{Error: wire.CodeUnavailable, Message: err.Error()})
			return
		}
		h.logger.Error("Failed to create session", "err", err)
		c.JSON(http.StatusInternalServerError, wire.ErrorResponse{Error: wire.CodeInternal, Message: "Failed to create game"})
		return
	}

	token, err := h.Signer.GenerateSeatToken(session.GameID)
	if err != nil {
		h.logger.Error("Failed to sign seat token", "game_id", session.GameID, "err", err)
		_ = h.Sessions.RemoveSession(session.GameID)
		c.JSON(http.StatusInternalServerError, wire.ErrorResponse{Error: wire.CodeInternal, Message: "Failed to create game"})
		return
	}

	httputil.SetSeatCookie(c.Writer, token, h.TokenTTL, h.SecureCookies)
	c.JSON(http.StatusCreated, createGameResponse{
		GameID: session.GameID,
		Token:  token,
		State:  wire.NewState(session.GameID, session.View()),
	})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, wire.NewState(session.GameID, session.View()))
}

// PlayMove drops the active player's token into the requested column
func (h *GameHandler) PlayMove(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wire.ErrorResponse{Error: wire.CodeBadRequest, Message: "Body must be {\"column\": <int>}"})
		return
	}

	result, view, err := session.PlayRound(*req.Column)
	if err != nil {
		code := wire.ErrorCode(err)
		status := http.StatusInternalServerError
		switch code {
		case wire.CodeInvalidColumn:
			status = http.StatusBadRequest
		case wire.CodeColumnFull:
			status = http.StatusConflict
		}
		c.JSON(status, wire.ErrorResponse{Error: code, Message: err.Error()})
		return
	}

	if result.Won {
		h.logger.Info("Game won", "game_id", session.GameID, "winner", result.Player.Name)
	}
	c.JSON(http.StatusOK, wire.NewMove(session.GameID, result, view))
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.Sessions.RemoveSession(c.GetString(middleware.GameIDKey)); err != nil {
		c.JSON(http.StatusNotFound, wire.ErrorResponse{Error: wire.CodeNotFound, Message: "Game not found"})
		return
	}
	httputil.ClearSeatCookie(c.Writer)
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.Sessions.ActiveCount()})
}

func (h *GameHandler) session(c *gin.Context) (*game.Session, bool) {
	session, ok := h.Sessions.GetSession(c.GetString(middleware.GameIDKey))
	if !ok {
		c.JSON(http.StatusNotFound, wire.ErrorResponse{Error: wire.CodeNotFound, Message: "Game not found"})
		return nil, false
	}
	return session, true
}
