package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/hotseat-connect4/internal/service/game"
	"github.com/iamasit07/hotseat-connect4/internal/transport/wire"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"github.com/iamasit07/hotseat-connect4/pkg/httputil"
)

const (
	TypeMakeMove = "make_move"
	TypeGetState = "get_state"

	TypeState    = "state"
	TypeMoveMade = "move_made"
	TypeGameWon  = "game_won"
	TypeClosed   = "session_closed"
	TypeError    = "error"
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	Sessions    *game.SessionManager
	Signer      *auth.Signer
	Upgrader    websocket.Upgrader
	logger      *log.Logger
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, signer *auth.Signer, allowedOrigins []string, logger *log.Logger) *Handler {
	return &Handler{
		ConnManager: cm,
		Sessions:    sm,
		Signer:      signer,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("ws"),
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}

// HandleWebSocket authenticates the seat token and upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	tokenString, err := httputil.GetTokenFromRequest(r)
	if err != nil {
		http.Error(w, "Missing seat token", http.StatusUnauthorized)
		return
	}
	claims, err := h.Signer.ValidateSeatToken(tokenString)
	if err != nil {
		http.Error(w, "Invalid seat token", http.StatusUnauthorized)
		return
	}
	session, exists := h.Sessions.GetSession(claims.GameID)
	if !exists {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Upgrade error", "err", err)
		return
	}

	h.handleConnection(NewClient(session.GameID, conn), session)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(client *Client, session *game.Session) {
	conn := client.conn
	h.ConnManager.AddClient(client)
	h.logger.Info("Connection opened", "game_id", client.GameID, "tabs", h.ConnManager.Count(client.GameID))

	unsubscribe := session.Subscribe(func(e game.Event) {
		h.forward(client, e)
	})

	done := make(chan struct{})
	defer func() {
		close(done)
		unsubscribe()
		h.ConnManager.RemoveClient(client)
		client.Close()
		h.logger.Info("Connection closed", "game_id", client.GameID)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := client.Ping(); err != nil {
					return
				}
			}
		}
	}()

	state := wire.NewState(session.GameID, session.View())
	if err := client.Send(wire.ServerMessage{Type: TypeState, State: &state}); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Client disconnected unexpectedly", "game_id", client.GameID, "err", err)
			}
			return
		}

		var msg wire.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Debug("Invalid message format", "err", err)
			client.Send(wire.ServerMessage{Type: TypeError, Code: wire.CodeBadRequest, Message: "Invalid message format"})
			continue
		}

		h.processMessage(client, session, msg)
	}
}

// processMessage routes client actions
func (h *Handler) processMessage(client *Client, session *game.Session, msg wire.ClientMessage) {
	switch msg.Type {
	case TypeMakeMove:
		if msg.Column == nil {
			client.Send(wire.ServerMessage{Type: TypeError, Code: wire.CodeBadRequest, Message: "make_move needs a column"})
			return
		}
		// success is pushed to every tab by the session listener
		if _, _, err := session.PlayRound(*msg.Column); err != nil {
			client.Send(wire.ServerMessage{Type: TypeError, Code: wire.ErrorCode(err), Message: err.Error()})
		}

	case TypeGetState:
		state := wire.NewState(session.GameID, session.View())
		client.Send(wire.ServerMessage{Type: TypeState, State: &state})

	default:
		client.Send(wire.ServerMessage{Type: TypeError, Code: wire.CodeBadRequest, Message: "Unknown message type"})
	}
}

func (h *Handler) forward(client *Client, e game.Event) {
	switch e.Type {
	case game.EventMove:
		move := wire.NewMove(e.GameID, e.Result, e.View)
		msgType := TypeMoveMade
		if e.Result.Won {
			msgType = TypeGameWon
		}
		if err := client.Send(wire.ServerMessage{Type: msgType, Move: &move}); err != nil {
			h.logger.Debug("Send failed", "game_id", e.GameID, "err", err)
		}

	case game.EventClosed:
		client.Send(wire.ServerMessage{Type: TypeClosed, Message: "Game session ended"})
		client.Close()
	}
}
