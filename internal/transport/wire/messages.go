package wire

import (
	"errors"

	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

// Error codes shared by the HTTP API and the WebSocket channel.
const (
	CodeInvalidColumn = "invalid_column"
	CodeColumnFull    = "column_full"
	CodeNotFound      = "not_found"
	CodeBadRequest    = "bad_request"
	CodeUnauthorized  = "unauthorized"
	CodeForbidden     = "forbidden"
	CodeUnavailable   = "unavailable"
	CodeInternal      = "internal"
)

type PlayerResponse struct {
	Name  string `json:"name"`
	Token int    `json:"token"`
}

// StateResponse is the board as the browser renders it: row 0 at the top,
// 0 empty, 1 player one, 2 player two.
type StateResponse struct {
	GameID       string           `json:"gameId"`
	Board        [][]int          `json:"board"`
	ActivePlayer PlayerResponse   `json:"activePlayer"`
	Players      []PlayerResponse `json:"players"`
	ValidColumns []int            `json:"validColumns"`
}

type MoveResponse struct {
	Row    int             `json:"row"`
	Column int             `json:"column"`
	Player PlayerResponse  `json:"player"`
	Won    bool            `json:"won"`
	Winner *PlayerResponse `json:"winner,omitempty"`
	// Board right after the drop; on a win this still shows the winning line
	Board [][]int       `json:"board"`
	State StateResponse `json:"state"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ClientMessage is sent by a browser tab. Column is nil when the field is
// absent so a bare make_move is not read as column 0.
type ClientMessage struct {
	Type   string `json:"type"`
	Column *int   `json:"column,omitempty"`
}

type ServerMessage struct {
	Type    string         `json:"type"`
	Message string         `json:"message,omitempty"`
	Code    string         `json:"code,omitempty"`
	State   *StateResponse `json:"state,omitempty"`
	Move    *MoveResponse  `json:"move,omitempty"`
}

func NewPlayer(p domain.Player) PlayerResponse {
	return PlayerResponse{Name: p.Name, Token: int(p.Token)}
}

func NewState(gameID string, view domain.View) StateResponse {
	players := make([]PlayerResponse, 0, len(view.Players))
	for _, p := range view.Players {
		players = append(players, NewPlayer(p))
	}
	validColumns := view.ValidColumns
	if validColumns == nil {
		validColumns = []int{}
	}
	return StateResponse{
		GameID:       gameID,
		Board:        view.Board.Rows(),
		ActivePlayer: NewPlayer(view.ActivePlayer),
		Players:      players,
		ValidColumns: validColumns,
	}
}

func NewMove(gameID string, result domain.RoundResult, view domain.View) MoveResponse {
	move := MoveResponse{
		Row:    result.Row,
		Column: result.Column,
		Player: NewPlayer(result.Player),
		Won:    result.Won,
		Board:  result.Board.Rows(),
		State:  NewState(gameID, view),
	}
	if result.Won {
		winner := NewPlayer(result.Player)
		move.Winner = &winner
	}
	return move
}

// ErrorCode maps domain errors onto the wire codes.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return CodeInvalidColumn
	case errors.Is(err, domain.ErrColumnFull):
		return CodeColumnFull
	}
	return CodeInternal
}
