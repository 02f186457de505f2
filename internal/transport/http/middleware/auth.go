package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/transport/wire"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"github.com/iamasit07/hotseat-connect4/pkg/httputil"
)

const GameIDKey = "game_id"

// SeatAuth validates the seat token and makes sure it belongs to the game
// named by the :id route parameter.
func SeatAuth(signer *auth.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, wire.ErrorResponse{Error: wire.CodeUnauthorized, Message: "Missing seat token"})
			return
		}

		claims, err := signer.ValidateSeatToken(tokenString)
		if err != nil {
			httputil.ClearSeatCookie(c.Writer)
			c.AbortWithStatusJSON(http.StatusUnauthorized, wire.ErrorResponse{Error: wire.CodeUnauthorized, Message: "Invalid seat token"})
			return
		}

		if id := c.Param("id"); id != "" && id != claims.GameID {
			c.AbortWithStatusJSON(http.StatusForbidden, wire.ErrorResponse{Error: wire.CodeForbidden, Message: "Token does not belong to this game"})
			return
		}

		c.Set(GameIDKey, claims.GameID)
		c.Next()
	}
}
