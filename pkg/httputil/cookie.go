package httputil

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const SeatCookieName = "seat_token"

var ErrNoToken = errors.New("no seat token found in cookie, header or query")

// SetSeatCookie stores the seat token for the browser that created the game
func SetSeatCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	cookie := &http.Cookie{
		Name:     SeatCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
	}

	// SameSite=None requires Secure=true, so use Lax for development
	if secure {
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, cookie)
}

func ClearSeatCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SeatCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// GetTokenFromRequest looks in the Authorization header, then the "token"
// query parameter (browsers can't set headers on WebSocket upgrades), then the
// cookie. An explicit token names the game the caller wants, so a cookie left
// over from another game never overrides it.
func GetTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return token, nil
		}
		return authHeader, nil
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	if cookie, err := r.Cookie(SeatCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoToken
}
