package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-local/internal/pkg"
)

const (
	sessionCookieName = "user_session"
	defaultSessionTTL = 24 * time.Hour
)

type sessionKey struct{}

// sessionMiddleware - set user session.
func (that *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		var sessionID string

		cookie, err := req.Cookie(sessionCookieName)
		if err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = pkg.GenerateNewSessionID()
			http.SetCookie(writer, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Expires:  time.Now().Add(that.sessionTTL),
				MaxAge:   int(that.sessionTTL.Seconds()),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			that.logger.Debug("session cookie not found, new one created")
		}

		ctx := context.WithValue(req.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}

func sessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionKey{}).(string)
	return sessionID
}
