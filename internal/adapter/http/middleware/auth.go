package middleware

import (
	"net/http"
	"strings"

	"delivery_hub/internal/infrastructure/auth"
	"delivery_hub/pkg"

	"github.com/gin-gonic/gin"
)

// SessionIDKey is the gin context key the session id is stored under after
// the token is validated.
const SessionIDKey = "session_id"

var errMissingSessionToken = pkg.NewDomainErrorSimple("MISSING_SESSION_TOKEN", "Sessão expirada. Faça login novamente.", http.StatusUnauthorized)

// RequireSession validates the bearer token and exposes the session id to
// the handlers. Everything except login and register sits behind it.
func RequireSession(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(errMissingSessionToken.HTTPStatus, errMissingSessionToken.ToHTTPError())
			return
		}

		sessionID, err := auth.ParseSessionToken(jwtSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(errMissingSessionToken.HTTPStatus, errMissingSessionToken.ToHTTPError())
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
