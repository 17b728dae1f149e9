package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	userIDKey = "auth.user_id"

	// AuthRoute is where clients are sent when no session is present.
	AuthRoute = "/auth"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// Gate rejects requests without a resolvable session. The rejection carries a redirect to
// the auth view and is never retried server side.
func Gate(store SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := store.Lookup(c.Request.Context(), BearerToken(c))
		if err != nil {
			if !errors.Is(err, ErrNoSession) {
				log.Error().Err(err).Str("path", c.FullPath()).Msg("Auth gate: session store error")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:    "Authentication required",
				Redirect: AuthRoute,
			})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// Optional resolves the session when present but never rejects the request.
func Optional(store SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := BearerToken(c); token != "" {
			if userID, err := store.Lookup(c.Request.Context(), token); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// UserID returns the user resolved by Gate or Optional.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
