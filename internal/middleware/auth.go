package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/session"
)

const (
	ContextUserID  = "userID"
	ContextSession = "session"
)

type SessionResolver interface {
	CurrentSession(ctx context.Context, token string) (*session.Session, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func AuthMiddleware(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			httperr.Unauthorized(c, "missing_authorization_header", "Sign in to continue")
			c.Abort()
			return
		}

		s, err := sessions.CurrentSession(c.Request.Context(), token)
		if err != nil {
			if httperr.IsBusiness(err, httperr.CodeUnauthorized) {
				httperr.Unauthorized(c, httperr.CodeUnauthorized, "Session expired. Sign in again")
			} else {
				httperr.Respond(c, err, "Failed to check session")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserID, s.UserID)
		c.Set(ContextSession, s)
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), s.UserID))

		c.Next()
	}
}

// UserID returns the signed-in staff member set by AuthMiddleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
