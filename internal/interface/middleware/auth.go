package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/4NDrew-42/ArtCine/internal/application"
	"github.com/4NDrew-42/ArtCine/pkg/helpers"
	"github.com/4NDrew-42/ArtCine/pkg/response"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// Auth validates the bearer token from the Authorization header and resolves
// it to a live identity. On success it sets userID and username in the Gin
// context; every failure ends the request with a 401, except store trouble
// which is a 500 so callers do not mistake infrastructure failure for bad
// credentials.
func Auth(svc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortError(c, http.StatusUnauthorized, "invalid authorization format")
			return
		}

		u, err := svc.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, helpers.ErrMalformedToken):
				abortError(c, http.StatusUnauthorized, "malformed token")
			case errors.Is(err, helpers.ErrSignatureMismatch):
				abortError(c, http.StatusUnauthorized, "invalid token signature")
			case errors.Is(err, helpers.ErrExpiredToken):
				abortError(c, http.StatusUnauthorized, "token expired")
			case errors.Is(err, application.ErrIdentityNotFound):
				abortError(c, http.StatusUnauthorized, "unknown identity")
			default:
				abortError(c, http.StatusInternalServerError, "authentication error")
			}
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUsernameKey, u.Username)
		c.Next()
	}
}

// RequireSelf enforces ownership on self-service routes: the authenticated
// username must equal the :username path parameter exactly, case-sensitive.
// It runs strictly after Auth and rejects with 403 on mismatch regardless of
// whether the target user exists.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString(CtxUsernameKey)
		if caller == "" {
			abortError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if caller != c.Param("username") {
			abortError(c, http.StatusForbidden, application.ErrInsufficientPermission.Error())
			return
		}
		c.Next()
	}
}

func abortError(c *gin.Context, status int, msg string) {
	response.Error[any](c, status, msg, nil)
	c.Abort()
}
