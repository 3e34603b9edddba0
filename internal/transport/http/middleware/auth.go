package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/metrics"
	"task-tracker-api/internal/transport/http/response"
)

const (
	errNoToken            = "no token provided"
	errUnauthorizedAccess = "unauthorized access"

	userContextKey = "currentUser"
)

// tokenVerifier is the subset of token.Issuer the middleware needs.
// Defined here (point of use) so tests can inject a fake.
type tokenVerifier interface {
	Verify(raw string) (string, error)
}

// userFinder is the subset of repository.UserRepository the middleware
// needs. FindByID must not load the password hash.
type userFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth is the authentication gate for protected routes. It rejects
// requests without a Bearer token, verifies the token, resolves it to a
// stored user, and attaches that user to the gin context. Handlers
// behind it may assume a valid, existing user and never re-verify.
func Auth(tokens tokenVerifier, users userFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			metrics.AuthAttemptsTotal.WithLabelValues("missing_token").Inc()
			response.AbortError(c, http.StatusUnauthorized, errNoToken)
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		userID, err := tokens.Verify(rawToken)
		if err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("invalid_token").Inc()
			response.AbortError(c, http.StatusUnauthorized, errUnauthorizedAccess)
			return
		}

		// The token may outlive the account; a deleted user is rejected
		// the same way as a forged token.
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("unknown_user").Inc()
			response.AbortError(c, http.StatusUnauthorized, errUnauthorizedAccess)
			return
		}

		metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user the Auth middleware attached. It panics
// if called on a route that is not behind Auth; that is a wiring bug,
// not a runtime condition.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		panic("middleware: CurrentUser called outside an authenticated route")
	}
	return v.(*domain.User)
}
