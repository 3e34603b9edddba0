package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/transport/http/response"
)

// Recovery converts panics into the uniform error body. The stack is
// echoed to the client only outside production; it always goes to the
// log.
func Recovery(logger *slog.Logger, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					"panic", r, "stack", stack)

				if env == "production" {
					response.AbortError(c, http.StatusInternalServerError, "internal server error")
					return
				}
				response.ErrorWithStack(c, http.StatusInternalServerError, "internal server error", stack)
			}
		}()
		c.Next()
	}
}
