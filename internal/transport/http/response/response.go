// Package response defines the uniform error body every endpoint and
// middleware emits: {"message": ..., "stack": null}. The stack field is
// only populated by the panic recovery path outside production.
package response

import "github.com/gin-gonic/gin"

type ErrorBody struct {
	Message string  `json:"message"`
	Stack   *string `json:"stack"`
}

// Error writes the uniform error body with a null stack.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

// AbortError writes the uniform error body and halts the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}

// ErrorWithStack is used by the recovery middleware in non-production
// environments.
func ErrorWithStack(c *gin.Context, status int, message, stack string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message, Stack: &stack})
}
