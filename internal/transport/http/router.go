package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"task-tracker-api/internal/repository"
	"task-tracker-api/internal/token"
	"task-tracker-api/internal/transport/http/handler"
	"task-tracker-api/internal/transport/http/middleware"
)

func NewRouter(logger *slog.Logger, env string, userHandler *handler.UserHandler, taskHandler *handler.TaskHandler, tokens *token.Issuer, users repository.UserRepository) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(logger, env))
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens, users)

	api := r.Group("/api")

	// Registration and login are the only unauthenticated routes.
	usersGroup := api.Group("/users")
	usersGroup.POST("", userHandler.Register)
	usersGroup.POST("/login", userHandler.Login)
	usersGroup.GET("/me", authMW, userHandler.Me)

	tasks := api.Group("/tasks", authMW)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return r
}
