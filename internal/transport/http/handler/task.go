package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/transport/http/middleware"
	"task-tracker-api/internal/transport/http/response"
	"task-tracker-api/internal/usecase"
)

type taskUsecaser interface {
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Create(ctx context.Context, userID, description string) (*domain.Task, error)
	Update(ctx context.Context, id, actorID string, input usecase.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id, actorID string) error
}

type TaskHandler struct {
	tasks  taskUsecaser
	logger *slog.Logger
}

func NewTaskHandler(tasks taskUsecaser, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger.With("component", "task_handler")}
}

type createTaskRequest struct {
	Description string `json:"description"`
}

type updateTaskRequest struct {
	// Pointer distinguishes "absent" (keep stored value) from "empty".
	Description *string `json:"description"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tasks, err := h.tasks.List(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("list tasks", "error", err)
		response.Error(c, http.StatusInternalServerError, errInternalServer)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, errEmptyDescription)
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), user.ID, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDescription) {
			response.Error(c, http.StatusBadRequest, errEmptyDescription)
			return
		}
		h.logger.Error("create task", "error", err)
		response.Error(c, http.StatusInternalServerError, errInternalServer)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	taskID := c.Param("id")

	// An empty body is a valid no-field update; only malformed JSON is
	// rejected.
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, errEmptyDescription)
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), taskID, user.ID, usecase.UpdateTaskInput{
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			response.Error(c, http.StatusNotFound, errTaskNotFound)
		case errors.Is(err, domain.ErrNotTaskOwner):
			response.Error(c, http.StatusUnauthorized, errNotTaskOwner)
		case errors.Is(err, domain.ErrEmptyDescription):
			response.Error(c, http.StatusBadRequest, errEmptyDescription)
		default:
			h.logger.Error("update task", "task_id", taskID, "error", err)
			response.Error(c, http.StatusInternalServerError, errInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	taskID := c.Param("id")

	if err := h.tasks.Delete(c.Request.Context(), taskID, user.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			response.Error(c, http.StatusNotFound, errTaskNotFound)
		case errors.Is(err, domain.ErrNotTaskOwner):
			response.Error(c, http.StatusUnauthorized, errNotTaskOwner)
		default:
			h.logger.Error("delete task", "task_id", taskID, "error", err)
			response.Error(c, http.StatusInternalServerError, errInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("task %s deleted", taskID)})
}
