package repository

import (
	"context"

	"task-tracker-api/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, userID, description string) (*domain.Task, error)

	// FindByID returns the task regardless of owner; the usecase decides
	// whether the caller may touch it.
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// ListByOwner returns the owner's tasks in insertion order.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Task, error)

	// UpdateOwned applies the description to the task only if it still
	// belongs to userID, in a single conditional statement. Returns
	// domain.ErrTaskNotFound when no row matched.
	UpdateOwned(ctx context.Context, id, userID, description string) (*domain.Task, error)

	// DeleteOwned removes the task only if it still belongs to userID.
	// Returns domain.ErrTaskNotFound when no row matched.
	DeleteOwned(ctx context.Context, id, userID string) error
}
