package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/repository"
)

type TaskUsecase struct {
	repo repository.TaskRepository
}

func NewTaskUsecase(repo repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

func (u *TaskUsecase) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	tasks, err := u.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (u *TaskUsecase) Create(ctx context.Context, userID, description string) (*domain.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	task, err := u.repo.Create(ctx, userID, description)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

type UpdateTaskInput struct {
	// Description is a partial-update field: nil leaves the stored value
	// untouched, non-nil replaces it and is re-validated.
	Description *string
}

// Update enforces the lookup order the API promises: a missing task is
// 404 before any ownership question, so callers can tell "doesn't exist"
// from "exists but isn't yours".
func (u *TaskUsecase) Update(ctx context.Context, id, actorID string, input UpdateTaskInput) (*domain.Task, error) {
	task, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}

	if task.UserID != actorID {
		return nil, domain.ErrNotTaskOwner
	}

	description := task.Description
	if input.Description != nil {
		description = strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domain.ErrEmptyDescription
		}
	}

	// Conditional on id AND owner; a concurrent delete makes this miss
	// and the caller sees not-found.
	updated, err := u.repo.UpdateOwned(ctx, id, actorID, description)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (u *TaskUsecase) Delete(ctx context.Context, id, actorID string) error {
	task, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("find task: %w", err)
	}

	if task.UserID != actorID {
		return domain.ErrNotTaskOwner
	}

	if err := u.repo.DeleteOwned(ctx, id, actorID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
