package domain

import (
	"errors"
	"time"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNotTaskOwner     = errors.New("user not authorized")
	ErrEmptyDescription = errors.New("please type a description")
)

// Task belongs to exactly one user. UserID is set at creation and never
// changes afterwards.
type Task struct {
	ID          string
	UserID      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
