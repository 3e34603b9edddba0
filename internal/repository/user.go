package repository

import (
	"context"

	"task-tracker-api/internal/domain"
)

// Usecases depend on the interface, not the pgx implementation, so tests
// can pass fakes and the store can be swapped without touching them.
type UserRepository interface {
	// Create persists a new user and returns it with ID and timestamps
	// set. Returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)

	// FindByEmail returns the user including the password hash; it is
	// only called on the login path.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID returns the user without the password hash. Used by the
	// auth middleware on every protected request.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
