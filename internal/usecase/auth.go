package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/email"
	"task-tracker-api/internal/repository"
)

// tokenIssuer is the subset of token.Issuer the usecase needs.
type tokenIssuer interface {
	Issue(userID string) (string, error)
}

// passwordHasher is satisfied by *password.Hasher.
type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type AuthUsecase struct {
	users  repository.UserRepository
	hasher passwordHasher
	tokens tokenIssuer
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, hasher passwordHasher, tokens tokenIssuer, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register validates the input, hashes the password, and creates the
// account. The unique index on email is the conflict authority, so a
// concurrent duplicate registration loses cleanly with ErrEmailTaken.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	name := strings.TrimSpace(input.Name)
	emailAddr := strings.TrimSpace(input.Email)
	if name == "" || emailAddr == "" || input.Password == "" {
		return nil, "", domain.ErrMissingFields
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, name, emailAddr, hash)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	// Best effort: a failed welcome email never fails the registration.
	if err := u.email.Send(ctx, user.Email, "Welcome to Task Tracker",
		fmt.Sprintf("<p>Hi %s, your account is ready.</p>", user.Name)); err != nil {
		u.logger.WarnContext(ctx, "welcome email", "error", err)
	}

	return user, signed, nil
}

// Login verifies the credentials and returns a fresh token. Unknown
// email and wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, plaintext string) (*domain.User, string, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(emailAddr))
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !u.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, signed, nil
}
