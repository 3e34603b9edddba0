package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"task-tracker-api/internal/domain"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, userID, description string) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (user_id, description)
		VALUES ($1, $2)
		RETURNING id, user_id, description, created_at, updated_at`

	return scanTask(r.pool.QueryRow(ctx, query, userID, description))
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `
		SELECT id, user_id, description, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, description, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateOwned matches on id AND owner in a single statement, so a task
// deleted between the usecase's existence check and this write surfaces
// as not-found instead of silently resurrecting stale data.
func (r *TaskRepository) UpdateOwned(ctx context.Context, id, userID, description string) (*domain.Task, error) {
	query := `
		UPDATE tasks
		SET    description = $3,
		       updated_at  = NOW()
		WHERE  id = $1 AND user_id = $2
		RETURNING id, user_id, description, created_at, updated_at`

	return scanTask(r.pool.QueryRow(ctx, query, id, userID, description))
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}
