// AngelaMos | 2026
// repository.go

package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uniplanner/backend/internal/core"
)

type Repository interface {
	ListByOwner(
		ctx context.Context,
		ownerID int64,
		classID *int64,
	) ([]Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	ToggleComplete(ctx context.Context, id, ownerID int64) (bool, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID int64,
	classID *int64,
) ([]Task, error) {
	query := `
		SELECT t.id, t.user_id, t.class_id, t.title, t.description,
		       t.due_date, t.completed, t.created_at, c.name AS class_name
		FROM tasks t
		LEFT JOIN classes c ON t.class_id = c.id
		WHERE t.user_id = $1`
	args := []any{ownerID}

	if classID != nil {
		query += ` AND t.class_id = $2`
		args = append(args, *classID)
	}

	query += ` ORDER BY t.due_date, t.created_at`

	var tasks []Task
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	query := `
		INSERT INTO tasks (user_id, class_id, title, description, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed, created_at`

	err := r.db.GetContext(ctx, t, query,
		t.UserID,
		t.ClassID,
		t.Title,
		t.Description,
		t.DueDate,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, due_date = $5, class_id = $6
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.DueDate,
		t.ClassID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update task: %w", core.ErrNotFound)
	}

	return nil
}

// ToggleComplete flips the flag in one conditioned statement. Two
// concurrent toggles both commit; the store serializes them and the last
// one wins. No read-then-write.
func (r *repository) ToggleComplete(
	ctx context.Context,
	id, ownerID int64,
) (bool, error) {
	query := `
		UPDATE tasks
		SET completed = NOT completed
		WHERE id = $1 AND user_id = $2
		RETURNING completed`

	var completed bool
	err := r.db.GetContext(ctx, &completed, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("toggle task: %w", core.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("toggle task: %w", err)
	}

	return completed, nil
}

func (r *repository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete task: %w", core.ErrNotFound)
	}

	return nil
}
