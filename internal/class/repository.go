// AngelaMos | 2026
// repository.go

package class

import (
	"context"
	"fmt"

	"github.com/uniplanner/backend/internal/core"
)

// Every mutation carries the ownership predicate in the statement itself;
// a wrong owner and a missing row are indistinguishable (zero rows).
type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Class, error)
	Create(ctx context.Context, c *Class) error
	Update(ctx context.Context, c *Class) error
	Delete(ctx context.Context, id, ownerID int64) error
	ExistsForOwner(ctx context.Context, id, ownerID int64) (bool, error)
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
) ([]Class, error) {
	query := `
		SELECT id, user_id, name, professor, day, start_time, end_time,
		       classroom, created_at
		FROM classes
		WHERE user_id = $1
		ORDER BY day, start_time`

	var classes []Class
	if err := r.db.SelectContext(ctx, &classes, query, ownerID); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	return classes, nil
}

func (r *repository) Create(ctx context.Context, c *Class) error {
	query := `
		INSERT INTO classes (user_id, name, professor, day, start_time,
		                     end_time, classroom)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.GetContext(ctx, c, query,
		c.UserID,
		c.Name,
		c.Professor,
		c.Day,
		c.StartTime,
		c.EndTime,
		c.Classroom,
	)
	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, c *Class) error {
	query := `
		UPDATE classes
		SET name = $3, professor = $4, day = $5, start_time = $6,
		    end_time = $7, classroom = $8
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.Professor,
		c.Day,
		c.StartTime,
		c.EndTime,
		c.Classroom,
	)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update class: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM classes WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete class: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ExistsForOwner(
	ctx context.Context,
	id, ownerID int64,
) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM classes WHERE id = $1 AND user_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id, ownerID); err != nil {
		return false, fmt.Errorf("check class ownership: %w", err)
	}

	return exists, nil
}
