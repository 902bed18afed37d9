// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/uniplanner/backend/internal/core"
)

// Stats is the global summary: deliberately not tenant-filtered, it counts
// every row in the system.
type Stats struct {
	TotalUsers   int64 `db:"total_users"   json:"totalUsers"`
	TotalClasses int64 `db:"total_classes" json:"totalClasses"`
	TotalTasks   int64 `db:"total_tasks"   json:"totalTasks"`
}

type Repository interface {
	Counts(ctx context.Context) (*Stats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Counts(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users)   AS total_users,
			(SELECT COUNT(*) FROM classes) AS total_classes,
			(SELECT COUNT(*) FROM tasks)   AS total_tasks`

	var stats Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("count totals: %w", err)
	}

	return &stats, nil
}
