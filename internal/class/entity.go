// AngelaMos | 2026
// entity.go

package class

import (
	"time"
)

type Class struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	Professor *string   `db:"professor"`
	Day       string    `db:"day"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
	Classroom *string   `db:"classroom"`
	CreatedAt time.Time `db:"created_at"`
}
