// AngelaMos | 2026
// entity.go

package task

import (
	"time"
)

// Task rows are always read through the class join, so the entity carries
// the linked class name alongside the stored columns.
type Task struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	ClassID     *int64     `db:"class_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	Completed   bool       `db:"completed"`
	CreatedAt   time.Time  `db:"created_at"`
	ClassName   *string    `db:"class_name"`
}
