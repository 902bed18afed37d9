// AngelaMos | 2026
// dto.go

package task

import (
	"time"
)

const dueDateLayout = "2006-01-02"

type UpsertRequest struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	DueDate     *string `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
	ClassID     *int64  `json:"class_id"    validate:"omitempty,min=1"`
}

type Response struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ClassID     *int64    `json:"class_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"due_date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	ClassName   *string   `json:"class_name"`
}

type CreateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ToggleResponse struct {
	Completed bool `json:"completed"`
}

func ToResponse(t *Task) Response {
	var dueDate *string
	if t.DueDate != nil {
		formatted := t.DueDate.Format(dueDateLayout)
		dueDate = &formatted
	}

	return Response{
		ID:          t.ID,
		UserID:      t.UserID,
		ClassID:     t.ClassID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     dueDate,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		ClassName:   t.ClassName,
	}
}

func ToResponseList(tasks []Task) []Response {
	responses := make([]Response, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToResponse(&t))
	}
	return responses
}
