// AngelaMos | 2026
// dto.go

package class

import (
	"time"
)

// UpsertRequest covers both create and update: the same fields are
// required for each, matching the full-row update semantics of the API.
type UpsertRequest struct {
	Name      string  `json:"name"       validate:"required,max=255"`
	Professor *string `json:"professor"  validate:"omitempty,max=255"`
	Day       string  `json:"day"        validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string  `json:"end_time"   validate:"required,datetime=15:04"`
	Classroom *string `json:"classroom"  validate:"omitempty,max=255"`
}

type Response struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Professor *string   `json:"professor"`
	Day       string    `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Classroom *string   `json:"classroom"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func ToResponse(c *Class) Response {
	return Response{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Professor: c.Professor,
		Day:       c.Day,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Classroom: c.Classroom,
		CreatedAt: c.CreatedAt,
	}
}

func ToResponseList(classes []Class) []Response {
	responses := make([]Response, 0, len(classes))
	for _, c := range classes {
		responses = append(responses, ToResponse(&c))
	}
	return responses
}
