// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

// Response is the client-visible shape of a user. The password hash never
// leaves the repository layer.
type Response struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(u *User) Response {
	return Response{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToResponseList(users []User) []Response {
	responses := make([]Response, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(&u))
	}
	return responses
}
