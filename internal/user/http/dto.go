package http

import (
	"github.com/ghpham11a/xp-scheduler-sub000/internal/user"
)

// UserResponse mirrors the wire shape the scheduler clients expect.
type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarColor string `json:"avatarColor"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AvatarColor: u.AvatarColor,
	}
}
