package dto

import (
	"time"

	"github.com/google/uuid"

	"workbridge/internal/domain/user"
)

// UserType keeps the original client contract's key name.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserType  user.Role `json:"userType"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		UserType:  u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
