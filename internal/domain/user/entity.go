package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "job_seeker"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
