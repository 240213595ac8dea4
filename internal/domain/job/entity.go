package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Requirements string
	Location     string
	EmployerID   uuid.UUID
	CreatedAt    time.Time

	// EmployerName is joined in on listings; empty elsewhere.
	EmployerName string
}
