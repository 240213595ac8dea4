package dto

import (
	"time"

	"github.com/google/uuid"

	"workbridge/internal/domain/job"
)

type JobResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Location     string    `json:"location"`
	EmployerID   uuid.UUID `json:"employer_id"`
	EmployerName string    `json:"employer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		EmployerID:   j.EmployerID,
		EmployerName: j.EmployerName,
		CreatedAt:    j.CreatedAt,
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
