package dto

import (
	"time"

	"github.com/google/uuid"

	"workbridge/internal/domain/application"
)

type ApplicationResponse struct {
	ID          uuid.UUID          `json:"id"`
	JobID       uuid.UUID          `json:"job_id"`
	ApplicantID uuid.UUID          `json:"applicant_id"`
	Status      application.Status `json:"status"`
	AppliedAt   time.Time          `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}
}
