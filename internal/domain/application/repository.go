package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")

	// ErrNotPending reports a transition attempted on an application that
	// already left the pending state.
	ErrNotPending = errors.New("application is not pending")
)

type Repository interface {
	// Create inserts a pending application and returns ErrDuplicate when one
	// already exists for the same (job, applicant).
	Create(ctx context.Context, a Application) error

	// GetOwned resolves an application through its job, scoped to the given
	// employer. ErrNotFound covers both a missing row and a non-owner.
	GetOwned(ctx context.Context, id, employerID uuid.UUID) (OwnedApplication, error)

	// Reject transitions to rejected and records the rejection reason in one
	// transaction. The UPDATE is conditional on status=pending; a lost race
	// returns ErrNotPending.
	Reject(ctx context.Context, r Rejection) error

	// ScheduleInterview transitions to interview_scheduled and records the
	// interview, with the same conditional-update contract as Reject.
	ScheduleInterview(ctx context.Context, iv Interview) error

	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
}

// NewPending builds an application in its initial state.
func NewPending(jobID, applicantID uuid.UUID, now time.Time) Application {
	return Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      StatusPending,
		AppliedAt:   now,
	}
}
