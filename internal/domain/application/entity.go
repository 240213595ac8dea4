package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending            Status = "pending"
	StatusRejected           Status = "rejected"
	StatusInterviewScheduled Status = "interview_scheduled"
)

// The state machine is deliberately closed: pending is the only non-terminal
// state, and rejected / interview_scheduled admit no further transitions.

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Status      Status
	AppliedAt   time.Time
}

// OwnedApplication is an application joined with its job and applicant,
// looked up scoped to the employer owning the job.
type OwnedApplication struct {
	Application
	JobTitle      string
	EmployerID    uuid.UUID
	ApplicantName string
}

type Rejection struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Reason        string
	CreatedAt     time.Time
}

type Interview struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	InterviewDate time.Time
	CreatedAt     time.Time
}
