package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"workbridge/internal/domain/application"
	"workbridge/internal/domain/job"
	"workbridge/internal/domain/user"
	"workbridge/internal/ws"
)

// DefaultRejectionReason is stored when the employer omits a reason.
const DefaultRejectionReason = "No reason provided"

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, applicantID uuid.UUID) (application.Application, error)
	Reject(ctx context.Context, applicationID, employerID uuid.UUID, reason string) error
	ScheduleInterview(ctx context.Context, applicationID, employerID uuid.UUID, date time.Time) error
}

type Applications struct {
	apps     application.Repository
	jobs     job.Repository
	users    user.Repository
	notifier Notifier
	logger   *log.Logger

	now func() time.Time
}

func NewApplicationUsecase(
	apps application.Repository,
	jobs job.Repository,
	users user.Repository,
	notifier Notifier,
	logger *log.Logger,
) *Applications {
	if logger == nil {
		logger = log.Default()
	}
	return &Applications{apps: apps, jobs: jobs, users: users, notifier: notifier, logger: logger, now: time.Now}
}

// Apply records a pending application for (job, applicant). The unique index
// on (job_id, applicant_id) enforces the one-application invariant; a
// duplicate surfaces as ErrAlreadyApplied regardless of interleaving.
func (s *Applications) Apply(ctx context.Context, jobID, applicantID uuid.UUID) (application.Application, error) {
	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}

	applicant, err := s.users.GetByID(ctx, applicantID)
	if err != nil {
		return application.Application{}, ErrInternal
	}

	app := application.NewPending(jobID, applicantID, s.now().UTC())
	if err := s.apps.Create(ctx, app); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	s.notifier.NotifyUser(posting.EmployerID, ws.NewApplicationEvent(posting.ID, applicant.ID, applicant.Name, posting.Title))

	return app, nil
}

// Reject transitions an application owned (through its job) by employerID to
// rejected and records the reason. An application that already left pending
// is a conflict, not a re-run.
func (s *Applications) Reject(ctx context.Context, applicationID, employerID uuid.UUID, reason string) error {
	owned, err := s.apps.GetOwned(ctx, applicationID, employerID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}

	if reason == "" {
		reason = DefaultRejectionReason
	}

	rejection := application.Rejection{
		ID:            uuid.New(),
		ApplicationID: owned.ID,
		Reason:        reason,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.apps.Reject(ctx, rejection); err != nil {
		if errors.Is(err, application.ErrNotPending) {
			return ErrTransitionConflict
		}
		return ErrInternal
	}

	s.notifier.NotifyUser(owned.ApplicantID, ws.ApplicationRejectedEvent(owned.JobID, owned.JobTitle))

	return nil
}

// ScheduleInterview mirrors Reject with an interview child row and a
// mandatory date.
func (s *Applications) ScheduleInterview(ctx context.Context, applicationID, employerID uuid.UUID, date time.Time) error {
	if date.IsZero() {
		return ErrInvalidInput
	}

	owned, err := s.apps.GetOwned(ctx, applicationID, employerID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}

	interview := application.Interview{
		ID:            uuid.New(),
		ApplicationID: owned.ID,
		InterviewDate: date,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.apps.ScheduleInterview(ctx, interview); err != nil {
		if errors.Is(err, application.ErrNotPending) {
			return ErrTransitionConflict
		}
		return ErrInternal
	}

	s.notifier.NotifyUser(owned.ApplicantID, ws.InterviewScheduledEvent(owned.JobID, owned.JobTitle, date))

	return nil
}
