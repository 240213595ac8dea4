package repository

import (
	"context"
	"errors"

	"workbridge/internal/database"
	"workbridge/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.JobID, a.ApplicantID, a.Status, a.AppliedAt,
	)
	if isUniqueViolation(err) {
		return application.ErrDuplicate
	}
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, applicant_id, status, applied_at FROM applications WHERE id = $1`,
		id,
	)

	var a application.Application
	if err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.AppliedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

// GetOwned resolves the application through its job so that ownership is part
// of the lookup itself, not a separate check.
func (r *PostgresApplicationRepository) GetOwned(ctx context.Context, id, employerID uuid.UUID) (application.OwnedApplication, error) {
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.applied_at, j.title, j.employer_id, u.name
		 FROM applications a
		 JOIN jobs j ON a.job_id = j.id
		 JOIN users u ON a.applicant_id = u.id
		 WHERE a.id = $1 AND j.employer_id = $2`,
		id, employerID,
	)

	var oa application.OwnedApplication
	err := row.Scan(
		&oa.ID, &oa.JobID, &oa.ApplicantID, &oa.Status, &oa.AppliedAt,
		&oa.JobTitle, &oa.EmployerID, &oa.ApplicantName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.OwnedApplication{}, application.ErrNotFound
		}
		return application.OwnedApplication{}, err
	}
	return oa, nil
}

func (r *PostgresApplicationRepository) Reject(ctx context.Context, rej application.Rejection) error {
	return r.transition(ctx, rej.ApplicationID, application.StatusRejected,
		`INSERT INTO rejections (id, application_id, reason, created_at) VALUES ($1, $2, $3, $4)`,
		rej.ID, rej.ApplicationID, rej.Reason, rej.CreatedAt,
	)
}

func (r *PostgresApplicationRepository) ScheduleInterview(ctx context.Context, iv application.Interview) error {
	return r.transition(ctx, iv.ApplicationID, application.StatusInterviewScheduled,
		`INSERT INTO interviews (id, application_id, interview_date, created_at) VALUES ($1, $2, $3, $4)`,
		iv.ID, iv.ApplicationID, iv.InterviewDate, iv.CreatedAt,
	)
}

// transition performs the conditional status update and the child-row insert
// in one transaction. The WHERE status='pending' guard makes concurrent
// transitions on the same application mutually exclusive: the loser affects
// zero rows and gets ErrNotPending.
func (r *PostgresApplicationRepository) transition(
	ctx context.Context,
	applicationID uuid.UUID,
	to application.Status,
	childInsert string,
	childArgs ...any,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	affected, err := tx.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2 AND status = $3`,
		to, applicationID, application.StatusPending,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotPending
	}

	if _, err := tx.Exec(ctx, childInsert, childArgs...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
