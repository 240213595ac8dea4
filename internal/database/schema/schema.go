package schema

import (
	"context"
	"fmt"

	"workbridge/internal/database"
)

// Statements are idempotent so Ensure can run on every boot. Constraints back
// the domain invariants: unique email per user, one application per
// (job, applicant).
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('employer', 'job_seeker')),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id           UUID PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		requirements TEXT NOT NULL,
		location     TEXT NOT NULL,
		employer_id  UUID NOT NULL REFERENCES users(id),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS applications (
		id           UUID PRIMARY KEY,
		job_id       UUID NOT NULL REFERENCES jobs(id),
		applicant_id UUID NOT NULL REFERENCES users(id),
		status       TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'rejected', 'interview_scheduled')),
		applied_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (job_id, applicant_id)
	)`,

	`CREATE TABLE IF NOT EXISTS rejections (
		id             UUID PRIMARY KEY,
		application_id UUID NOT NULL REFERENCES applications(id),
		reason         TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS interviews (
		id             UUID PRIMARY KEY,
		application_id UUID NOT NULL REFERENCES applications(id),
		interview_date TIMESTAMPTZ NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
