package repository

import (
	"context"
	"errors"

	"workbridge/internal/database"
	"workbridge/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, requirements, location, employer_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.Title, j.Description, j.Requirements, j.Location, j.EmployerID, j.CreatedAt,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, requirements, location, employer_id, created_at
		 FROM jobs WHERE id = $1`,
		id,
	)

	var j job.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Location, &j.EmployerID, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.description, j.requirements, j.location, j.employer_id, j.created_at, u.name
		 FROM jobs j
		 JOIN users u ON j.employer_id = u.id
		 ORDER BY j.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Location, &j.EmployerID, &j.CreatedAt, &j.EmployerName); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
