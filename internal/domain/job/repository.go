package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)

	// List returns all postings newest first, each joined with the owning
	// employer's display name.
	List(ctx context.Context) ([]Job, error)
}
