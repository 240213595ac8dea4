package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"workbridge/internal/domain/job"
	"workbridge/internal/domain/user"
	"workbridge/internal/ws"
)

const jobsListCacheKey = "jobs:list"

type PostJobInput struct {
	EmployerID   uuid.UUID
	Title        string
	Description  string
	Requirements string
	Location     string
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]job.Job, error)
	PostJob(ctx context.Context, in PostJobInput) (job.Job, error)
}

// ListCache is the read-through cache port for the public jobs listing; the
// redis adapter degrades every call to a no-op when unavailable.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Jobs struct {
	jobs     job.Repository
	users    user.Repository
	notifier Notifier
	cache    ListCache
	logger   *log.Logger

	now func() time.Time
}

func NewJobUsecase(jobs job.Repository, users user.Repository, notifier Notifier, cache ListCache, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{jobs: jobs, users: users, notifier: notifier, cache: cache, logger: logger, now: time.Now}
}

func (j *Jobs) ListJobs(ctx context.Context) ([]job.Job, error) {
	if j.cache != nil {
		var cached []job.Job
		if hit, err := j.cache.GetJSON(ctx, jobsListCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	listing, err := j.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if j.cache != nil {
		if err := j.cache.SetJSON(ctx, jobsListCacheKey, listing, 0); err != nil {
			j.logger.Printf("jobs list cache set failed | error=%v", err)
		}
	}

	return listing, nil
}

func (j *Jobs) PostJob(ctx context.Context, in PostJobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	requirements := strings.TrimSpace(in.Requirements)
	location := strings.TrimSpace(in.Location)
	if title == "" || description == "" || requirements == "" || location == "" {
		return job.Job{}, ErrInvalidInput
	}

	posting := job.Job{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		Requirements: requirements,
		Location:     location,
		EmployerID:   in.EmployerID,
		CreatedAt:    j.now().UTC(),
	}

	if err := j.jobs.Create(ctx, posting); err != nil {
		return job.Job{}, ErrInternal
	}

	if j.cache != nil {
		if err := j.cache.Delete(ctx, jobsListCacheKey); err != nil {
			j.logger.Printf("jobs list cache invalidation failed | error=%v", err)
		}
	}

	// Fan-out runs detached from the request cycle: a client disconnect must
	// not cut the notifications short, and delivery stays best effort.
	go j.fanOutNewJob(posting)

	return posting, nil
}

func (j *Jobs) fanOutNewJob(posting job.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	seekers, err := j.users.ListIDsByRole(ctx, user.RoleJobSeeker)
	if err != nil {
		j.logger.Printf("new_job fan-out aborted | job_id=%s error=%v", posting.ID, err)
		return
	}

	evt := ws.NewJobEvent(posting.ID, posting.Title)
	for _, seekerID := range seekers {
		j.notifier.NotifyUser(seekerID, evt)
	}
	j.logger.Printf("new_job fan-out | job_id=%s recipients=%d", posting.ID, len(seekers))
}
