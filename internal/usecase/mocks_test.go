package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"workbridge/internal/domain/application"
	"workbridge/internal/domain/job"
	"workbridge/internal/domain/user"
	"workbridge/internal/ws"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
	seekers []uuid.UUID

	createErr error
	listErr   error
	created   []user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *mockUserRepo) add(u user.User) {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, u)
	m.add(u)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) ListIDsByRole(_ context.Context, role user.Role) ([]uuid.UUID, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if role != user.RoleJobSeeker {
		return nil, nil
	}
	return m.seekers, nil
}

type mockJobRepo struct {
	byID map[uuid.UUID]job.Job

	listing   []job.Job
	listErr   error
	listCalls int

	createErr error
	created   []job.Job
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{byID: make(map[uuid.UUID]job.Job)}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, j)
	m.byID[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) List(_ context.Context) ([]job.Job, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listing, nil
}

type mockApplicationRepo struct {
	byPair map[[2]uuid.UUID]application.Application

	owned map[uuid.UUID]application.OwnedApplication

	rejectErr   error
	scheduleErr error

	created    []application.Application
	rejections []application.Rejection
	interviews []application.Interview
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{
		byPair: make(map[[2]uuid.UUID]application.Application),
		owned:  make(map[uuid.UUID]application.OwnedApplication),
	}
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	key := [2]uuid.UUID{a.JobID, a.ApplicantID}
	if _, ok := m.byPair[key]; ok {
		return application.ErrDuplicate
	}
	m.byPair[key] = a
	m.created = append(m.created, a)
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	for _, a := range m.byPair {
		if a.ID == id {
			return a, nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (m *mockApplicationRepo) GetOwned(_ context.Context, id, employerID uuid.UUID) (application.OwnedApplication, error) {
	oa, ok := m.owned[id]
	if !ok || oa.EmployerID != employerID {
		return application.OwnedApplication{}, application.ErrNotFound
	}
	return oa, nil
}

func (m *mockApplicationRepo) Reject(_ context.Context, r application.Rejection) error {
	if m.rejectErr != nil {
		return m.rejectErr
	}
	m.rejections = append(m.rejections, r)
	return nil
}

func (m *mockApplicationRepo) ScheduleInterview(_ context.Context, iv application.Interview) error {
	if m.scheduleErr != nil {
		return m.scheduleErr
	}
	m.interviews = append(m.interviews, iv)
	return nil
}

type sentEvent struct {
	UserID uuid.UUID
	Event  ws.Event
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentEvent
}

func (n *recordingNotifier) NotifyUser(userID uuid.UUID, evt ws.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentEvent{UserID: userID, Event: evt})
}

func (n *recordingNotifier) sentTo(userID uuid.UUID) []ws.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []ws.Event
	for _, s := range n.sent {
		if s.UserID == userID {
			out = append(out, s.Event)
		}
	}
	return out
}

type fakeCache struct {
	store   map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	c.deletes = append(c.deletes, key)
	return nil
}
