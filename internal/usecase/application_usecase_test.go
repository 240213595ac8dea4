package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"workbridge/internal/domain/application"
	"workbridge/internal/domain/job"
	"workbridge/internal/domain/user"
	"workbridge/internal/ws"
)

func seededApplicationFixture() (*mockApplicationRepo, *mockJobRepo, *mockUserRepo, *recordingNotifier, job.Job, user.User) {
	employer := user.User{ID: uuid.New(), Name: "Acme HR", Email: "hr@acme.test", Role: user.RoleEmployer}
	seeker := user.User{ID: uuid.New(), Name: "Jane Doe", Email: "jane@example.test", Role: user.RoleJobSeeker}

	posting := job.Job{
		ID:         uuid.New(),
		Title:      "Backend Engineer",
		EmployerID: employer.ID,
	}

	users := newMockUserRepo()
	users.add(employer)
	users.add(seeker)

	jobs := newMockJobRepo()
	jobs.byID[posting.ID] = posting

	return newMockApplicationRepo(), jobs, users, &recordingNotifier{}, posting, seeker
}

func TestApplications_Apply_CreatesPendingAndNotifiesEmployer(t *testing.T) {
	apps, jobs, users, notifier, posting, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	app, err := uc.Apply(context.Background(), posting.ID, seeker.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != application.StatusPending {
		t.Fatalf("expected pending, got %q", app.Status)
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected 1 application row, got %d", len(apps.created))
	}

	got := notifier.sentTo(posting.EmployerID)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification to employer, got %d", len(got))
	}
	if got[0].Type != ws.EventNewApplication {
		t.Fatalf("unexpected event type %q", got[0].Type)
	}
	if got[0].Message != "Jane Doe has applied for your job: Backend Engineer" {
		t.Fatalf("unexpected message %q", got[0].Message)
	}
}

func TestApplications_Apply_UnknownJob(t *testing.T) {
	apps, jobs, users, notifier, _, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	_, err := uc.Apply(context.Background(), uuid.New(), seeker.ID)
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no notifications, got %d", len(notifier.sent))
	}
}

func TestApplications_Apply_SecondApplicationConflicts(t *testing.T) {
	apps, jobs, users, notifier, posting, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	if _, err := uc.Apply(context.Background(), posting.ID, seeker.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := uc.Apply(context.Background(), posting.ID, seeker.ID)
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected exactly 1 application row, got %d", len(apps.created))
	}
	if got := notifier.sentTo(posting.EmployerID); len(got) != 1 {
		t.Fatalf("expected exactly 1 employer notification, got %d", len(got))
	}
}

func TestApplications_Reject_NotOwner(t *testing.T) {
	apps, jobs, users, notifier, posting, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	appID := uuid.New()
	apps.owned[appID] = application.OwnedApplication{
		Application: application.Application{ID: appID, JobID: posting.ID, ApplicantID: seeker.ID, Status: application.StatusPending},
		JobTitle:    posting.Title,
		EmployerID:  posting.EmployerID,
	}

	err := uc.Reject(context.Background(), appID, uuid.New(), "not a fit")
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
	if len(apps.rejections) != 0 {
		t.Fatalf("expected no rejection rows, got %d", len(apps.rejections))
	}
}

func TestApplications_Reject_RecordsReasonAndNotifiesApplicant(t *testing.T) {
	apps, jobs, users, notifier, posting, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	appID := uuid.New()
	apps.owned[appID] = application.OwnedApplication{
		Application: application.Application{ID: appID, JobID: posting.ID, ApplicantID: seeker.ID, Status: application.StatusPending},
		JobTitle:    posting.Title,
		EmployerID:  posting.EmployerID,
	}

	if err := uc.Reject(context.Background(), appID, posting.EmployerID, "not a fit"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(apps.rejections) != 1 {
		t.Fatalf("expected exactly 1 rejection row, got %d", len(apps.rejections))
	}
	if apps.rejections[0].Reason != "not a fit" {
		t.Fatalf("unexpected reason %q", apps.rejections[0].Reason)
	}

	got := notifier.sentTo(seeker.ID)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 notification to applicant, got %d", len(got))
	}
	if got[0].Type != ws.EventApplicationRejected {
		t.Fatalf("unexpected event type %q", got[0].Type)
	}
	if got[0].Message != "Sorry, your application for Backend Engineer was rejected." {
		t.Fatalf("unexpected message %q", got[0].Message)
	}
}

func TestApplications_Reject_DefaultsReason(t *testing.T) {
	apps, jobs, users, notifier, posting, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	appID := uuid.New()
	apps.owned[appID] = application.OwnedApplication{
		Application: application.Application{ID: appID, JobID: posting.ID, ApplicantID: seeker.ID, Status: application.StatusPending},
		JobTitle:    posting.Title,
		EmployerID:  posting.EmployerID,
	}

	if err := uc.Reject(context.Background(), appID, posting.EmployerID, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if apps.rejections[0].Reason != DefaultRejectionReason {
		t.Fatalf("expected default reason, got %q", apps.rejections[0].Reason)
	}
}

func TestApplications_Reject_LostRaceConflicts(t *testing.T) {
	apps, jobs, users, notifier, posting, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	appID := uuid.New()
	apps.owned[appID] = application.OwnedApplication{
		Application: application.Application{ID: appID, JobID: posting.ID, ApplicantID: seeker.ID, Status: application.StatusPending},
		JobTitle:    posting.Title,
		EmployerID:  posting.EmployerID,
	}
	apps.rejectErr = application.ErrNotPending

	err := uc.Reject(context.Background(), appID, posting.EmployerID, "late")
	if !errors.Is(err, ErrTransitionConflict) {
		t.Fatalf("expected ErrTransitionConflict, got %v", err)
	}
	if len(notifier.sentTo(seeker.ID)) != 0 {
		t.Fatalf("lost race must not notify the applicant")
	}
}

func TestApplications_ScheduleInterview_RequiresDate(t *testing.T) {
	apps, jobs, users, notifier, posting, _ := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	err := uc.ScheduleInterview(context.Background(), uuid.New(), posting.EmployerID, time.Time{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplications_ScheduleInterview_RecordsAndNotifies(t *testing.T) {
	apps, jobs, users, notifier, posting, seeker := seededApplicationFixture()
	uc := NewApplicationUsecase(apps, jobs, users, notifier, nil)

	appID := uuid.New()
	apps.owned[appID] = application.OwnedApplication{
		Application: application.Application{ID: appID, JobID: posting.ID, ApplicantID: seeker.ID, Status: application.StatusPending},
		JobTitle:    posting.Title,
		EmployerID:  posting.EmployerID,
	}

	date := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	if err := uc.ScheduleInterview(context.Background(), appID, posting.EmployerID, date); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(apps.interviews) != 1 {
		t.Fatalf("expected exactly 1 interview row, got %d", len(apps.interviews))
	}
	if !apps.interviews[0].InterviewDate.Equal(date) {
		t.Fatalf("unexpected interview date %v", apps.interviews[0].InterviewDate)
	}

	got := notifier.sentTo(seeker.ID)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 notification to applicant, got %d", len(got))
	}
	if got[0].Type != ws.EventInterviewScheduled {
		t.Fatalf("unexpected event type %q", got[0].Type)
	}
	if got[0].InterviewDate == nil || !got[0].InterviewDate.Equal(date) {
		t.Fatalf("event should carry the interview date")
	}
}
