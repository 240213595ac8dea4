package ws

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EventNewJob              = "new_job"
	EventNewApplication      = "new_application"
	EventApplicationRejected = "application_rejected"
	EventInterviewScheduled  = "interview_scheduled"
)

// Event is the single push-channel payload shape: a human-readable message
// plus the identifiers the client needs to navigate.
type Event struct {
	Type          string     `json:"type"`
	Message       string     `json:"message"`
	JobID         uuid.UUID  `json:"job_id"`
	ApplicantID   *uuid.UUID `json:"applicant_id,omitempty"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
}

func NewJobEvent(jobID uuid.UUID, title string) Event {
	return Event{
		Type:    EventNewJob,
		Message: fmt.Sprintf("New Job Alert: %s at Your Company!", title),
		JobID:   jobID,
	}
}

func NewApplicationEvent(jobID, applicantID uuid.UUID, applicantName, jobTitle string) Event {
	return Event{
		Type:        EventNewApplication,
		Message:     fmt.Sprintf("%s has applied for your job: %s", applicantName, jobTitle),
		JobID:       jobID,
		ApplicantID: &applicantID,
	}
}

func ApplicationRejectedEvent(jobID uuid.UUID, jobTitle string) Event {
	return Event{
		Type:    EventApplicationRejected,
		Message: fmt.Sprintf("Sorry, your application for %s was rejected.", jobTitle),
		JobID:   jobID,
	}
}

func InterviewScheduledEvent(jobID uuid.UUID, jobTitle string, date time.Time) Event {
	return Event{
		Type:          EventInterviewScheduled,
		Message:       fmt.Sprintf("Your interview for %s is scheduled on %s.", jobTitle, date.Format(time.RFC3339)),
		JobID:         jobID,
		InterviewDate: &date,
	}
}
