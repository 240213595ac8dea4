package handler

import (
	"errors"
	"time"

	"workbridge/internal/delivery/http/dto"
	"workbridge/internal/delivery/http/middleware"
	"workbridge/internal/pkg/response"
	"workbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type scheduleInterviewRequest struct {
	InterviewDate string `json:"interviewDate"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	applicantID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	app, err := h.uc.Apply(c.Context(), jobID, applicantID)
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) Reject(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}

	var req rejectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.Reject(c.Context(), applicationID, employerID, req.Reason); err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusOK, "Application rejected successfully", nil)
}

func (h *ApplicationHandler) ScheduleInterview(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}

	var req scheduleInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	date, ok := parseInterviewDate(req.InterviewDate)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Interview date is required", nil, nil)
	}

	if err := h.uc.ScheduleInterview(c.Context(), applicationID, employerID, date); err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusOK, "Interview scheduled successfully", nil)
}

var interviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseInterviewDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range interviewDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "Already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrTransitionConflict):
		return middleware.NewAppError(fiber.StatusBadRequest, "Application is no longer pending", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Interview date is required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
