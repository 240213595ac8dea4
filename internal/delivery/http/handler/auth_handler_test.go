package handler

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"

	"workbridge/internal/delivery/http/middleware"
	"workbridge/internal/usecase"
)

func TestMapAuthError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"existing email", usecase.ErrEmailAlreadyRegistered, fiber.StatusBadRequest},
		{"bad credentials", usecase.ErrInvalidCredentials, fiber.StatusBadRequest},
		{"missing fields", usecase.ErrInvalidInput, fiber.StatusBadRequest},
		{"anything else", usecase.ErrInternal, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var appErr *middleware.AppError
			if !errors.As(mapAuthError(tc.err), &appErr) {
				t.Fatalf("expected an AppError")
			}
			if appErr.StatusCode != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, appErr.StatusCode)
			}
		})
	}
}
