package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbridge/internal/domain/user"
	"workbridge/internal/pkg/jwt"
)

func newAuthFixture() (*Auth, *mockUserRepo, jwt.Service) {
	users := newMockUserRepo()
	jwtSvc := jwt.NewHMACService("test-secret", 24*time.Hour)
	return NewAuthUsecase(users, jwtSvc), users, jwtSvc
}

func TestAuth_Register_TokenDecodesToSameUser(t *testing.T) {
	uc, _, jwtSvc := newAuthFixture()

	usr, token, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Acme HR",
		Email:    "HR@Acme.Test",
		Password: "s3cret-pass",
		Role:     user.RoleEmployer,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "hr@acme.test" {
		t.Fatalf("email should be normalized, got %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}

	claims, err := jwtSvc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != usr.ID {
		t.Fatalf("token user id %s does not match %s", claims.UserID, usr.ID)
	}
	if claims.Role != user.RoleEmployer {
		t.Fatalf("unexpected role %q", claims.Role)
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	in := RegisterInput{Name: "Jane", Email: "jane@example.test", Password: "s3cret-pass", Role: user.RoleJobSeeker}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, err := uc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_Register_Validation(t *testing.T) {
	uc, _, _ := newAuthFixture()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@b.test", Password: "s3cret-pass", Role: user.RoleEmployer}},
		{"missing email", RegisterInput{Name: "A", Password: "s3cret-pass", Role: user.RoleEmployer}},
		{"missing password", RegisterInput{Name: "A", Email: "a@b.test", Role: user.RoleEmployer}},
		{"bad role", RegisterInput{Name: "A", Email: "a@b.test", Password: "s3cret-pass", Role: user.Role("admin")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	uc, _, _ := newAuthFixture()

	in := RegisterInput{Name: "Jane", Email: "jane@example.test", Password: "s3cret-pass", Role: user.RoleJobSeeker}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	cases := []LoginInput{
		{Email: "jane@example.test", Password: "wrong"},
		{Email: "unknown@example.test", Password: "s3cret-pass"},
		{Email: "", Password: ""},
	}
	for _, c := range cases {
		if _, _, err := uc.Login(context.Background(), c); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login %q: expected ErrInvalidCredentials, got %v", c.Email, err)
		}
	}
}

func TestAuth_Login_Success(t *testing.T) {
	uc, _, jwtSvc := newAuthFixture()

	reg := RegisterInput{Name: "Jane", Email: "jane@example.test", Password: "s3cret-pass", Role: user.RoleJobSeeker}
	registered, _, err := uc.Register(context.Background(), reg)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	usr, token, err := uc.Login(context.Background(), LoginInput{Email: "jane@example.test", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, usr.ID)
	}

	claims, err := jwtSvc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("token does not decode back to the registered user")
	}
}

func TestAuth_Me_MissingUser(t *testing.T) {
	uc, users, _ := newAuthFixture()

	reg := RegisterInput{Name: "Jane", Email: "jane@example.test", Password: "s3cret-pass", Role: user.RoleJobSeeker}
	registered, _, err := uc.Register(context.Background(), reg)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	delete(users.byID, registered.ID)
	if _, err := uc.Me(context.Background(), registered.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
}
