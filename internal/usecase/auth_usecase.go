package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"workbridge/internal/domain/user"
	"workbridge/internal/pkg/jwt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     user.Role
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
	Me(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service

	now func() time.Time
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc, now: time.Now}
}

func (a *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if name == "" || email == "" || strings.TrimSpace(in.Password) == "" || !in.Role.Valid() {
		return user.User{}, "", ErrInvalidInput
	}

	exists, err := a.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	if exists {
		return user.User{}, "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    a.now().UTC(),
	}

	if err := a.users.Create(ctx, u); err != nil {
		// The unique index is the source of truth; a racing registration
		// surfaces here rather than in the pre-check.
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.User{}, "", ErrEmailAlreadyRegistered
		}
		return user.User{}, "", ErrInternal
	}

	token, err := a.jwt.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(u), token, nil
}

func (a *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(u), token, nil
}

func (a *Auth) Me(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
