package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tiago154/fast-zero/internal/auth"
	"github.com/tiago154/fast-zero/internal/domain"
	"github.com/tiago154/fast-zero/internal/email"
	"github.com/tiago154/fast-zero/internal/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type UserUsecase struct {
	users  repository.UserRepository
	email  email.Sender
	logger *slog.Logger
}

func NewUserUsecase(users repository.UserRepository, emailSender email.Sender, logger *slog.Logger) *UserUsecase {
	return &UserUsecase{
		users:  users,
		email:  emailSender,
		logger: logger.With("component", "user_usecase"),
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates an account with a hashed credential. Uniqueness is
// enforced by the repository; conflicts surface as ErrUsernameTaken or
// ErrEmailTaken. The welcome email is best-effort.
func (u *UserUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	subject := "Welcome to fast-zero"
	body := fmt.Sprintf("<p>Hi %s, your account is ready.</p>", user.Username)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "send welcome email", "user_id", user.ID, "error", err)
	}

	return user, nil
}

func (u *UserUsecase) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return u.users.List(ctx, limit, offset)
}

func (u *UserUsecase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return u.users.FindByID(ctx, id)
}

type UpdateUserInput struct {
	Username string
	Email    string
	Password string
}

// Update replaces the target user's username, email, and password. Only the
// owner may: any other principal gets ErrForbidden.
func (u *UserUsecase) Update(ctx context.Context, principal *domain.User, targetID int64, input UpdateUserInput) (*domain.User, error) {
	if !auth.CanModifyUser(principal, targetID) {
		return nil, domain.ErrForbidden
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.users.Update(ctx, &domain.User{
		ID:           targetID,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	})
}

// Delete permanently removes the target user. Owner only; no soft delete.
func (u *UserUsecase) Delete(ctx context.Context, principal *domain.User, targetID int64) error {
	if !auth.CanModifyUser(principal, targetID) {
		return domain.ErrForbidden
	}
	return u.users.Delete(ctx, targetID)
}
