package usecase

import (
	"context"
	"fmt"

	"github.com/tiago154/fast-zero/internal/auth"
	"github.com/tiago154/fast-zero/internal/domain"
	"github.com/tiago154/fast-zero/internal/metrics"
	"github.com/tiago154/fast-zero/internal/repository"
)

// Token is the result of a successful login or refresh.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

type AuthUsecase struct {
	users repository.UserRepository
	codec *auth.Codec
}

func NewAuthUsecase(users repository.UserRepository, codec *auth.Codec) *AuthUsecase {
	return &AuthUsecase{users: users, codec: codec}
}

// Login verifies username/password and issues an access token. Unknown
// username and wrong password both return ErrInvalidCredentials, so the
// response cannot reveal which part was wrong.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (Token, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil || !auth.VerifyPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return Token{}, domain.ErrInvalidCredentials
	}

	token, err := u.issue(user.Username)
	if err != nil {
		return Token{}, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}

// Authenticate resolves a bearer token to its user. Every failure mode
// (malformed, expired, bad signature, missing or unknown subject) collapses
// to ErrUnauthenticated; callers never learn why verification failed.
func (u *AuthUsecase) Authenticate(ctx context.Context, raw string) (*domain.User, error) {
	claims, err := u.codec.Decode(raw)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := u.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// Refresh issues a fresh token for an already-authenticated principal. The
// auth middleware has re-verified the subject still exists before this runs,
// so both issuance paths share the same resolver contract.
func (u *AuthUsecase) Refresh(principal *domain.User) (Token, error) {
	return u.issue(principal.Username)
}

func (u *AuthUsecase) issue(subject string) (Token, error) {
	signed, err := u.codec.Issue(subject)
	if err != nil {
		return Token{}, fmt.Errorf("issue token: %w", err)
	}
	metrics.TokensIssuedTotal.Inc()
	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.codec.TTL().Seconds()),
	}, nil
}
