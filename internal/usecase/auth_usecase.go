package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase/interfaces"
)

var ErrInvalidSession = errors.New("invalid or expired session")

type IAuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
	SignOut(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (entities.Session, error)
}

type AuthUseCase struct {
	provider interfaces.IIdentityProvider
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase wires the provider and logs every session change it reports.
func NewAuthUseCase(provider interfaces.IIdentityProvider) *AuthUseCase {
	provider.OnSessionChange(func(s *entities.Session) {
		if s == nil {
			log.Printf("[auth][usecase] session ended")
			return
		}
		log.Printf("[auth][usecase] session started email=%s expires_at=%s", s.Email, s.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"))
	})
	return &AuthUseCase{provider: provider}
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthInvalidEmail}
	}
	if password == "" {
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthInvalidCredential}
	}
	s, err := u.provider.SignIn(ctx, email, password)
	if err != nil {
		log.Printf("[auth][usecase] sign-in rejected email=%s err=%v", email, err)
		return entities.Session{}, err
	}
	return s, nil
}

func (u *AuthUseCase) SignOut(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidSession
	}
	return u.provider.SignOut(ctx, token)
}

// Authenticate resolves a bearer token into its session.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrInvalidSession
	}
	s, err := u.provider.Verify(ctx, token)
	if err != nil {
		return entities.Session{}, errors.Join(ErrInvalidSession, err)
	}
	return s, nil
}
