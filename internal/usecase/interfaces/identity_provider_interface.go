package interfaces

import (
	"context"

	"nelly_tech/internal/domain/entities"
)

type AuthErrorCode string

const (
	AuthInvalidCredential AuthErrorCode = "InvalidCredential"
	AuthInvalidEmail      AuthErrorCode = "InvalidEmail"
	AuthTooManyRequests   AuthErrorCode = "TooManyRequests"
	AuthUnknown           AuthErrorCode = "Unknown"
)

// AuthError is an identity provider failure.
type AuthError struct {
	Code AuthErrorCode
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return "auth " + string(e.Code) + ": " + e.Err.Error()
	}
	return "auth " + string(e.Code)
}

func (e *AuthError) Unwrap() error { return e.Err }

// UserMessage is the message shown on the login screen.
func (e *AuthError) UserMessage() string {
	switch e.Code {
	case AuthInvalidCredential:
		return "Email ou senha incorretos"
	case AuthInvalidEmail:
		return "Email inválido"
	case AuthTooManyRequests:
		return "Muitas tentativas. Tente novamente mais tarde"
	}
	return "Erro ao fazer login. Tente novamente."
}

// IIdentityProvider authenticates back office admins.
//
// Session change listeners receive the new session on sign-in and nil on sign-out.
type IIdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (entities.Session, error)
	OnSessionChange(fn func(*entities.Session))
}
