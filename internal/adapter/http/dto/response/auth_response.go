package response

import (
	"time"

	"nelly_tech/internal/domain/entities"
)

type SessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		Email:     s.Email,
		ExpiresAt: s.ExpiresAt,
	}
}

type MeResponse struct {
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSessionMe(s entities.Session) MeResponse {
	return MeResponse{Email: s.Email, IssuedAt: s.IssuedAt, ExpiresAt: s.ExpiresAt}
}
