package entities

import "time"

// Session is an authenticated back office session.
type Session struct {
	Subject   string    `json:"subject"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	TokenID   string    `json:"-"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
