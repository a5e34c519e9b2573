package identity

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminEmail = "admin@nellytech.com"

func testProvider(t *testing.T) (*Provider, *time.Time) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	clock := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	p := NewProvider([]AdminUser{{Email: adminEmail, PasswordHash: string(hash)}}, Options{
		Secret:      "test-secret",
		Issuer:      "nelly-tech",
		TTL:         time.Hour,
		SignInBurst: 3,
	})
	p.now = func() time.Time { return clock }
	return p, &clock
}

func expectAuthCode(t *testing.T, err error, want interfaces.AuthErrorCode) {
	t.Helper()
	var ae *interfaces.AuthError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AuthError, got %v", err)
	}
	if ae.Code != want {
		t.Fatalf("expected code %v, got %v", want, ae.Code)
	}
}

func signIn(t *testing.T, p *Provider) entities.Session {
	t.Helper()
	s, err := p.SignIn(context.Background(), adminEmail, "senha-forte")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return s
}

func TestProvider_SignInAndVerify(t *testing.T) {
	p, clock := testProvider(t)

	var events []*entities.Session
	p.OnSessionChange(func(s *entities.Session) { events = append(events, s) })

	s := signIn(t, p)
	if s.Email != adminEmail || s.Token == "" || s.TokenID == "" {
		t.Fatalf("unexpected session %+v", s)
	}
	if !s.ExpiresAt.Equal(clock.Add(time.Hour)) {
		t.Fatalf("expected expiry %v, got %v", clock.Add(time.Hour), s.ExpiresAt)
	}
	if len(events) != 1 || events[0] == nil || events[0].Email != s.Email {
		t.Fatalf("expected one sign-in event, got %v", events)
	}

	verified, err := p.Verify(context.Background(), s.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.TokenID != s.TokenID || verified.Subject != adminEmail {
		t.Fatalf("unexpected verified session %+v", verified)
	}
}

func TestProvider_SignInFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid email", func(t *testing.T) {
		p, _ := testProvider(t)
		_, err := p.SignIn(ctx, "admin", "x")
		expectAuthCode(t, err, interfaces.AuthInvalidEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		p, _ := testProvider(t)
		_, err := p.SignIn(ctx, adminEmail, "errada")
		expectAuthCode(t, err, interfaces.AuthInvalidCredential)
	})

	t.Run("unknown account", func(t *testing.T) {
		p, _ := testProvider(t)
		_, err := p.SignIn(ctx, "other@nellytech.com", "senha-forte")
		expectAuthCode(t, err, interfaces.AuthInvalidCredential)
	})

	t.Run("too many attempts", func(t *testing.T) {
		p, clock := testProvider(t)
		for i := 0; i < 3; i++ {
			_, err := p.SignIn(ctx, adminEmail, "errada")
			expectAuthCode(t, err, interfaces.AuthInvalidCredential)
		}
		_, err := p.SignIn(ctx, adminEmail, "senha-forte")
		expectAuthCode(t, err, interfaces.AuthTooManyRequests)

		*clock = clock.Add(time.Minute)
		if _, err := p.SignIn(ctx, adminEmail, "senha-forte"); err != nil {
			t.Fatalf("limiter must refill over time: %v", err)
		}
	})
}

func TestProvider_UnknownEmailsShareOneLimiter(t *testing.T) {
	p, _ := testProvider(t)
	ctx := context.Background()

	throttled := 0
	for i := 0; i < 10000; i++ {
		_, err := p.SignIn(ctx, fmt.Sprintf("u%d@x.io", i), "x")
		var ae *interfaces.AuthError
		if errors.As(err, &ae) && ae.Code == interfaces.AuthTooManyRequests {
			throttled++
		}
	}

	if len(p.limiters) != 1 {
		t.Fatalf("limiters must stay bounded by the admin list, got %d", len(p.limiters))
	}
	if throttled != 10000-3 {
		t.Fatalf("expected unknown emails to share the burst, got %d throttled", throttled)
	}

	// Admin sign-in is unaffected by the flood.
	signIn(t, p)
}

func TestProvider_SignOutRevokes(t *testing.T) {
	p, _ := testProvider(t)
	ctx := context.Background()
	var events []*entities.Session
	p.OnSessionChange(func(s *entities.Session) { events = append(events, s) })

	s := signIn(t, p)

	if err := p.SignOut(ctx, s.Token); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	_, err := p.Verify(ctx, s.Token)
	expectAuthCode(t, err, interfaces.AuthInvalidCredential)
	if len(events) != 2 || events[1] != nil {
		t.Fatalf("expected a nil sign-out event, got %v", events)
	}

	if err := p.SignOut(ctx, "garbage"); err != nil {
		t.Fatalf("signing out an invalid token must not fail: %v", err)
	}
}

func TestProvider_VerifyRejects(t *testing.T) {
	p, clock := testProvider(t)
	ctx := context.Background()
	s := signIn(t, p)

	t.Run("expired", func(t *testing.T) {
		saved := *clock
		*clock = clock.Add(2 * time.Hour)
		defer func() { *clock = saved }()
		_, err := p.Verify(ctx, s.Token)
		expectAuthCode(t, err, interfaces.AuthInvalidCredential)
	})

	t.Run("other secret", func(t *testing.T) {
		claims := Claims{
			Email: adminEmail,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				Issuer:    "nelly-tech",
				ExpiresAt: jwt.NewNumericDate(clock.Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		_, err = p.Verify(ctx, forged)
		expectAuthCode(t, err, interfaces.AuthInvalidCredential)
	})

	t.Run("other issuer", func(t *testing.T) {
		other := NewProvider(nil, Options{Secret: "test-secret", Issuer: "someone-else"})
		other.now = p.now
		_, err := other.Verify(ctx, s.Token)
		expectAuthCode(t, err, interfaces.AuthInvalidCredential)
	})
}
