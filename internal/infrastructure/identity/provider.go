package identity

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/intake"
	"nelly_tech/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// Claims are the JWT claims of an admin session.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Options struct {
	Secret string
	Issuer string
	TTL    time.Duration
	// SignInRate and SignInBurst bound sign-in attempts per admin account.
	// Unknown emails share a single limiter.
	SignInRate  rate.Limit
	SignInBurst int
}

// Provider authenticates admins from a static account list and issues HS256
// session tokens. Signed-out tokens are revoked in memory until they expire.
type Provider struct {
	admins map[string]AdminUser
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time

	// limiters is fixed at construction; rate.Limiter is safe for
	// concurrent use.
	limiters       map[string]*rate.Limiter
	unknownLimiter *rate.Limiter

	mu        sync.Mutex
	revoked   map[string]time.Time
	listeners []func(*entities.Session)
}

var _ interfaces.IIdentityProvider = (*Provider)(nil)

func NewProvider(admins []AdminUser, opts Options) *Provider {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.SignInRate == 0 {
		opts.SignInRate = rate.Every(time.Minute / 5)
	}
	if opts.SignInBurst <= 0 {
		opts.SignInBurst = 5
	}
	byEmail := make(map[string]AdminUser, len(admins))
	limiters := make(map[string]*rate.Limiter, len(admins))
	for _, a := range admins {
		byEmail[a.Email] = a
		limiters[a.Email] = rate.NewLimiter(opts.SignInRate, opts.SignInBurst)
	}
	return &Provider{
		admins:         byEmail,
		secret:         []byte(opts.Secret),
		issuer:         opts.Issuer,
		ttl:            opts.TTL,
		now:            time.Now,
		limiters:       limiters,
		unknownLimiter: rate.NewLimiter(opts.SignInRate, opts.SignInBurst),
		revoked:        make(map[string]time.Time),
	}
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	if !intake.IsValidEmail(email) {
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthInvalidEmail}
	}
	if !p.limiter(email).AllowN(p.now(), 1) {
		log.Printf("[identity] sign-in throttled email=%s", email)
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthTooManyRequests}
	}

	admin, ok := p.admins[email]
	if !ok {
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthInvalidCredential}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthInvalidCredential}
		}
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthUnknown, Err: err}
	}

	s, err := p.issue(admin)
	if err != nil {
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthUnknown, Err: err}
	}
	p.notify(&s)
	return s, nil
}

func (p *Provider) issue(admin AdminUser) (entities.Session, error) {
	now := p.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(p.ttl)
	claims := Claims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   admin.Email,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return entities.Session{}, err
	}
	return entities.Session{
		Subject:   admin.Email,
		Email:     admin.Email,
		Token:     token,
		TokenID:   claims.ID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// SignOut revokes token. Signing out an already invalid token is not an error.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	s, err := p.parse(token)
	if err != nil {
		return nil
	}
	p.mu.Lock()
	p.pruneRevokedLocked()
	p.revoked[s.TokenID] = s.ExpiresAt
	p.mu.Unlock()

	p.notify(nil)
	return nil
}

func (p *Provider) Verify(ctx context.Context, token string) (entities.Session, error) {
	s, err := p.parse(token)
	if err != nil {
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthInvalidCredential, Err: err}
	}
	p.mu.Lock()
	_, revoked := p.revoked[s.TokenID]
	p.mu.Unlock()
	if revoked {
		return entities.Session{}, &interfaces.AuthError{Code: interfaces.AuthInvalidCredential, Err: errors.New("token revoked")}
	}
	return s, nil
}

func (p *Provider) parse(token string) (entities.Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return entities.Session{}, err
	}
	if !parsed.Valid || claims.ID == "" {
		return entities.Session{}, errors.New("invalid token")
	}
	return entities.Session{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Token:     token,
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// OnSessionChange registers fn; it is called with the session on sign-in and
// with nil on sign-out.
func (p *Provider) OnSessionChange(fn func(*entities.Session)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *Provider) notify(s *entities.Session) {
	p.mu.Lock()
	listeners := append([]func(*entities.Session){}, p.listeners...)
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(s)
	}
}

func (p *Provider) limiter(email string) *rate.Limiter {
	if l, ok := p.limiters[email]; ok {
		return l
	}
	return p.unknownLimiter
}

func (p *Provider) pruneRevokedLocked() {
	now := p.now()
	for id, exp := range p.revoked {
		if now.After(exp) {
			delete(p.revoked, id)
		}
	}
}
