package session

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"travelplans/constants"
	"travelplans/models/user"
	"travelplans/store"

	"github.com/golang-jwt/jwt/v5"
)

// State is the authentication state of a session.
type State string

const (
	StateUnauthenticated State = "Unauthenticated"
	StateAuthenticating  State = "Authenticating"
	StateAuthenticated   State = "Authenticated"
	StateFailed          State = "Failed"
)

// TokenTTL matches the access-cookie lifetime.
const TokenTTL = 8 * time.Hour

// ErrInvalidCredentials carries the one generic message surfaced for every
// login failure. Unknown email and wrong password are indistinguishable on
// purpose, so accounts cannot be enumerated.
var ErrInvalidCredentials = errors.New("Invalid email or password")

// Service validates credentials against the store's user table and issues
// session tokens. It tracks the state machine
// Unauthenticated -> Authenticating -> Authenticated | Failed explicitly.
type Service struct {
	mu        sync.Mutex
	state     State
	principal *user.User

	store    *store.Store
	secret   []byte
	password string
}

// New builds a session service. JWT_SECRET and DEMO_PASSWORD come from the
// environment; the demo password falls back to the shared default.
func New(s *store.Store) *Service {
	password := os.Getenv(constants.EnvDemoPassword)
	if password == "" {
		password = constants.DefaultDemoPassword
	}
	return &Service{
		state:    StateUnauthenticated,
		store:    s,
		secret:   []byte(os.Getenv(constants.EnvJWTSecret)),
		password: password,
	}
}

// State returns the current session state.
func (svc *Service) State() State {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.state
}

// Principal returns the authenticated user, if any.
func (svc *Service) Principal() (user.User, bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.principal == nil {
		return user.User{}, false
	}
	return *svc.principal, true
}

// Login matches the email case-insensitively against the user table and
// the password against the shared demo credential. On success the matching
// user becomes the principal and a signed token is returned. Every failure
// path yields the same generic error. No lockout, no rate limiting, no
// hashing: this is the demo credential model, not a production scheme.
func (svc *Service) Login(ctx context.Context, email, password string) (user.User, string, error) {
	svc.mu.Lock()
	svc.state = StateAuthenticating
	svc.mu.Unlock()

	principal, found := svc.store.FindUserByEmail(email)
	if !found || password != svc.password || principal.Status == user.StatusSuspended {
		svc.mu.Lock()
		svc.state = StateFailed
		svc.principal = nil
		svc.mu.Unlock()
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := svc.IssueToken(principal)
	if err != nil {
		svc.mu.Lock()
		svc.state = StateFailed
		svc.principal = nil
		svc.mu.Unlock()
		return user.User{}, "", err
	}

	svc.mu.Lock()
	svc.state = StateAuthenticated
	svc.principal = &principal
	svc.mu.Unlock()
	return principal, token, nil
}

// Logout clears the principal and returns to Unauthenticated. The HTTP
// layer is responsible for expiring the session cookie.
func (svc *Service) Logout() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.state = StateUnauthenticated
	svc.principal = nil
}

// IssueToken signs an HS256 session token for the user.
func (svc *Service) IssueToken(u user.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"name":  u.Name,
		"roles": u.RoleStrings(),
		"exp":   time.Now().Add(TokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(svc.secret)
}
