package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dideey/alx-backend-user-data/internal/models"
	"github.com/dideey/alx-backend-user-data/internal/store"
	"github.com/dideey/alx-backend-user-data/internal/util"

	"github.com/google/uuid"
)

var (
	// ErrInvalidArgument rejects registration with an empty email or password.
	ErrInvalidArgument = errors.New("email and password are required")
	// ErrDuplicateUser signals that the email is already registered. It is
	// the one auth failure the route layer must tell apart from the rest.
	ErrDuplicateUser = errors.New("email already registered")
)

// Service implements the session-based authentication lifecycle over the
// user store: registration, login validation, session issue and destroy.
//
// A user holds at most one live session, kept in the session_id column.
// Creating a session overwrites any prior token; the old token becomes
// permanently unresolvable. Tokens carry no expiry.
type Service struct {
	users      *store.UserStore
	bcryptCost int
}

func NewService(users *store.UserStore, bcryptCost int) *Service {
	return &Service{users: users, bcryptCost: bcryptCost}
}

// RegisterUser creates a new account with a freshly salted password hash.
// The duplicate check runs before the insert; the unique index on email is
// the backstop for two registrations racing past it.
func (s *Service) RegisterUser(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidArgument
	}

	_, err := s.users.FindUserBy("email", email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("user %s: %w", email, ErrDuplicateUser)
	case !errors.Is(err, store.ErrNoResult):
		return nil, err
	}

	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.users.AddUser(email, hash)
}

// ValidLogin reports whether the email/password pair matches a stored
// account. Unknown emails and wrong passwords are both plain false.
func (s *Service) ValidLogin(email, password string) bool {
	user, err := s.users.FindUserBy("email", email)
	if err != nil {
		return false
	}
	return util.CheckPassword(password, user.HashedPassword)
}

// CreateSession issues a new session token for the user registered under
// email and stores it on the row, replacing any prior token. An unknown
// email yields the empty token.
func (s *Service) CreateSession(email string) (string, error) {
	user, err := s.users.FindUserBy("email", email)
	if err != nil {
		if errors.Is(err, store.ErrNoResult) {
			return "", nil
		}
		return "", err
	}

	sessionID := uuid.NewString()
	if err := s.users.UpdateUser(user.ID, map[string]interface{}{"session_id": sessionID}); err != nil {
		return "", err
	}
	return sessionID, nil
}

// GetUserFromSessionID resolves a session token to its user. An empty or
// unknown token is an expected miss, returned as (nil, nil).
func (s *Service) GetUserFromSessionID(sessionID string) (*models.User, error) {
	if sessionID == "" {
		return nil, nil
	}

	user, err := s.users.FindUserBy("session_id", sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNoResult) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// DestroySession clears the user's session token. Destroying an absent
// session is not an error, and a zero user id is a no-op.
func (s *Service) DestroySession(userID uint) error {
	if userID == 0 {
		return nil
	}
	return s.users.UpdateUser(userID, map[string]interface{}{"session_id": nil})
}

// SessionAuth resolves request identities from the session_id cookie.
type SessionAuth struct {
	svc *Service
}

var _ Authenticator = (*SessionAuth)(nil)

func NewSessionAuth(svc *Service) *SessionAuth {
	return &SessionAuth{svc: svc}
}

// RequireAuth implements Authenticator.
func (a *SessionAuth) RequireAuth(path string, excludedPaths []string) bool {
	return RequireAuth(path, excludedPaths)
}

// AuthorizationHeader implements Authenticator.
func (a *SessionAuth) AuthorizationHeader(r *http.Request) string {
	return AuthorizationHeader(r)
}

// HasCredentials reports whether the request carries a session cookie at
// all, valid or not.
func (a *SessionAuth) HasCredentials(r *http.Request) bool {
	if r == nil {
		return false
	}
	_, err := r.Cookie(SessionCookie)
	return err == nil
}

// CurrentUser resolves the session cookie to a user. A missing cookie is an
// ordinary unauthenticated request, not an error.
func (a *SessionAuth) CurrentUser(r *http.Request) (*models.User, error) {
	if r == nil {
		return nil, nil
	}
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, nil
	}
	return a.svc.GetUserFromSessionID(cookie.Value)
}
