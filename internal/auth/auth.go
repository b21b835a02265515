package auth

import (
	"net/http"

	"github.com/dideey/alx-backend-user-data/internal/models"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session_id"

// Authenticator is the capability a protected route group needs from an
// authentication scheme: decide whether a path is protected at all, read the
// raw Authorization header, tell whether the request carries the scheme's
// credential at all, and resolve the request to a user.
//
// HasCredentials is what separates 401 from 403 at the guard: a request
// without any credential is unauthorized, a request whose credential does
// not resolve is forbidden. CurrentUser returns (nil, nil) for every
// malformed or unresolvable credential; a non-nil error means the store
// itself failed.
type Authenticator interface {
	RequireAuth(path string, excludedPaths []string) bool
	AuthorizationHeader(r *http.Request) string
	HasCredentials(r *http.Request) bool
	CurrentUser(r *http.Request) (*models.User, error)
}

// AuthorizationHeader reads the Authorization header from a request.
// Absent header or nil request yields the empty string.
func AuthorizationHeader(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get("Authorization")
}
