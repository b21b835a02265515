package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/dideey/alx-backend-user-data/internal/models"
	"github.com/dideey/alx-backend-user-data/internal/store"
	"github.com/dideey/alx-backend-user-data/internal/util"
)

// prefix of a Basic scheme Authorization header, case-sensitive
const basicPrefix = "Basic "

// ErrInvalidUTF8 is returned by DecodeSegment when the decoded bytes are not
// valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("decoded credentials are not valid UTF-8")

// BasicAuth resolves request identities from "Authorization: Basic" headers.
type BasicAuth struct {
	users *store.UserStore
}

var _ Authenticator = (*BasicAuth)(nil)

func NewBasicAuth(users *store.UserStore) *BasicAuth {
	return &BasicAuth{users: users}
}

// ExtractBase64Segment returns the Base64 part of a Basic Authorization
// header, i.e. everything after the literal "Basic " prefix. Headers with
// any other scheme, case, or spacing yield ok=false.
func ExtractBase64Segment(header string) (string, bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", false
	}
	return header[len(basicPrefix):], true
}

// DecodeSegment decodes a standard Base64 segment into UTF-8 text. The
// failure cause stays inspectable here; callers collapse it to "no identity"
// at the boundary.
func DecodeSegment(segment string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(segment)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}

// SplitCredentials splits decoded credentials on the FIRST colon only, so
// passwords may themselves contain ':'. The password may be empty; a string
// without any colon yields ok=false.
func SplitCredentials(decoded string) (email, password string, ok bool) {
	return strings.Cut(decoded, ":")
}

// ResolveUser looks up the user whose stored email exactly equals email and
// verifies password against the stored hash. Lookup misses and password
// mismatches both map to (nil, nil); only a store fault returns an error.
// When the store holds several rows for one email, the first row in natural
// order is the one checked.
func (a *BasicAuth) ResolveUser(email, password string) (*models.User, error) {
	if email == "" {
		return nil, nil
	}

	user, err := a.users.FindUserBy("email", email)
	if err != nil {
		if errors.Is(err, store.ErrNoResult) {
			return nil, nil
		}
		return nil, err
	}

	if !util.CheckPassword(password, user.HashedPassword) {
		return nil, nil
	}
	return user, nil
}

// RequireAuth implements Authenticator.
func (a *BasicAuth) RequireAuth(path string, excludedPaths []string) bool {
	return RequireAuth(path, excludedPaths)
}

// AuthorizationHeader implements Authenticator.
func (a *BasicAuth) AuthorizationHeader(r *http.Request) string {
	return AuthorizationHeader(r)
}

// HasCredentials reports whether the request carries an Authorization
// header at all, whatever its scheme.
func (a *BasicAuth) HasCredentials(r *http.Request) bool {
	return AuthorizationHeader(r) != ""
}

// CurrentUser chains header extraction, Base64 decoding, credential
// splitting and user resolution. A failure at any stage short-circuits to
// (nil, nil); no decoding fault ever reaches the caller.
func (a *BasicAuth) CurrentUser(r *http.Request) (*models.User, error) {
	segment, ok := ExtractBase64Segment(a.AuthorizationHeader(r))
	if !ok {
		return nil, nil
	}

	decoded, err := DecodeSegment(segment)
	if err != nil {
		return nil, nil
	}

	email, password, ok := SplitCredentials(decoded)
	if !ok {
		return nil, nil
	}

	return a.ResolveUser(email, password)
}
