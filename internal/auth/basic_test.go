package auth

import (
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestExtractBase64Segment(t *testing.T) {
	for _, header := range []string{
		"",
		"Basic",
		"basic dXNlcjpwdw==",
		"BASIC dXNlcjpwdw==",
		"Bearer dXNlcjpwdw==",
		"Basicx",
	} {
		if got, ok := ExtractBase64Segment(header); ok {
			t.Errorf("ExtractBase64Segment(%q) = (%q, true), want ok=false", header, got)
		}
	}

	// everything after the prefix comes back verbatim
	for _, segment := range []string{"dXNlcjpwdw==", "", " padded", "not base64 at all"} {
		got, ok := ExtractBase64Segment("Basic " + segment)
		if !ok || got != segment {
			t.Errorf("ExtractBase64Segment(%q) = (%q, %v), want (%q, true)", "Basic "+segment, got, ok, segment)
		}
	}
}

func TestDecodeSegment(t *testing.T) {
	original := "user@example.com:pässwörd"
	decoded, err := DecodeSegment(base64.StdEncoding.EncodeToString([]byte(original)))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeSegment_InvalidBase64(t *testing.T) {
	for _, segment := range []string{"!!!not-base64!!!", "dXNlcjpwdw", "a"} {
		_, err := DecodeSegment(segment)
		assert.Error(t, err, "segment %q", segment)
	}
}

func TestDecodeSegment_InvalidUTF8(t *testing.T) {
	segment := base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd})
	_, err := DecodeSegment(segment)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestSplitCredentials(t *testing.T) {
	tests := []struct {
		decoded  string
		email    string
		password string
		ok       bool
	}{
		{"user@example.com:pw", "user@example.com", "pw", true},
		{"user@example.com:p:a:ss", "user@example.com", "p:a:ss", true},
		{"user@example.com:", "user@example.com", "", true},
		{":pw", "", "pw", true},
		{"no colon here", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		email, password, ok := SplitCredentials(tt.decoded)
		if email != tt.email || password != tt.password || ok != tt.ok {
			t.Errorf("SplitCredentials(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.decoded, email, password, ok, tt.email, tt.password, tt.ok)
		}
	}
}

func TestResolveUser(t *testing.T) {
	users := newTestStore(t)
	svc := NewService(users, bcrypt.MinCost)
	registered, err := svc.RegisterUser("a@b.com", "pw1")
	require.NoError(t, err)

	basic := NewBasicAuth(users)

	user, err := basic.ResolveUser("a@b.com", "pw1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)

	for _, tt := range []struct{ email, password string }{
		{"a@b.com", "wrong"},
		{"nobody@b.com", "pw1"},
		{"", "pw1"},
		{"a@b.com", ""},
	} {
		user, err := basic.ResolveUser(tt.email, tt.password)
		require.NoError(t, err)
		assert.Nil(t, user, "ResolveUser(%q, %q)", tt.email, tt.password)
	}
}

func TestBasicAuth_CurrentUser(t *testing.T) {
	users := newTestStore(t)
	svc := NewService(users, bcrypt.MinCost)
	_, err := svc.RegisterUser("a@b.com", "pw1")
	require.NoError(t, err)

	basic := NewBasicAuth(users)

	header := func(creds string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
	}

	r := httptest.NewRequest("GET", "/api/v1/users/me", nil)
	r.Header.Set("Authorization", header("a@b.com:pw1"))
	user, err := basic.CurrentUser(r)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)

	// every malformed or mismatched stage collapses to no identity
	for name, value := range map[string]string{
		"no header":      "",
		"wrong scheme":   "Bearer abc",
		"bad base64":     "Basic !!!",
		"no colon":       "Basic " + base64.StdEncoding.EncodeToString([]byte("nocolon")),
		"wrong password": header("a@b.com:wrong"),
		"unknown user":   header("nobody@b.com:pw1"),
	} {
		r := httptest.NewRequest("GET", "/api/v1/users/me", nil)
		if value != "" {
			r.Header.Set("Authorization", value)
		}
		user, err := basic.CurrentUser(r)
		require.NoError(t, err, name)
		assert.Nil(t, user, name)
	}
}

func TestBasicAuth_HasCredentials(t *testing.T) {
	basic := NewBasicAuth(newTestStore(t))

	r := httptest.NewRequest("GET", "/", nil)
	assert.False(t, basic.HasCredentials(r))

	// any Authorization header counts as a credential, resolvable or not
	r.Header.Set("Authorization", "Bearer whatever")
	assert.True(t, basic.HasCredentials(r))
}

func TestAuthorizationHeader(t *testing.T) {
	assert.Empty(t, AuthorizationHeader(nil))

	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, AuthorizationHeader(r))

	r.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "Basic abc", AuthorizationHeader(r))
}
