package middleware

import (
	"net/http"

	"github.com/dideey/alx-backend-user-data/internal/auth"
	"github.com/dideey/alx-backend-user-data/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the authenticated user.
const CurrentUserKey = "currentUser"

// RequireAuth guards a route group with the given authentication scheme.
// Paths matching the exclusion list pass through untouched; every other
// request must resolve to a user, which is put in the context for handlers.
//
// Failures stay uniform on purpose: a request without any credential is 401
// and an unresolvable credential is 403, with no hint whether the email,
// password or encoding was the problem. What counts as "no credential" is
// the authenticator's call, not this guard's.
func RequireAuth(a auth.Authenticator, excludedPaths []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.RequireAuth(c.Request.URL.Path, excludedPaths) {
			c.Next()
			return
		}

		if !a.HasCredentials(c.Request) {
			util.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := a.CurrentUser(c.Request)
		if err != nil {
			util.AbortMessage(c, http.StatusInternalServerError, "internal error")
			return
		}
		if user == nil {
			util.AbortMessage(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
