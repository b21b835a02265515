package handler

import (
	"errors"
	"net/http"

	"github.com/dideey/alx-backend-user-data/internal/auth"
	"github.com/dideey/alx-backend-user-data/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the registration and session routes. Requests on the
// session routes resolve their cookie through the session authenticator.
type AuthHandler struct {
	auth     *auth.Service
	sessions *auth.SessionAuth
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{auth: svc, sessions: auth.NewSessionAuth(svc)}
}

// Index handles GET /.
func Index(c *gin.Context) {
	util.Message(c, http.StatusOK, "Bienvenue")
}

// Register handles POST /users with form fields email and password.
func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.auth.RegisterUser(email, password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "message": "user created"})
	case errors.Is(err, auth.ErrDuplicateUser):
		util.Message(c, http.StatusBadRequest, "email already registered")
	case errors.Is(err, auth.ErrInvalidArgument):
		util.Message(c, http.StatusBadRequest, "email and password are required")
	default:
		util.Message(c, http.StatusInternalServerError, "internal error")
	}
}

// Login handles POST /sessions. On success it sets the session_id cookie,
// with no expiry, and answers 200. Every credential failure is the same 401
// whether the email is unknown or the password wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if !h.auth.ValidLogin(email, password) {
		util.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sessionID, err := h.auth.CreateSession(email)
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	if sessionID == "" {
		util.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c.SetCookie(auth.SessionCookie, sessionID, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"email": email, "message": "logged in"})
}

// Logout handles DELETE /sessions. A request without a resolvable session
// cookie is 403; otherwise the session is destroyed and the client is
// redirected home.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, err := h.sessions.CurrentUser(c.Request)
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		util.Message(c, http.StatusForbidden, "Forbidden")
		return
	}

	if err := h.auth.DestroySession(user.ID); err != nil {
		util.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Profile handles GET /sessions, resolving the session cookie to the
// account's email.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.sessions.CurrentUser(c.Request)
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		util.Message(c, http.StatusForbidden, "Forbidden")
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}
