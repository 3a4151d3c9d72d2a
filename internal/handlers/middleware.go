package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session"
	usernameCtxKey    = "username"

	requestIDHeader = "X-Request-Id"
	requestIDCtxKey = "request_id"
)

// sessionMiddleware resolves the current user from the session cookie.
// Anything short of a valid token redirects to the login page; no service
// or store call happens for unauthenticated requests.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	username, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Debugw("session_token_rejected", "err", err)
		}
		clearSessionCookie(c)
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	c.Set(usernameCtxKey, username)
	c.Next()
}

// currentUser returns the username bound by sessionMiddleware.
func currentUser(c *gin.Context) string {
	return c.GetString(usernameCtxKey)
}

// setSessionCookie binds the signed token to the browser session. Expiry is
// enforced by the token itself, so the cookie carries no max-age.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// requestID tags every request with an id and logs the outcome.
func (h *Handler) requestID(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDCtxKey, id)
	c.Writer.Header().Set(requestIDHeader, id)

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
