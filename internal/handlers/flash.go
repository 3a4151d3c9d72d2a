package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Flash messages survive exactly one redirect via a short-lived cookie.
// Re-renders within the same request pass the message directly instead.
const (
	flashCookieName = "flash"
	flashMaxAge     = 60 // seconds; stale flashes should not linger

	flashSuccess = "success"
	flashDanger  = "danger"
)

type flashMessage struct {
	Category string
	Message  string
}

// setFlash stores a one-shot message for the next rendered page.
func setFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookieName, category+"|"+message, flashMaxAge, "/", "", false, true)
}

// popFlash returns the pending flash from the request, clearing the cookie.
func popFlash(c *gin.Context) *flashMessage {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return &flashMessage{Category: flashDanger, Message: raw}
	}
	return &flashMessage{Category: category, Message: message}
}
