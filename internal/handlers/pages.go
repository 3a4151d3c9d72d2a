package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Placeholder sections of the prep tracker that only render a stub page.
var placeholderPages = []struct {
	Path  string
	Title string
}{
	{"/dsa", "DSA"},
	{"/aptitude", "Aptitude"},
	{"/core", "Core Subjects"},
	{"/mock", "Mock Tests"},
	{"/progress", "Progress"},
}

func (h *Handler) registerPlaceholderRoutes(r *gin.Engine) {
	for _, page := range placeholderPages {
		r.GET(page.Path, h.comingSoon(page.Title))
	}
}

func (h *Handler) comingSoon(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "coming_soon.html", gin.H{"Title": title})
	}
}
