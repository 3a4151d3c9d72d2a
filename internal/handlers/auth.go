package handlers

import (
	"errors"
	"net/http"

	"prep_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages. Login failures share one message on purpose: the
// response must not reveal whether the username or the password was wrong.
const (
	msgFieldsRequired     = "Username and password are required"
	msgUsernameExists     = "Username already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgRegistered         = "Registration successful! Please login."
	msgInternal           = "Something went wrong, please try again"
	msgTooManyAttempts    = "Too many login attempts, please wait a moment"
)

// Single, shared credentials payload for both register and login forms.
type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// renderForm renders an auth page. A nil flash falls back to the one-shot
// cookie left by a previous redirect.
func (h *Handler) renderForm(c *gin.Context, code int, page string, fl *flashMessage) {
	if fl == nil {
		fl = popFlash(c)
	}
	c.HTML(code, page, gin.H{"Flash": fl})
}

func (h *Handler) getRegister(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "register.html", nil)
}

func (h *Handler) postRegister(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "register.html", &flashMessage{flashDanger, msgFieldsRequired})
		return
	}

	_, err := h.services.SignUp(c.Request.Context(), form.Username, form.Password)
	switch {
	case err == nil:
		setFlash(c, flashSuccess, msgRegistered)
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, service.ErrDuplicateUsername):
		if h.log != nil {
			h.log.Infow("register_duplicate_username", "username", form.Username)
		}
		h.renderForm(c, http.StatusOK, "register.html", &flashMessage{flashDanger, msgUsernameExists})
	case errors.Is(err, service.ErrEmptyField):
		h.renderForm(c, http.StatusBadRequest, "register.html", &flashMessage{flashDanger, msgFieldsRequired})
	default:
		if h.log != nil {
			h.log.Errorw("register_failed", "err", err)
		}
		h.renderForm(c, http.StatusInternalServerError, "register.html", &flashMessage{flashDanger, msgInternal})
	}
}

func (h *Handler) getLogin(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "login.html", nil)
}

func (h *Handler) postLogin(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "login.html", &flashMessage{flashDanger, msgFieldsRequired})
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), form.Username, form.Password)
	switch {
	case err == nil:
		setSessionCookie(c, token)
		c.Redirect(http.StatusSeeOther, "/dashboard")
	case errors.Is(err, service.ErrInvalidCredentials):
		if h.log != nil {
			h.log.Infow("login_rejected", "username", form.Username)
		}
		h.renderForm(c, http.StatusUnauthorized, "login.html", &flashMessage{flashDanger, msgInvalidCredentials})
	default:
		if h.log != nil {
			h.log.Errorw("login_failed", "err", err)
		}
		h.renderForm(c, http.StatusInternalServerError, "login.html", &flashMessage{flashDanger, msgInternal})
	}
}

func (h *Handler) logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
