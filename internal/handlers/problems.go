package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"prep_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgProblemFieldsRequired = "Topic and problem are required"
	msgLoadDashboardFailed   = "failed to load dashboard"
)

type problemForm struct {
	Topic   string `form:"topic" binding:"required"`
	Problem string `form:"problem" binding:"required"`
}

func (h *Handler) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	problems, err := h.services.List(ctx, user)
	if err != nil {
		h.failPage(c, "dashboard_list_failed", err)
		return
	}
	progress, err := h.services.Progress(ctx, user)
	if err != nil {
		h.failPage(c, "dashboard_progress_failed", err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Username": user,
		"Problems": problems,
		"Progress": progress,
		"Flash":    popFlash(c),
	})
}

func (h *Handler) addProblem(c *gin.Context) {
	var form problemForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, flashDanger, msgProblemFieldsRequired)
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	_, err := h.services.Add(c.Request.Context(), currentUser(c), form.Topic, form.Problem)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmptyField):
		setFlash(c, flashDanger, msgProblemFieldsRequired)
	default:
		if h.log != nil {
			h.log.Errorw("add_problem_failed", "err", err)
		}
		setFlash(c, flashDanger, msgInternal)
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// toggleStatus flips a problem's status. A foreign-owned, missing, or
// malformed id is a silent no-op so the redirect never leaks ids.
func (h *Handler) toggleStatus(c *gin.Context) {
	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		if err := h.services.ToggleStatus(c.Request.Context(), currentUser(c), id); err != nil {
			if h.log != nil {
				h.log.Errorw("toggle_status_failed", "err", err, "id", id)
			}
			setFlash(c, flashDanger, msgInternal)
		}
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) deleteProblem(c *gin.Context) {
	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		if err := h.services.Delete(c.Request.Context(), currentUser(c), id); err != nil {
			if h.log != nil {
				h.log.Errorw("delete_problem_failed", "err", err, "id", id)
			}
			setFlash(c, flashDanger, msgInternal)
		}
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// failPage logs a store-level failure and returns a generic error; the
// request is aborted, nothing is retried.
func (h *Handler) failPage(c *gin.Context, logKey string, err error) {
	if h.log != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.String(http.StatusInternalServerError, msgLoadDashboardFailed)
}
