package handlers

import (
	"net/http"

	"prep_tracker/internal/logger"
	"prep_tracker/internal/service"
	"prep_tracker/web"

	"github.com/gin-gonic/gin"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	loginLimiter *ipRateLimiter
}

// Config carries handler tuning knobs read from config at startup.
type Config struct {
	LoginRatePerMinute int // login POSTs allowed per client IP; 0 means default
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	return &Handler{
		services:     services,
		log:          log,
		loginLimiter: newIPRateLimiter(cfg.LoginRatePerMinute),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID)
	router.SetHTMLTemplate(web.Templates())

	// Health endpoint
	router.GET("/health", h.health)

	router.GET("/", h.home)

	h.registerAuthRoutes(router)
	h.registerTrackerRoutes(router)
	h.registerPlaceholderRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.getRegister)
	r.POST("/register", h.postRegister)
	r.GET("/login", h.getLogin)
	r.POST("/login", h.loginRateLimit, h.postLogin)
	r.GET("/logout", h.logout)
}

// Tracker routes require an authenticated session; the middleware redirects
// to /login before any service is called.
func (h *Handler) registerTrackerRoutes(r *gin.Engine) {
	tracked := r.Group("/", h.sessionMiddleware)
	{
		tracked.GET("/dashboard", h.dashboard)
		tracked.POST("/add_problem", h.addProblem)
		tracked.GET("/toggle_status/:id", h.toggleStatus)
		tracked.GET("/delete_problem/:id", h.deleteProblem)
	}
}

func (h *Handler) home(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
