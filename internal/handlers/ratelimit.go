package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const defaultLoginRatePerMinute = 10

// ipRateLimiter keeps one token bucket per client IP. Only the login POST is
// limited; read paths and registration stay unthrottled.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(perMinute int) *ipRateLimiter {
	if perMinute <= 0 {
		perMinute = defaultLoginRatePerMinute
	}
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

func (h *Handler) loginRateLimit(c *gin.Context) {
	if h.loginLimiter.allow(c.ClientIP()) {
		c.Next()
		return
	}
	if h.log != nil {
		h.log.Warnw("login_rate_limited", "ip", c.ClientIP())
	}
	h.renderForm(c, http.StatusTooManyRequests, "login.html", &flashMessage{flashDanger, msgTooManyAttempts})
	c.Abort()
}
