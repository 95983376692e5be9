package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

type CallerLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewCallerRateLimiter(r rate.Limit, b int) *CallerLimiter {
	return &CallerLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (c *CallerLimiter) getLimiter(key string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	limiter, exists := c.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(c.r, c.b)
		c.limiters[key] = limiter
	}
	return limiter
}

// RateLimitMiddleware throttles per authenticated officer, falling
// back to the caller IP for unauthenticated requests.
func RateLimitMiddleware(limiter *CallerLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var key string
			if officerID, ok := GetOfficerID(r.Context()); ok {
				key = "officer:" + fmt.Sprint(officerID)
			} else {
				ip, _, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil {
					ip = r.RemoteAddr
				}
				key = "ip:" + ip
			}

			if !limiter.getLimiter(key).Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
