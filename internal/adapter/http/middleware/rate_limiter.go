package middleware

import (
	"net/http"
	"sync"

	"delivery_hub/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("RATE_LIMITED", "Muitas requisições. Tente novamente em instantes.", http.StatusTooManyRequests)

// RateLimiter enforces a per-client-IP token bucket. Limiters are kept for
// the process lifetime; the client population of a courier app install base
// is small enough that eviction is not worth the bookkeeping.
func RateLimiter(rps rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rps, burst)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
