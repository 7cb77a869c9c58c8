package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/http/response/html"
	"lightswitch.app/internal/logging"
)

const limiterTTL = 10 * time.Minute

// WithRateLimit throttles requests per client IP using a token bucket. The
// per-client limiters are kept in an expiring cache so idle clients don't
// accumulate.
func WithRateLimit(eventsPerSec float64, burst int) MiddlewareFunc {
	limiters := cache.New(limiterTTL, limiterTTL)

	fn := func(next http.Handler) http.Handler {
		return &RateLimit{
			limiters: limiters,
			rate:     rate.Limit(eventsPerSec),
			burst:    burst,
			next:     next,
		}
	}
	return fn
}

type RateLimit struct {
	limiters *cache.Cache
	rate     rate.Limit
	burst    int
	next     http.Handler
}

func (self *RateLimit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clientIP := request.ClientIP(r)
	if !self.limiter(clientIP).Allow() {
		logging.FromContext(r.Context()).Warn("client rate limited",
			slog.String("client_ip", clientIP))
		html.TooManyRequests(w, r)
		return
	}
	self.next.ServeHTTP(w, r)
}

func (self *RateLimit) limiter(clientIP string) *rate.Limiter {
	if l, ok := self.limiters.Get(clientIP); ok {
		return l.(*rate.Limiter)
	}
	l := rate.NewLimiter(self.rate, self.burst)
	self.limiters.SetDefault(clientIP, l)
	return l
}
