package limiter

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter defines a token bucket request limiter shared by the gRPC
// interceptor and the HTTP middleware.
type Limiter struct {
	logger *zap.Logger
	l      *rate.Limiter
}

// New creates a limiter allowing limit requests per second with the given burst.
func New(logger *zap.Logger, limit, burst int) *Limiter {
	return &Limiter{logger: logger, l: rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit reports whether the current request must be rejected.
func (l *Limiter) Limit() bool {
	allowed := l.l.Allow()
	l.logger.Debug("Rate limit check",
		zap.Bool("allowed", allowed),
		zap.Float64("limit", float64(l.l.Limit())),
		zap.Int("burst", l.l.Burst()),
	)
	return !allowed
}

// Middleware rejects requests with 429 once the limit is exceeded.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.Limit() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
