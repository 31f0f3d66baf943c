package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// Throttle is a middleware factory that applies a global token-bucket rate
// limit to the wrapped handler. Requests over the limit receive 429.
func Throttle(limiter *rate.Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("rate limit exceeded", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
