// Package auth holds the request-admission middleware: per-client rate
// limiting keyed on remote IP. The chat API itself has no sessions or
// tokens; credentials travel in request bodies and are checked by the
// store access layer.
package auth

import (
	"net"
	"net/http"

	"chatkv/pkg/utils"
)

// SecConfig configures request admission.
type SecConfig struct {
	// RPS and Burst bound each remote IP's request rate. Zero values
	// fall back to permissive defaults.
	RPS   float64
	Burst int
	// Disabled turns the middleware into a passthrough (tests).
	Disabled bool
}

// RateLimitMiddleware rejects requests over the per-IP budget with 429.
func RateLimitMiddleware(cfg SecConfig) func(http.Handler) http.Handler {
	pool := &limiterPool{cfg: cfg}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Disabled {
				next.ServeHTTP(w, r)
				return
			}
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			if !pool.Allow(host) {
				utils.JSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
