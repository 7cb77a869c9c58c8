// Package middleware contains the HTTP middlewares shared by every route.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"lightswitch.app/internal/config"
	"lightswitch.app/internal/http/mux"
	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/locale"
	"lightswitch.app/internal/logging"
)

type MiddlewareFunc = mux.MiddlewareFunc

// CrossOriginProtection rejects non-safe cross origin requests using the
// Sec-Fetch-Site and Origin headers.
func CrossOriginProtection() MiddlewareFunc {
	protection := http.NewCrossOriginProtection()
	return func(next http.Handler) http.Handler {
		return protection.Handler(next)
	}
}

func ClientIP(next http.Handler) http.Handler {
	trustedProxy := request.TrustedProxies(config.TrustedProxies())

	fn := func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Forwarded-Proto") == "https" {
			config.EnableHTTPS()
		}

		if config.HTTPS() && config.HasHSTS() {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000")
		}

		clientIP := request.FindClientIP(r, trustedProxy)
		ctx := request.WithClientIP(r.Context(), clientIP)

		startTime := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		methodURL := r.Method + " " + r.URL.String()
		logging.FromContext(ctx).Debug(methodURL,
			slog.String("client_ip", clientIP),
			slog.String("protocol", r.Proto),
			slog.Duration("execution_time", time.Since(startTime)))
	}
	return http.HandlerFunc(fn)
}

// WithLocales parses the Accepted-Language header once per request and stores
// the resulting tags in the request context.
func WithLocales(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		locales := locale.ParseHeader(request.AcceptedLanguage(r))
		ctx := request.WithLocales(r.Context(), locales)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
