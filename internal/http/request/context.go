package request

import (
	"context"
	"net/http"

	"lightswitch.app/internal/model"
)

type (
	ctxClientIP struct{}
	ctxLocales  struct{}
	ctxSession  struct{}
)

var (
	clientIPKey ctxClientIP = struct{}{}
	localesKey  ctxLocales  = struct{}{}
	sessionKey  ctxSession  = struct{}{}
)

func WithSession(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// Session returns the cookie-backed session from the request context, or nil
// if absent.
func Session(r *http.Request) *model.Session {
	if s, ok := r.Context().Value(sessionKey).(*model.Session); ok {
		return s
	}
	return nil
}

// Theme returns the visitor's saved theme, or empty when unknown.
func Theme(r *http.Request) model.Theme {
	return Session(r).Theme()
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey).(string); ok && ip != "" {
		return ip
	}
	return FindRemoteIP(r)
}

func WithLocales(ctx context.Context, locales []string) context.Context {
	return context.WithValue(ctx, localesKey, locales)
}

// Locales returns the negotiated locale tags from the request context.
func Locales(r *http.Request) []string {
	if l, ok := r.Context().Value(localesKey).([]string); ok && len(l) != 0 {
		return l
	}
	return nil
}
