package middleware

import (
	"net/http"

	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/storage"
)

// WithSession decodes the signed theme cookie and attaches the resulting
// session to the request context. Decoding never fails: a missing or
// tampered cookie yields an empty session.
func WithSession(store *storage.Storage) MiddlewareFunc {
	fn := func(next http.Handler) http.Handler {
		return &Session{store: store, next: next}
	}
	return fn
}

type Session struct {
	store *storage.Storage
	next  http.Handler
}

func (self *Session) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := request.WithSession(r.Context(), self.store.Session(r))
	self.next.ServeHTTP(w, r.WithContext(ctx))
}
