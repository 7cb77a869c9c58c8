// Package session stages changes to the visitor's cookie session.
package session

import (
	"log/slog"
	"net/http"

	"lightswitch.app/internal/http/cookie"
	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/logging"
	"lightswitch.app/internal/model"
	"lightswitch.app/internal/storage"
)

func New(store *storage.Storage, r *http.Request) *Session {
	s := &Session{store: store}
	if sess := request.Session(r); sess != nil {
		s.data = sess.Data
	}
	return s
}

type Session struct {
	store *storage.Storage
	data  model.SessionData
	dirty bool
}

// SetTheme stages the visitor's theme. An empty theme clears the saved
// preference.
func (self *Session) SetTheme(theme model.Theme) *Session {
	self.data.Theme = theme
	self.dirty = true
	return self
}

// Commit signs the staged session into a cookie and merges it into the
// response headers. Nothing is written when no change was staged.
func (self *Session) Commit(w http.ResponseWriter, r *http.Request) {
	if !self.dirty {
		return
	}

	c, err := self.store.CommitSession(&self.data)
	if err != nil {
		logging.FromRequest(r).Error("unable commit session",
			slog.Any("error", err))
		return
	}
	cookie.Merge(w.Header(), c)
}
