// Package storage reads and writes the visitor's session. The only
// persistence in this application is the signed theme cookie itself, so the
// store is a codec around it rather than a database.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"lightswitch.app/internal/http/cookie"
	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/http/securecookie"
	"lightswitch.app/internal/logging"
	"lightswitch.app/internal/model"
)

// New returns a session store signing cookies with the given secrets, newest
// first.
func New(secrets ...string) (*Storage, error) {
	signer, err := securecookie.New(secrets...)
	if err != nil {
		return nil, err
	}
	return &Storage{signer: signer}, nil
}

type Storage struct {
	signer *securecookie.Signer
}

// Session builds the visitor's session from the incoming cookie header. It
// never fails: a missing, unverifiable or malformed cookie yields an empty
// session, and an invalid stored theme reads as unset.
func (self *Storage) Session(r *http.Request) *model.Session {
	s := new(model.Session)

	value := request.CookieValue(r, cookie.CookieTheme)
	if value == "" {
		return s
	}

	payload, err := self.signer.Verify(value)
	if err != nil {
		logging.FromRequest(r).Debug("storage: discarding theme cookie",
			slog.Any("error", err))
		return s
	}

	if err := json.Unmarshal(payload, &s.Data); err != nil {
		logging.FromRequest(r).Debug(
			"storage: discarding undecodable theme cookie",
			slog.Any("error", err))
		return &model.Session{}
	}

	if !s.Data.Theme.Valid() {
		s.Data.Theme = ""
	}
	return s
}

// Ready verifies the cookie signer round-trips, used by the readiness
// probe.
func (self *Storage) Ready() error {
	probe := []byte(`{"probe":true}`)
	if _, err := self.signer.Verify(self.signer.Sign(probe)); err != nil {
		return fmt.Errorf("storage: signer self-check: %w", err)
	}
	return nil
}

// CommitSession serializes and signs the session data into a theme cookie
// ready to attach as Set-Cookie. Committing without a theme expires the
// cookie instead.
func (self *Storage) CommitSession(data *model.SessionData) (*http.Cookie,
	error,
) {
	if !data.Theme.Valid() {
		return cookie.ExpiredTheme(), nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("storage: marshal session data: %w", err)
	}
	return cookie.NewTheme(self.signer.Sign(payload)), nil
}
