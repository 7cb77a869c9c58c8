package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"lightswitch.app/internal/model"
)

func TestRefererPath(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{name: "absent", want: "/"},
		{name: "path only", referer: "/settings", want: "/settings"},
		{name: "absolute URL", referer: "https://example.com/a/b", want: "/a/b"},
		{
			name:    "foreign origin reduced to path",
			referer: "https://evil.example/phish",
			want:    "/phish",
		},
		{name: "origin without path", referer: "https://example.com", want: "/"},
		{name: "unparsable", referer: "http://%41:80", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/_actions/set-theme", nil)
			if tt.referer != "" {
				r.Header.Set("Referer", tt.referer)
			}
			assert.Equal(t, tt.want, RefererPath(r))
		})
	}
}

func TestCookieValue(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, CookieValue(r, "__theme"))

	r.AddCookie(&http.Cookie{Name: "__theme", Value: "abc"})
	assert.Equal(t, "abc", CookieValue(r, "__theme"))
}

func TestAcceptedLanguage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, AcceptedLanguage(r))

	// The original client used a nonstandard header name with this casing.
	r.Header.Set("accepted-language", "en-US,fr;q=0.8")
	assert.Equal(t, "en-US,fr;q=0.8", AcceptedLanguage(r))
}

func TestSessionTheme(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, Session(r))
	assert.Empty(t, Theme(r))

	s := &model.Session{Data: model.SessionData{Theme: model.ThemeDark}}
	r = r.WithContext(WithSession(r.Context(), s))
	assert.Same(t, s, Session(r))
	assert.Equal(t, model.ThemeDark, Theme(r))
}

func TestSessionContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, Session(r))
	assert.Empty(t, Theme(r), "a nil session reads as no theme")

	s := &model.Session{Data: model.SessionData{Theme: model.ThemeDark}}
	r = r.WithContext(WithSession(r.Context(), s))
	assert.Same(t, s, Session(r))
	assert.Equal(t, model.ThemeDark, Theme(r))
}

func TestLocalesContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, Locales(r))

	r = r.WithContext(WithLocales(r.Context(), []string{"fr-CA", "en-US"}))
	assert.Equal(t, []string{"fr-CA", "en-US"}, Locales(r))
}
