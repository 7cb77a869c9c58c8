package cookie

import (
	"net/http"
	"time"

	"lightswitch.app/internal/config"
)

// CookieTheme is the cookie holding the signed theme session.
const CookieTheme = "__theme"

// The preference should outlive any reasonable session, so the cookie
// carries a far-future expiry instead of a max age.
var farFuture = time.Date(2098, time.January, 1, 0, 0, 0, 0, time.UTC)

func NewTheme(value string) *http.Cookie {
	c := makeCookie(CookieTheme, value)
	c.Expires = farFuture
	return c
}

func makeCookie(name, value string) *http.Cookie {
	path := config.BasePath()
	if path == "" {
		path = "/"
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Secure:   config.HTTPS(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredTheme returns an expired theme cookie.
func ExpiredTheme() *http.Cookie {
	c := makeCookie(CookieTheme, "")
	c.MaxAge = -1
	c.Expires = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	return c
}

// Merge appends the cookie's Set-Cookie value to the header map. A nil
// cookie returns headers untouched, same reference.
func Merge(headers http.Header, c *http.Cookie) http.Header {
	if c == nil {
		return headers
	}
	if headers == nil {
		headers = make(http.Header)
	}
	headers.Add("Set-Cookie", c.String())
	return headers
}
