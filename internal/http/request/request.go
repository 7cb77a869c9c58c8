package request

import (
	"net/http"
	"net/url"
)

// RouteStringParam returns a URL route parameter as a string.
func RouteStringParam(r *http.Request, param string) string {
	return r.PathValue(param)
}

// CookieValue returns the named cookie value, or empty if absent.
func CookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// RefererPath returns the path of the page the request came from, reduced to
// its path component so a forged Referer can never redirect off-site.
func RefererPath(r *http.Request) string {
	referer := r.Referer()
	if referer == "" {
		return "/"
	}

	u, err := url.Parse(referer)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}

// AcceptedLanguage returns the raw locale negotiation header. The original
// client sent it with a nonstandard name; Go's canonical header lookup makes
// the casing irrelevant.
func AcceptedLanguage(r *http.Request) string {
	return r.Header.Get("Accepted-Language")
}
