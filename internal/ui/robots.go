package ui

import (
	"net/http"

	"lightswitch.app/internal/http/response"
)

func robotsTxt(w http.ResponseWriter, r *http.Request) {
	response.New(w, r).
		WithHeader("Content-Type", "text/plain").
		WithBody("User-agent: *\nDisallow: /").
		Write()
}
