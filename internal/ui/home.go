package ui

import (
	"net/http"

	"lightswitch.app/internal/http/response"
	"lightswitch.app/internal/ui/view"
)

func (h *handler) showHomePage(w http.ResponseWriter, r *http.Request) {
	v := view.New(h.tpl, r)

	response.New(w, r).
		WithHeader("Content-Security-Policy", v.ContentSecurityPolicy()).
		WithHeader("Content-Type", "text/html; charset=utf-8").
		WithHeader("Cache-Control", "no-cache, max-age=0, must-revalidate, no-store").
		WithBody(v.Render("home")).
		Write()
}
