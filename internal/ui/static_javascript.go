package ui

import (
	"net/http"
	"time"

	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/http/response"
	"lightswitch.app/internal/http/response/html"
	"lightswitch.app/internal/ui/static"
)

func (h *handler) showJavascript(w http.ResponseWriter, r *http.Request) {
	filename := request.RouteStringParam(r, "name")
	body := static.JavascriptBundle(filename)
	if body == nil {
		html.NotFound(w, r)
		return
	}

	etag := static.JavascriptBundleChecksums[filename]
	response.New(w, r).WithCaching(etag, 48*time.Hour,
		func(b *response.Builder) {
			b.WithLongCaching().
				WithHeader("Content-Type", "text/javascript; charset=utf-8").
				WithBody(body).
				Write()
		})
}
