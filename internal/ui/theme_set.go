package ui

import (
	"log/slog"
	"net/http"

	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/http/response/html"
	"lightswitch.app/internal/logging"
	"lightswitch.app/internal/metric"
	"lightswitch.app/internal/ui/form"
	"lightswitch.app/internal/ui/session"
)

// setTheme saves the visitor's theme choice into the signed cookie. Whatever
// the payload looks like the client ends up back on the page it came from,
// only a valid payload mutates the cookie.
func (h *handler) setTheme(w http.ResponseWriter, r *http.Request) {
	redirect := request.RefererPath(r)

	f, err := form.NewThemeForm(r)
	if err != nil {
		logging.FromRequest(r).Warn("rejected set-theme payload",
			slog.String("client_ip", request.ClientIP(r)),
			slog.Any("error", err))
		html.Redirect(w, r, redirect)
		return
	}

	theme := f.ParsedTheme()
	session.New(h.store, r).SetTheme(theme).Commit(w, r)
	metric.ThemeSwitchTotal.WithLabelValues(theme.String()).Inc()

	html.Redirect(w, r, redirect)
}
