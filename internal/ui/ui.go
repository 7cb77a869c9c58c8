// Package ui implements the pages and actions of the theme switcher.
package ui

import (
	"lightswitch.app/internal/config"
	hmw "lightswitch.app/internal/http/middleware"
	"lightswitch.app/internal/http/mux"
	"lightswitch.app/internal/storage"
	"lightswitch.app/internal/template"
)

// Serve declares all routes for the user interface.
func Serve(m *mux.ServeMux, store *storage.Storage) {
	templateEngine := template.NewEngine(m)
	if err := templateEngine.ParseTemplates(); err != nil {
		panic(err)
	}

	h := &handler{
		router: m,
		store:  store,
		tpl:    templateEngine,
	}

	// Static assets.
	m.Group(func(m *mux.ServeMux) {
		m.NameHandleFunc("/css/{name}", h.showStylesheet, "stylesheet").
			NameHandleFunc("/js/{name}", h.showJavascript, "javascript").
			HandleFunc("/robots.txt", robotsTxt)
	})

	m = m.Group().Use(hmw.CrossOriginProtection(), hmw.WithLocales,
		hmw.WithSession(store))
	m.NameHandleFunc("GET /{$}", h.showHomePage, "home")

	eventsPerSec, burst := config.ActionRateLimit()
	m.Group().Use(hmw.WithRateLimit(eventsPerSec, burst)).
		NameHandleFunc("POST /_actions/set-theme", h.setTheme, "setTheme")
}
