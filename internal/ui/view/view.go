// Package view wraps template argument building.
package view

import (
	"net/http"

	"lightswitch.app/internal/config"
	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/locale"
	"lightswitch.app/internal/model"
	"lightswitch.app/internal/template"
)

type View struct {
	tpl    *template.Engine
	r      *http.Request
	csp    *template.ContentSecurityPolicy
	params map[string]any
}

// New returns a new view with default parameters. A visitor without a saved
// theme gets the configured default theme, or no theme at all so the OS
// preference decides.
func New(tpl *template.Engine, r *http.Request) *View {
	theme := request.Theme(r)
	if !theme.Valid() {
		theme, _ = model.ParseTheme(config.DefaultTheme())
	}

	language := locale.DefaultLocale
	if locales := request.Locales(r); len(locales) != 0 {
		language = locales[0]
	}

	csp := template.NewContentSecurityPolicy()
	return &View{
		tpl: tpl,
		r:   r,
		csp: csp,
		params: map[string]any{
			"theme":        theme,
			"color_scheme": theme.ColorScheme(),
			"language":     language,
			"csp_nonce":    csp.Nonce(),
		},
	}
}

// Set adds a new template argument.
func (v *View) Set(param string, value any) *View {
	v.params[param] = value
	return v
}

// ContentSecurityPolicy returns the policy matching this view's nonce.
func (v *View) ContentSecurityPolicy() string { return v.csp.Content() }

// Render executes the template with arguments.
func (v *View) Render(template string) []byte {
	return v.tpl.Render(template+".html", v.params)
}
