package template

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightswitch.app/internal/http/mux"
	"lightswitch.app/internal/model"
	"lightswitch.app/internal/ui/static"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	require.NoError(t, static.CalculateBundleChecksums(t.Context()))

	noop := func(http.ResponseWriter, *http.Request) {}
	m := mux.New()
	m.NameHandleFunc("GET /{$}", noop, "home").
		NameHandleFunc("POST /_actions/set-theme", noop, "setTheme").
		NameHandleFunc("/css/{name}", noop, "stylesheet").
		NameHandleFunc("/js/{name}", noop, "javascript")

	e := NewEngine(m)
	require.NoError(t, e.ParseTemplates())
	return e
}

func renderHome(e *Engine, theme model.Theme) string {
	return string(e.Render("home.html", map[string]any{
		"theme":        theme,
		"color_scheme": theme.ColorScheme(),
		"language":     "en-US",
		"csp_nonce":    "test-nonce",
	}))
}

func TestEngine_renderWithoutTheme(t *testing.T) {
	body := renderHome(newTestEngine(t), "")

	assert.Contains(t, body, `content="light dark"`)
	assert.Contains(t, body, "prefers-color-scheme",
		"bootstrap script expected when no theme was saved")
	assert.Contains(t, body, `meta[name="color-scheme"]`,
		"bootstrap script must rewrite the color-scheme meta too")
	assert.NotContains(t, body, "data-theme=")
	assert.NotContains(t, body, "data-theme-saved")
	assert.Contains(t, body, `data-set-theme-url="/_actions/set-theme"`)
}

func TestEngine_renderSavedTheme(t *testing.T) {
	body := renderHome(newTestEngine(t), model.ThemeDark)

	assert.Contains(t, body, `data-theme="dark"`)
	assert.Contains(t, body, `content="dark"`)
	assert.Contains(t, body, "data-theme-saved")
	assert.NotContains(t, body, "prefers-color-scheme",
		"a saved theme must render without the bootstrap script")
	assert.Contains(t, body, `aria-pressed="true"`)
}

func TestEngine_renderUnknownTemplate(t *testing.T) {
	e := newTestEngine(t)
	assert.Panics(t, func() { e.Render("missing.html", nil) })
}

func TestContentSecurityPolicy(t *testing.T) {
	csp := NewContentSecurityPolicy()
	require.NotEmpty(t, csp.Nonce())

	content := csp.Content()
	assert.Contains(t, content, "default-src 'none';")
	assert.Contains(t, content, "'nonce-"+csp.Nonce()+"'")

	other := NewContentSecurityPolicy()
	assert.NotEqual(t, csp.Nonce(), other.Nonce())
}
