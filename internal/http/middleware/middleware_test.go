package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightswitch.app/internal/config"
	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/metric"
	"lightswitch.app/internal/model"
	"lightswitch.app/internal/storage"
)

func TestRequestId(t *testing.T) {
	var got string
	h := RequestId(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			got = RequestIdFrom(r.Context())
		}))

	h.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, got)

	prev := got
	h.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, prev, got, "every request gets a fresh id")

	assert.Empty(t, RequestIdFrom(t.Context()))
	assert.Empty(t, RequestIdFrom(nil))
}

func TestWithSession(t *testing.T) {
	require.NoError(t,
		config.LoadFrom(map[string]string{"SESSION_SECRET": "s3cret"}))

	store, err := storage.New("s3cret")
	require.NoError(t, err)

	c, err := store.CommitSession(&model.SessionData{Theme: model.ThemeDark})
	require.NoError(t, err)

	var theme model.Theme
	h := WithSession(store)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.NotNil(t, request.Session(r))
			theme = request.Theme(r)
		}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, model.ThemeDark, theme)

	h.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, theme, "no cookie yields an empty session")
}

func TestWithLocales(t *testing.T) {
	var got []string
	h := WithLocales(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			got = request.Locales(r)
		}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accepted-Language", "fr-CA,en;q=0.8")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, []string{"fr-CA"}, got)

	h.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"en-US"}, got)
}

func TestWithAccessLog_observesDuration(t *testing.T) {
	before := testutil.CollectAndCount(metric.RequestDuration)

	h := WithAccessLog()(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
	h.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Greater(t, testutil.CollectAndCount(metric.RequestDuration), before,
		"every finished request feeds the duration histogram")
	assert.Positive(t, testutil.CollectAndCount(
		metric.RequestDuration,
		"lightswitch_http_request_duration_seconds"),
		"observed under the response status label")
}

func TestWithRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := WithRateLimit(1, 2)(next)

	status := func(ip string) int {
		r := httptest.NewRequest(http.MethodPost, "/_actions/set-theme", nil)
		r = r.WithContext(request.WithClientIP(r.Context(), ip))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Result().StatusCode
	}

	assert.Equal(t, http.StatusOK, status("192.0.2.1"))
	assert.Equal(t, http.StatusOK, status("192.0.2.1"))
	assert.Equal(t, http.StatusTooManyRequests, status("192.0.2.1"),
		"burst exhausted")
	assert.Equal(t, http.StatusOK, status("192.0.2.2"),
		"limits are tracked per client")
}

func TestWithPanic(t *testing.T) {
	h := WithPanic(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { panic("boom") }))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "boom")
}
