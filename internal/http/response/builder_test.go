package response

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_defaults(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	New(w, r).WithBody("hello").Write()

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", w.Body.String())
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", resp.Header.Get("Referrer-Policy"))
}

func TestBuilder_statusAndHeader(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	New(w, r).
		WithStatus(http.StatusTeapot).
		WithHeader("X-Custom", "yes").
		Write()

	resp := w.Result()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header.Get("X-Custom"))
	assert.Empty(t, w.Body.String())
}

func TestBuilder_errorBody(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	New(w, r).WithStatus(http.StatusInternalServerError).
		WithBody(assert.AnError).Write()
	assert.Equal(t, assert.AnError.Error(), w.Body.String())
}

func TestBuilder_withoutCompression(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	New(w, r).WithoutCompression().Write()
	assert.NotEmpty(t, w.Result().Header.Get(gzhttp.HeaderNoCompression))
}

func TestBuilder_caching(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	called := false
	New(w, r).WithCaching("etag-1", time.Hour, func(b *Builder) {
		called = true
		b.WithBody("fresh").Write()
	})
	require.True(t, called)

	resp := w.Result()
	assert.Equal(t, "etag-1", resp.Header.Get("ETag"))
	assert.Equal(t, "fresh", w.Body.String())
}

func TestBuilder_cachingNotModified(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("If-None-Match", "etag-1")

	New(w, r).WithCaching("etag-1", time.Hour, func(b *Builder) {
		t.Fatal("callback must not run on a matching etag")
	})
	assert.Equal(t, http.StatusNotModified, w.Result().StatusCode)
	assert.Empty(t, w.Body.String())
}

func TestBuilder_longCaching(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	New(w, r).WithLongCaching().Write()
	assert.Equal(t, longCacheControl,
		w.Result().Header.Get("Cache-Control"))
}
