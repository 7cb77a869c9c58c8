package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeMux(t *testing.T) {
	mux := New()
	require.NotNil(t, mux)

	var result []string
	makeHandleFunc := func(s string) func(http.ResponseWriter, *http.Request) {
		return func(http.ResponseWriter, *http.Request) {
			result = append(result, s)
		}
	}

	makeMiddleware := func(s string) MiddlewareFunc {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = append(result, s)
				next.ServeHTTP(w, r)
			})
		}
	}

	mux.NameHandleFunc("/healthcheck", makeHandleFunc("healthcheck"),
		"healthcheck").
		PrefixGroup("/lightswitch", func(mux *ServeMux) {
			mux.Use(makeMiddleware("session")).
				NameHandleFunc("GET /{$}", makeHandleFunc("home"), "home").
				NameHandleFunc("POST /_actions/set-theme",
					makeHandleFunc("setTheme"), "setTheme").
				NameHandleFunc("/css/{name}", makeHandleFunc("css"),
					"stylesheet")
		})

	mux.Use(makeMiddleware("requestId")).
		HandleFunc("/version", makeHandleFunc("version"))

	mux.Group().Use(makeMiddleware("grouped")).
		HandleFunc("/grouped", makeHandleFunc("handler"))

	tests := []struct {
		name     string
		method   string
		endpoint string
		expected []string
		assert   func(t *testing.T, mux *ServeMux)
	}{
		{
			name:     "healthcheck",
			endpoint: "/healthcheck",
			expected: []string{"healthcheck"},
			assert: func(t *testing.T, mux *ServeMux) {
				assert.Equal(t, "/healthcheck", mux.NamedPath("healthcheck"))
			},
		},
		{
			name:     "prefixed home",
			endpoint: "/lightswitch/",
			expected: []string{"session", "home"},
			assert: func(t *testing.T, mux *ServeMux) {
				assert.Equal(t, "/lightswitch/", mux.NamedPath("home"))
			},
		},
		{
			name:     "prefixed action",
			method:   http.MethodPost,
			endpoint: "/lightswitch/_actions/set-theme",
			expected: []string{"session", "setTheme"},
			assert: func(t *testing.T, mux *ServeMux) {
				assert.Equal(t, "/lightswitch/_actions/set-theme",
					mux.NamedPath("setTheme"))
			},
		},
		{
			name:     "wildcard path",
			endpoint: "/lightswitch/css/app.css",
			expected: []string{"session", "css"},
			assert: func(t *testing.T, mux *ServeMux) {
				assert.Equal(t, "/lightswitch/css/app.css",
					mux.NamedPath("stylesheet", "name", "app.css"))
			},
		},
		{
			name:     "root middleware",
			endpoint: "/version",
			expected: []string{"requestId", "version"},
		},
		{
			name:     "middleware added after registration not applied",
			endpoint: "/healthcheck",
			expected: []string{"healthcheck"},
		},
		{
			name:     "grouped middleware",
			endpoint: "/grouped",
			expected: []string{"requestId", "grouped", "handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result = nil
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}

			r := httptest.NewRequest(method, tt.endpoint, nil)
			mux.ServeHTTP(httptest.NewRecorder(), r)
			assert.Equal(t, tt.expected, result)

			if tt.assert != nil {
				tt.assert(t, mux)
			}
		})
	}
}
