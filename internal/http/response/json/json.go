package json

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/http/response"
	"lightswitch.app/internal/logging"
)

const contentTypeHeader = `application/json`

// OK creates a new JSON response with a 200 status code.
func OK(w http.ResponseWriter, r *http.Request, body any) {
	responseBody, err := json.Marshal(body)
	if err != nil {
		ServerError(w, r, err)
		return
	}

	response.New(w, r).
		WithHeader("Content-Type", contentTypeHeader).
		WithBody(responseBody).
		Write()
}

// ServerError sends an internal error to the client.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error(
		http.StatusText(http.StatusInternalServerError),
		slog.Any("error", err),
		slog.String("client_ip", request.ClientIP(r)),
		slog.GroupAttrs("request",
			slog.String("method", r.Method),
			slog.String("uri", r.RequestURI)))

	response.New(w, r).
		WithStatus(http.StatusInternalServerError).
		WithHeader("Content-Type", contentTypeHeader).
		WithBody([]byte(`{"error_message": "internal server error"}`)).
		Write()
}
