package server

import (
	"fmt"
	"net/http"

	"lightswitch.app/internal/storage"
)

func makeReadinessProbe(store *storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ready(); err != nil {
			http.Error(w, fmt.Sprintf("Session Store Error: %q", err),
				http.StatusServiceUnavailable)
			return
		}
		livenessProbe(w, r)
	}
}

func livenessProbe(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
