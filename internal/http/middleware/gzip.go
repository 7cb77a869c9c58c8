package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

func Gzip(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
