// Package metric exposes Prometheus metrics for the theme service.
package metric

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lightswitch.app/internal/config"
	"lightswitch.app/internal/http/request"
	"lightswitch.app/internal/logging"
)

// Prometheus Metrics.
var (
	ThemeSwitchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lightswitch",
			Name:      "theme_switch_total",
			Help:      "Accepted set-theme actions by resulting theme",
		},
		[]string{"theme"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lightswitch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(ThemeSwitchTotal)
	prometheus.MustRegister(RequestDuration)
}

func Handler() http.Handler {
	promHandler := promhttp.Handler()

	fn := func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedToAccessMetricsEndpoint(r) {
			logging.FromContext(r.Context()).Warn(
				"Rejected access to the metrics endpoint",
				slog.String("client_ip", request.ClientIP(r)),
				slog.String("client_remote_addr", r.RemoteAddr))
			http.NotFound(w, r)
			return
		}
		promHandler.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

func isAllowedToAccessMetricsEndpoint(r *http.Request) bool {
	remoteIP := request.FindRemoteIP(r)
	if remoteIP == "@" {
		// Requests over a Unix socket are always trusted.
		return true
	}

	// We check r.RemoteAddr here because HTTP headers like X-Forwarded-For
	// can be easily spoofed.
	ip := net.ParseIP(remoteIP)
	for _, cidr := range config.MetricsAllowedNetworks() {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			logging.FromContext(r.Context()).Error(
				"Metrics endpoint configured with invalid CIDR",
				slog.String("cidr", cidr))
			return false
		}
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
