// Package server starts the HTTP listeners and wires the route table.
package server

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/acme"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/sync/errgroup"

	"lightswitch.app/internal/config"
	"lightswitch.app/internal/http/middleware"
	"lightswitch.app/internal/http/mux"
	"lightswitch.app/internal/http/response/json"
	"lightswitch.app/internal/metric"
	"lightswitch.app/internal/storage"
	"lightswitch.app/internal/ui"
	"lightswitch.app/internal/version"
)

func StartWebServer(store *storage.Storage, g *errgroup.Group) *http.Server {
	certFile := config.CertFile()
	keyFile := config.CertKeyFile()
	certDomain := config.CertDomain()
	listenAddr := config.ListenAddr()
	server := &http.Server{
		ReadTimeout:  config.HTTPServerTimeout(),
		WriteTimeout: config.HTTPServerTimeout(),
		IdleTimeout:  config.HTTPServerTimeout(),
		Handler:      setupHandler(store),
	}

	switch {
	case strings.HasPrefix(listenAddr, "/"):
		startUnixSocketServer(server, listenAddr, g)
	case certDomain != "":
		config.EnableHTTPS()
		startAutoCertTLSServer(server, certDomain, g)
	case certFile != "" && keyFile != "":
		config.EnableHTTPS()
		server.Addr = listenAddr
		startTLSServer(server, certFile, keyFile, g)
	default:
		server.Addr = listenAddr
		startHTTPServer(server, g)
	}
	return server
}

func startUnixSocketServer(server *http.Server, path string,
	g *errgroup.Group,
) {
	g.Go(func() error {
		listener, err := unixListener(path, 0o666)
		if err != nil {
			return fmt.Errorf(
				"http/server: create unix listener on %q: %w", path, err)
		}
		defer listener.Close()

		slog.Info("Starting server using a Unix socket",
			slog.String("socket", path))
		if err := server.Serve(listener); err != http.ErrServerClosed {
			slog.Error("failed serve on unix socket",
				slog.String("socket", path), slog.Any("error", err))
			return fmt.Errorf(
				"http/server: failed serve on unix socket %q: %w", path, err)
		}
		return nil
	})
}

func unixListener(path string, mode uint32) (*net.UnixListener, error) {
	if err := unlinkStaleUnix(path); err != nil {
		return nil, err
	}

	laddr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, fmt.Errorf("http/server: resolve unix address: %w", err)
	}

	l, err := net.ListenUnix("unix", laddr)
	if err != nil {
		return nil, fmt.Errorf("http/server: listen unix: %w", err)
	}

	l.SetUnlinkOnClose(true)
	if mode == 0 {
		return l, nil
	}

	if err := os.Chmod(path, os.FileMode(mode)); err != nil {
		return nil, fmt.Errorf(
			"http/server: change socket mode to %O: %w", mode, err)
	}
	return l, nil
}

func unlinkStaleUnix(path string) error {
	sockdir := filepath.Dir(path)
	stat, err := os.Stat(sockdir)
	switch {
	case err != nil && os.IsNotExist(err):
		if err := os.MkdirAll(sockdir, 0o755); err != nil {
			return fmt.Errorf("http/server: cannot mkdir %q: %w", sockdir, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("http/server: cannot stat(2) %q: %w", sockdir, err)
	case !stat.IsDir():
		return fmt.Errorf("http/server: not a directory: %q", sockdir)
	}

	_, err = os.Stat(path)
	switch {
	case err == nil:
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("http/server: cannot remove stale socket: %w", err)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("http/server: cannot stat(2): %w", err)
	}
	return nil
}

func startAutoCertTLSServer(server *http.Server, certDomain string,
	g *errgroup.Group,
) {
	server.Addr = ":https"
	certManager := autocert.Manager{
		Cache:      autocert.DirCache(config.CertCacheDir()),
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(certDomain),
	}
	server.TLSConfig = certManager.TLSConfig()
	server.TLSConfig.NextProtos = []string{"h2", "http/1.1", acme.ALPNProto}

	// Handle http-01 challenge.
	s := &http.Server{
		Handler: certManager.HTTPHandler(nil),
		Addr:    ":http",
	}

	g.Go(func() error {
		if err := s.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("failed serve http-01 challenge", slog.Any("error", err))
			return fmt.Errorf(
				"http/server: failed serve http-01 challenge: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("Starting TLS server using automatic certificate management",
			slog.String("listen_address", server.Addr),
			slog.String("domain", certDomain))
		if err := server.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
			slog.Error(
				"failed serve TLS server with automatic certificate management",
				slog.Any("error", err))
			return fmt.Errorf(
				"http/server: failed serve auto cert TLS server: %w", err)
		}
		return nil
	})
}

func startTLSServer(server *http.Server, certFile, keyFile string,
	g *errgroup.Group,
) {
	g.Go(func() error {
		slog.Info("Starting TLS server using a certificate",
			slog.String("listen_address", server.Addr),
			slog.String("cert_file", certFile),
			slog.String("key_file", keyFile))
		err := server.ListenAndServeTLS(certFile, keyFile)
		if err != http.ErrServerClosed {
			slog.Error("failed serve TLS server", slog.Any("error", err))
			return fmt.Errorf("http/server: failed serve TLS server: %w", err)
		}
		return nil
	})
}

func startHTTPServer(server *http.Server, g *errgroup.Group) {
	g.Go(func() error {
		slog.Info("Starting HTTP server",
			slog.String("listen_address", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("failed serve plain HTTP server", slog.Any("error", err))
			return fmt.Errorf("http/server: failed serve plain HTTP server: %w", err)
		}
		return nil
	})
}

func setupHandler(store *storage.Storage) http.Handler {
	serveMux := mux.New()

	// These routes do not take the base path into consideration and are always
	// available at the root of the server.
	readinessProbe := makeReadinessProbe(store)
	serveMux.HandleFunc("/liveness", livenessProbe).
		HandleFunc("/healthz", livenessProbe).
		HandleFunc("/readiness", readinessProbe).
		HandleFunc("/readyz", readinessProbe)

	m := serveMux
	if config.BasePath() != "" {
		m = serveMux.PrefixGroup(config.BasePath())
	}
	m.HandleFunc("/healthcheck", readinessProbe)
	m.HandleFunc("/version", handleVersion)

	m.Use(middleware.Gzip, middleware.RequestId, middleware.ClientIP)

	if config.HasMetricsCollector() {
		m.Handle("/metrics", metric.Handler())
	}

	m.Use(middleware.WithAccessLog("/healthcheck"), middleware.WithPanic)

	ui.Serve(m, store)
	return serveMux
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	info := version.New()
	json.OK(w, r, map[string]string{
		"version":    info.Version(),
		"commit":     info.Commit(),
		"build_date": info.BuildDate(),
	})
}
