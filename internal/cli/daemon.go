package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"lightswitch.app/internal/config"
	"lightswitch.app/internal/http/server"
	"lightswitch.app/internal/metric"
	"lightswitch.app/internal/storage"
	"lightswitch.app/internal/ui/static"
)

func NewDaemon() *Daemon { return &Daemon{} }

type Daemon struct {
	store      *storage.Storage
	g          *errgroup.Group
	httpServer *http.Server
}

func (self *Daemon) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, os.Interrupt)
	defer cancel()

	slog.Info("Starting daemon...")
	if err := self.configure(ctx); err != nil {
		return err
	}

	self.start(ctx)
	return self.wait(ctx)
}

func (self *Daemon) configure(ctx context.Context) error {
	store, err := storage.New(config.SessionSecrets()...)
	if err != nil {
		return err
	}
	self.store = store

	if err := static.CalculateBundleChecksums(ctx); err != nil {
		return fmt.Errorf("failed calculate asset checksums: %w", err)
	}

	if config.HasMetricsCollector() {
		metric.RegisterMetrics()
	}
	return nil
}

func (self *Daemon) start(ctx context.Context) {
	self.g, _ = errgroup.WithContext(ctx)
	self.httpServer = server.StartWebServer(self.store, self.g)
}

func (self *Daemon) wait(ctx context.Context) error {
	<-ctx.Done()
	if self.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("Shutting down the process gracefully...")
		if err := self.httpServer.Shutdown(ctx); err != nil {
			slog.Error("failed shutdown http server", slog.Any("error", err))
		}
	}

	if err := self.g.Wait(); err != nil {
		slog.Error("process stopped with error", slog.Any("error", err))
		return fmt.Errorf("process stopped with error: %w", err)
	}
	slog.Info("Process gracefully stopped")
	return nil
}
