package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"campusdir/internal/platform/config"
	"campusdir/internal/platform/httpserver"
	"campusdir/internal/platform/logger"
	"campusdir/internal/platform/metrics"
	schoolhandler "campusdir/internal/school/handler"
	schoolmetrics "campusdir/internal/school/metrics"
	"campusdir/internal/school/service"
	"campusdir/internal/school/store"
	httptransport "campusdir/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Request logic lives in the internal packages.
func main() {
	// A .env file in the working directory is optional.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	schools := service.New(store.NewFileStore(cfg.DataFile))
	h := schoolhandler.New(schools, log, schoolmetrics.New())
	router := httptransport.NewRouter(log, metrics.New(), h)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting campusdir",
			"addr", cfg.Addr,
			"data_file", cfg.DataFile,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down, draining in-flight requests")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
