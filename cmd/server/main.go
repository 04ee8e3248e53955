package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/subosito/gotenv"

	"github.com/tourline/merch-forecast/internal/config"
	httpx "github.com/tourline/merch-forecast/internal/infra/http"
	"github.com/tourline/merch-forecast/internal/infra/logger"
	"github.com/tourline/merch-forecast/internal/predict"
)

func main() {
	configPath := flag.String("config", "config/example.yaml", "path to config file")
	flag.Parse()

	_ = gotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	// A failed artifact load is not fatal: the service starts degraded
	// and the health endpoint reports not-ready until a restart with
	// artifacts in place.
	inf, err := predict.LoadArtifacts(cfg.Artifacts.Dir)
	if err != nil {
		log.Warn("model artifacts not loaded, serving degraded", "dir", cfg.Artifacts.Dir, "err", err)
	} else {
		log.Info("model artifacts loaded", "dir", cfg.Artifacts.Dir, "model_type", inf.Model.Type())
	}

	svc := predict.NewService(inf, log)
	srv := httpx.New(svc, log, cfg.Metrics.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("prediction service started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
