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

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/db"
	"github.com/mergington/activities/internal/events"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/metrics"
	svc "github.com/mergington/activities/internal/services"
	"github.com/mergington/activities/internal/web"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	conn, err := db.Open(cfg.DBPath, cfg.DBLogLevel, log)
	if err != nil {
		log.WithError(err).Fatal("db init")
	}
	defer db.Close(conn) //nolint:errcheck

	if cfg.Seed {
		if _, err := db.Seed(context.Background(), conn, db.MergingtonCatalog, log); err != nil {
			log.WithError(err).Fatal("seed")
		}
	}

	bus := &events.Bus{}
	bus.Subscribe(metrics.RecordChange)

	r := web.Router(web.Deps{
		Catalog:    svc.NewCatalog(conn, log),
		Ledger:     svc.NewLedger(conn, log, bus),
		Log:        log,
		StaticDir:  cfg.StaticDir,
		PublicURL:  cfg.PublicURL,
		AdminToken: cfg.AdminToken,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.Addr).Info("Mergington activities listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("stopped")
}
