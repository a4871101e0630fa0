package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "charm.land/log/v2"
	"github.com/gigmarket/gigchat/auth"
	"github.com/gigmarket/gigchat/cockroach"
	"github.com/gigmarket/gigchat/cockroach/migrator"
	"github.com/gigmarket/gigchat/config"
	"github.com/gigmarket/gigchat/metrics"
	"github.com/gigmarket/gigchat/pubsub"
	"github.com/gigmarket/gigchat/service"
	transporthttp "github.com/gigmarket/gigchat/transport/http"
	"github.com/hako/durafmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	errLogger := slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	}))
	infoLogger := slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := pgxpool.New(ctx, cfg.CockroachURL)
	if err != nil {
		return fmt.Errorf("open cockroach connection pool: %w", err)
	}

	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping cockroach: %w", err)
	}

	migrationStart := time.Now()
	infoLogger.Info("starting cockroach migrations")

	applied, err := migrator.Migrate(ctx, dbPool, cockroach.MigrationsFS)
	if err != nil {
		return fmt.Errorf("migrate cockroach schema: %w", err)
	}

	infoLogger.Info("finished cockroach migrations",
		"applied", applied,
		"took", durafmt.Parse(time.Since(migrationStart)).LimitFirstN(2).String())

	var broker service.Broker
	if cfg.NATSURL != "" {
		nc, err := nats.Connect(cfg.NATSURL, nats.Name("gigchat"))
		if err != nil {
			return fmt.Errorf("connect to nats: %w", err)
		}

		defer nc.Drain()

		broker = pubsub.NewNATS(nc, errLogger)
		infoLogger.Info("publishing notifications to nats", "url", cfg.NATSURL)
	} else {
		broker = pubsub.NewLocal()
		infoLogger.Info("publishing notifications in-process")
	}

	tokens, err := auth.NewTokenCodec(cfg.TokenKey, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token codec: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	db := cockroach.New(dbPool)
	svc := service.New(&service.Config{
		Events:            db,
		Participants:      db,
		Profiles:          db,
		Notifications:     db,
		Broker:            broker,
		Metrics:           metrics.New(reg),
		Logger:            errLogger,
		BaseCtx:           context.Background(),
		BackgroundTimeout: cfg.BackgroundTimeout,
		RosterConcurrency: cfg.RosterConcurrency,
		AggregateRoster:   cfg.AggregateRoster,
		ProfileCacheSize:  cfg.ProfileCacheSize,
		ProfileCacheTTL:   cfg.ProfileCacheTTL,
	})

	go func() {
		for err := range svc.Errs() {
			errLogger.Error("service error", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           transporthttp.New(svc, tokens, errLogger, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.BackgroundTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			errLogger.Error("shutdown gigchat server", "error", err)
		}
	}()

	infoLogger.Info("starting gigchat server", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start gigchat server: %w", err)
	}

	// ListenAndServe returns as soon as Shutdown starts. In-flight handlers
	// may still schedule background work until Shutdown returns, so the
	// service is closed only after that.
	<-shutdownDone

	waitStart := time.Now()
	if err := svc.Close(); err != nil {
		return fmt.Errorf("close service: %w", err)
	}

	infoLogger.Info("gigchat server stopped", "drained_in", durafmt.Parse(time.Since(waitStart)).LimitFirstN(2).String())

	return nil
}
