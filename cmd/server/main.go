// Package main runs the skill as an HTTP endpoint, optionally also answering
// on NATS.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voiceskill/internal/adapters/comms"
	"voiceskill/internal/adapters/httpapi"
	"voiceskill/internal/bootstrap"
	"voiceskill/internal/config"
	"voiceskill/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateForServer(); err != nil {
		return err
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	skill, err := bootstrap.NewSkill(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer skill.Close()

	if cfg.CommsURL != "" {
		nc, err := comms.Connect(cfg.CommsURL, cfg.ServiceName, log)
		if err != nil {
			return err
		}
		defer nc.Drain()
		sub := comms.NewSubscriber(skill.Service, cfg.RequestTimeout, log)
		if _, err := sub.Subscribe(ctx, nc, cfg.CommsSubject, cfg.ServiceName); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewRouter(httpapi.Options{
			Skill:          skill.Service,
			Journal:        skill.Journal,
			Locales:        skill.Service.Locales(),
			RequestTimeout: cfg.RequestTimeout,
			Logger:         log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
