package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/banco-portal/src/internal/config"
	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/api-sage/banco-portal/src/internal/standin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, err := standin.NewHandler(ctx, standin.Options{
		ChannelID:  cfg.ChannelID,
		ChannelKey: cfg.ChannelKey,
		Seed:       true,
	})
	if err != nil {
		log.Fatalf("build stand-in api: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.StubAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("stand-in api listening", logger.Fields{
			"addr":        cfg.StubAddr,
			"channelAuth": cfg.HasChannelCredentials(),
			"swagger":     "/swagger/",
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("stand-in api shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("stand-in api stopped", err, nil)
		logger.Sync()
		os.Exit(1)
	}
}
