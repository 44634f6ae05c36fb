package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fundsbot/fundsbot/internal/api"
	"github.com/fundsbot/fundsbot/internal/app"
	"github.com/fundsbot/fundsbot/internal/bot"
	"github.com/fundsbot/fundsbot/internal/config"
	"github.com/fundsbot/fundsbot/internal/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info")
		l.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	if cfg.TelegramToken != "" {
		b, err := bot.New(cfg.TelegramToken, a.Handlers, log)
		if err != nil {
			return err
		}
		go func() {
			if err := b.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("Telegram bot stopped")
			}
		}()
	} else {
		log.Info().Msg("TELEGRAM_TOKEN not set, Telegram transport disabled")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	server := api.NewServer(cfg.HTTPAddr, a.Handlers, log)
	err = serve(server, quit, log)
	cancel()

	log.Info().Msg("Server exited")
	return err
}

// serve runs srv until it fails or stop fires. A failed listener is returned
// as is; a stop signal triggers a graceful shutdown.
func serve(srv *http.Server, stop <-chan os.Signal, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}
	return nil
}
