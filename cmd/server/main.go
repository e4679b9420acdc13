// Package main implements the entry point for the Factum companion
// server: the localhost process that owns the on-device document store,
// talks to the identity provider and the Gemini API, and serves the
// HTTP surface the UI renders from.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/factum-app/factum/internal/config"
	"github.com/factum-app/factum/internal/generation"
	"github.com/factum-app/factum/internal/platform/bolt"
	"github.com/factum-app/factum/internal/platform/gemini"
	"github.com/factum-app/factum/internal/platform/logger"
	"github.com/factum-app/factum/internal/platform/supabase"
	"github.com/factum-app/factum/internal/service"
)

const shutdownTimeout = 10 * time.Second

// application holds the initialized dependencies of the running server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	store     *bolt.Store
	identity  *service.IdentityService
	chat      *service.ChatService
	quiz      *service.QuizService
	journey   *service.JourneyService
	sleep     *service.SleepService
	challenge *service.ChallengeService

	unsubscribe func()
}

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.teardown()

	if err := app.run(); err != nil {
		app.logger.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// initializeApp loads configuration and wires up application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("store_path", cfg.Store.Path),
		slog.Bool("remote_ai_enabled", cfg.LLM.Enabled()))

	st, err := bolt.Open(cfg.Store.Path, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	provider, err := supabase.NewClient(cfg.Auth.ProviderURL, cfg.Auth.AnonKey, appLogger)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to create identity provider client: %w", err)
	}
	emitter := supabase.NewSessionEmitter(appLogger)

	// The remote responder is optional: without API keys the chat runs
	// on the local phrase bank alone.
	var responder generation.Responder
	if cfg.LLM.Enabled() {
		r, err := gemini.NewResponder(ctx, appLogger, cfg.LLM)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("failed to create Gemini responder: %w", err)
		}
		responder = r
	} else {
		appLogger.Warn("no Gemini API keys configured, chat replies come from the fallback phrase bank")
	}

	fallbackLang := domainLanguage(cfg.Auth.FallbackLanguage)

	app := &application{
		config:   cfg,
		logger:   appLogger,
		store:    st,
		identity: service.NewIdentityService(provider, st, emitter, fallbackLang, appLogger),
		chat: service.NewChatService(
			st.Users(), st.Chat(), responder, cfg.LLM.MaxHistoryTurns, appLogger),
		quiz:      service.NewQuizService(st.Users(), st.DailyQuizzes(), nil, appLogger),
		journey:   service.NewJourneyService(st.Journey(), nil, appLogger),
		sleep:     service.NewSleepService(st.Sleep(), appLogger),
		challenge: service.NewChallengeService(st.Users(), appLogger),
	}

	app.unsubscribe = app.identity.OnSessionChange(func(event supabase.SessionEvent) {
		appLogger.Info("session changed", slog.String("event", string(event.Type)))
	})

	return app, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run() error {
	server := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		app.logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// teardown releases resources in reverse initialization order.
func (app *application) teardown() {
	if app.unsubscribe != nil {
		app.unsubscribe()
	}
	if app.store != nil {
		if err := app.store.Close(); err != nil {
			app.logger.Error("failed to close document store", slog.String("error", err.Error()))
		}
	}
}
