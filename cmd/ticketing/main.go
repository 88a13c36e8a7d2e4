package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xmukeshr/ticketdapp/internal/app"
	"github.com/0xmukeshr/ticketdapp/internal/config"
	"github.com/0xmukeshr/ticketdapp/internal/logger"
	"github.com/0xmukeshr/ticketdapp/internal/store/memory"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Trace ID covering the whole application lifecycle
	appTraceID := uuid.New().String()
	ctx = logger.ContextWithTraceID(ctx, appTraceID)

	cfg := config.LoadConfig()

	log, err := logger.InitLogger(cfg.Logger)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log = log.With(zap.String("app_trace_id", appTraceID))
	log.Info("Starting application")

	st := memory.NewStore()

	application, err := app.NewApp(cfg, st, log)
	if err != nil {
		log.Fatal("Failed to create application", zap.Error(err))
	}

	go handleSignals(cancel, application, log)

	if err := application.Start(ctx); err != nil {
		log.Fatal("Failed to start application", zap.Error(err))
	}
}

// handleSignals shuts the application down on SIGINT/SIGTERM
func handleSignals(cancel context.CancelFunc, application *app.App, log *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	cancel()
	application.Stop()
}
