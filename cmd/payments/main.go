package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vetstore-io/vetstore/internal/payments/api"
	"github.com/vetstore-io/vetstore/internal/payments/app"
	"github.com/vetstore-io/vetstore/internal/payments/infra/notify"
	"github.com/vetstore-io/vetstore/internal/payments/infra/stripe"
	"github.com/vetstore-io/vetstore/pkg/config"
	"github.com/vetstore-io/vetstore/pkg/logger"
	"github.com/vetstore-io/vetstore/pkg/shutdown"
)

func main() {
	cfg := config.LoadPayments()
	log := logger.New(logger.Options{Service: "payments", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	gateway := stripe.NewGateway(cfg.StripeSecretKey, cfg.SuccessURL, cfg.CancelURL)

	var notifier app.Notifier
	if cfg.NotificationsURL != "" {
		notifier = notify.NewClient(cfg.NotificationsURL, 10*time.Second)
	} else {
		log.Warn("NOTIFICATIONS_URL unset, payment confirmations disabled")
	}

	svc := app.NewService(gateway, notifier, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	api.NewHandler(svc, log).Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
