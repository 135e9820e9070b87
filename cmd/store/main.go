package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	cartapi "github.com/vetstore-io/vetstore/internal/cart/api"
	cartapp "github.com/vetstore-io/vetstore/internal/cart/app"
	cartadapter "github.com/vetstore-io/vetstore/internal/cart/infra/adapter"
	cartpg "github.com/vetstore-io/vetstore/internal/cart/infra/postgres"

	catalogapi "github.com/vetstore-io/vetstore/internal/catalog/api"
	catalogapp "github.com/vetstore-io/vetstore/internal/catalog/app"
	catalogpg "github.com/vetstore-io/vetstore/internal/catalog/infra/postgres"

	checkoutapi "github.com/vetstore-io/vetstore/internal/checkout/api"
	checkoutapp "github.com/vetstore-io/vetstore/internal/checkout/app"
	checkoutadapter "github.com/vetstore-io/vetstore/internal/checkout/infra/adapter"
	checkoutpayments "github.com/vetstore-io/vetstore/internal/checkout/infra/payments"

	ordersapi "github.com/vetstore-io/vetstore/internal/orders/api"
	ordersapp "github.com/vetstore-io/vetstore/internal/orders/app"
	ordersadapter "github.com/vetstore-io/vetstore/internal/orders/infra/adapter"
	orderspg "github.com/vetstore-io/vetstore/internal/orders/infra/postgres"

	"github.com/vetstore-io/vetstore/pkg/config"
	"github.com/vetstore-io/vetstore/pkg/logger"
	"github.com/vetstore-io/vetstore/pkg/postgres"
	"github.com/vetstore-io/vetstore/pkg/shutdown"
)

func main() {
	cfg := config.LoadStore()
	log := logger.New(logger.Options{Service: "store", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db, err := postgres.Open(postgres.Config{
		Host:    cfg.DB.Host,
		Port:    cfg.DB.Port,
		User:    cfg.DB.User,
		Pass:    cfg.DB.Pass,
		DB:      cfg.DB.Name,
		SSLMode: cfg.DB.SSLMode,
	})
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer db.Close()

	// Catalog
	catalogSvc := catalogapp.NewService(catalogpg.NewProductRepo(db))

	// Cart (line items validated against catalog stock)
	cartSvc := cartapp.NewService(cartpg.NewCartRepo(db), cartadapter.NewCatalogFinder(catalogSvc))

	// Checkout (adapters + payment-session client)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		checkoutpayments.NewClient(cfg.PaymentsURL, checkoutpayments.DefaultTimeout),
		10,
	)

	// Orders
	ordersSvc := ordersapp.NewService(
		orderspg.NewOrderRepo(db),
		ordersadapter.NewCartServiceReader(cartSvc),
		ordersadapter.NewCatalogServiceReader(catalogSvc),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	catalogapi.NewHandler(catalogSvc, log).Routes(r)
	cartapi.NewHandler(cartSvc, log).Routes(r)
	checkoutapi.NewHandler(checkoutSvc, log).Routes(r)
	ordersapi.NewHandler(ordersSvc, log).Routes(r)

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
