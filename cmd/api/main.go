package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/neonmart/neonmart-backend/api/routes"
	"github.com/neonmart/neonmart-backend/internal/cart"
	"github.com/neonmart/neonmart-backend/internal/catalog"
	"github.com/neonmart/neonmart-backend/internal/media"
	"github.com/neonmart/neonmart-backend/internal/orders"
	"github.com/neonmart/neonmart-backend/internal/session"
	"github.com/neonmart/neonmart-backend/internal/team"
	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/neonmart/neonmart-backend/pkg/ids"
	"github.com/neonmart/neonmart-backend/pkg/kv"
	"github.com/neonmart/neonmart-backend/pkg/kv/kvredis"
	"github.com/neonmart/neonmart-backend/pkg/kv/kvsqlite"
	"github.com/neonmart/neonmart-backend/pkg/logger"
	"github.com/neonmart/neonmart-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := openStore(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open snapshot store", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)
	requestMetrics := metrics.NewRequestMetrics(registry)

	measured := kv.WithMetrics(store, storeMetrics)
	gen := ids.NewGenerator()

	catalogSvc, err := catalog.NewService(catalog.NewRepository(measured), gen)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	ordersSvc, err := orders.NewService(orders.NewRepository(measured))
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	teamRepo := team.NewRepository(measured)
	teamSvc, err := team.NewService(teamRepo, gen)
	if err != nil {
		logg.Error(context.Background(), "failed to create team service", err)
		os.Exit(1)
	}

	sessionSvc, err := session.NewService(session.ServiceParams{
		TeamRepo:    teamRepo,
		SessionRepo: session.NewRepository(measured),
		IDs:         gen,
		Bootstrap:   cfg.Bootstrap,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}

	cartSvc, err := cart.NewService(cart.ServiceParams{
		Catalog: catalogSvc,
		Orders:  ordersSvc,
		IDs:     gen,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	host, provisioned, err := sessionSvc.EnsureHost(context.Background())
	if err != nil {
		logg.Error(context.Background(), "failed to provision host account", err)
		os.Exit(1)
	}
	if provisioned {
		ctx := logg.WithActor(context.Background(), host.Username)
		logg.Info(ctx, "host account provisioned with default credential")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": cfg.Store.Driver,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			Store:    store,
			Registry: registry,
			Requests: requestMetrics,
			Catalog:  catalogSvc,
			Cart:     cartSvc,
			Orders:   ordersSvc,
			Team:     teamSvc,
			Sessions: sessionSvc,
			Images:   media.NewResolver(cfg.Media),
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			if closeErr := store.Close(); closeErr != nil {
				logg.Error(ctx, "error closing snapshot store", closeErr)
			}
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := multierr.Combine(server.Shutdown(shutdownCtx), store.Close()); err != nil {
		logg.Error(ctx, "shutdown finished with errors", err)
		os.Exit(1)
	}
	logg.Info(ctx, "shutdown complete")
}

func openStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (kv.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		return kvredis.Open(ctx, cfg.Redis)
	default:
		return kvsqlite.Open(ctx, cfg.Store, logg)
	}
}
