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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/opsboard-backend/api/routes"
	"github.com/angelmondragon/opsboard-backend/internal/customers"
	"github.com/angelmondragon/opsboard-backend/internal/dashboard"
	"github.com/angelmondragon/opsboard-backend/internal/integrations"
	"github.com/angelmondragon/opsboard-backend/internal/inventory"
	"github.com/angelmondragon/opsboard-backend/internal/orders"
	products "github.com/angelmondragon/opsboard-backend/internal/products"
	"github.com/angelmondragon/opsboard-backend/internal/seed"
	"github.com/angelmondragon/opsboard-backend/internal/users"
	"github.com/angelmondragon/opsboard-backend/pkg/config"
	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/instance"
	"github.com/angelmondragon/opsboard-backend/pkg/logger"
	"github.com/angelmondragon/opsboard-backend/pkg/metrics"
	"github.com/angelmondragon/opsboard-backend/pkg/migrate"
	"github.com/angelmondragon/opsboard-backend/pkg/redis"
	"github.com/angelmondragon/opsboard-backend/pkg/security"
)

const shutdownTimeout = 15 * time.Second

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

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(runCtx, cfg.DB, logg)
	if err != nil {
		logg.Error(runCtx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(runCtx, cfg, logg, dbClient); err != nil {
		logg.Error(runCtx, "failed to run dev migrations", err)
		_ = dbClient.Close()
		os.Exit(1)
	}

	var (
		redisClient *redis.Client
		redisStore  routes.RedisStore
	)
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(runCtx, cfg.Redis, logg)
		if err != nil {
			logg.Error(runCtx, "failed to bootstrap redis", err)
			_ = dbClient.Close()
			os.Exit(1)
		}
		redisStore = redisClient
	} else {
		logg.Warn(runCtx, "redis not configured, idempotency and admin rate limits disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler, err := buildHandler(cfg, logg, dbClient, redisStore, reg)
	if err != nil {
		logg.Error(runCtx, "failed to wire services", err)
		_ = closeResources(dbClient, redisClient)
		os.Exit(1)
	}

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(runCtx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"driver":   cfg.DB.Driver,
		"instance": instance.GetID(),
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case err := <-serverErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = multierr.Append(server.Shutdown(shutdownCtx), closeResources(dbClient, redisClient))
	if err != nil {
		logg.Error(ctx, "error during shutdown", err)
		exitCode = 1
	}
	logg.Info(ctx, "api server stopped")
	os.Exit(exitCode)
}

func buildHandler(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, redisStore routes.RedisStore, reg *prometheus.Registry) (http.Handler, error) {
	conn := dbClient.DB()
	cutoff, err := cfg.Reporting.SalesCutoff()
	if err != nil {
		return nil, err
	}

	orderService, err := orders.NewService(orders.NewRepository(conn), dbClient)
	if err != nil {
		return nil, err
	}
	dashboardService, err := dashboard.NewService(dashboard.NewRepository(conn), orderService, cutoff)
	if err != nil {
		return nil, err
	}
	inventoryRepo := inventory.NewRepository(conn)
	productService, err := products.NewService(products.NewRepository(conn), inventoryRepo, dbClient)
	if err != nil {
		return nil, err
	}
	customerService, err := customers.NewService(customers.NewRepository(conn), dbClient)
	if err != nil {
		return nil, err
	}
	inventoryService, err := inventory.NewService(inventoryRepo)
	if err != nil {
		return nil, err
	}
	integrationService, err := integrations.NewService(integrations.NewRepository(conn))
	if err != nil {
		return nil, err
	}
	userService, err := users.NewService(users.NewRepository(conn), security.NewHasher(cfg.Password))
	if err != nil {
		return nil, err
	}
	seedService, err := seed.NewService(dbClient, metrics.NewAdminMetrics(reg), logg)
	if err != nil {
		return nil, err
	}

	return routes.NewRouter(
		cfg,
		logg,
		dbClient,
		redisStore,
		reg,
		metrics.NewHTTPMetrics(reg),
		dashboardService,
		productService,
		customerService,
		orderService,
		inventoryService,
		integrationService,
		userService,
		seedService,
	), nil
}

func closeResources(dbClient *db.Client, redisClient *redis.Client) error {
	var err error
	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}
	if dbClient != nil {
		err = multierr.Append(err, dbClient.Close())
	}
	return err
}
