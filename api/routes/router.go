package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/opsboard-backend/api/controllers"
	"github.com/angelmondragon/opsboard-backend/api/middleware"
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
	"github.com/angelmondragon/opsboard-backend/pkg/logger"
	"github.com/angelmondragon/opsboard-backend/pkg/metrics"
	"github.com/angelmondragon/opsboard-backend/pkg/redis"
)

// RedisStore is the redis surface the router hands to health checks,
// idempotent creates and the admin rate limiter. Pass nil when redis is off.
type RedisStore interface {
	redis.Pinger
	middleware.IdempotencyStore
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
	RateLimitKey(scope string) string
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisStore RedisStore,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	dashboardService dashboard.Service,
	productService products.Service,
	customerService customers.Service,
	orderService orders.Service,
	inventoryService inventory.Service,
	integrationService integrations.Service,
	userService users.Service,
	seedService seed.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	var (
		idempotencyStore middleware.IdempotencyStore
		redisPinger      redis.Pinger
	)
	if redisStore != nil {
		idempotencyStore = redisStore
		redisPinger = redisStore
	}
	idempotent := middleware.Idempotency(idempotencyStore, middleware.DefaultIdempotencyTTL, logg)
	adminPolicy := middleware.NewRateLimitPolicy("admin", cfg.AdminLimit.Window, cfg.AdminLimit.IPLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/kpis", controllers.DashboardKPIs(dashboardService, logg))
			r.Get("/sales", controllers.DashboardSales(dashboardService, logg))
			r.Get("/order-status", controllers.DashboardOrderStatus(dashboardService, logg))
			r.Get("/recent-orders", controllers.DashboardRecentOrders(dashboardService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.With(idempotent).Post("/", controllers.CreateProduct(productService, logg))
			r.Get("/{id}", controllers.GetProduct(productService, logg))
			r.Put("/{id}", controllers.UpdateProduct(productService, logg))
			r.Delete("/{id}", controllers.DeleteProduct(productService, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(customerService, logg))
			r.With(idempotent).Post("/", controllers.CreateCustomer(customerService, logg))
			r.Get("/{id}", controllers.GetCustomer(customerService, logg))
			r.Put("/{id}", controllers.UpdateCustomer(customerService, logg))
			r.Delete("/{id}", controllers.DeleteCustomer(customerService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(orderService, logg))
			r.With(idempotent).Post("/", controllers.CreateOrder(orderService, logg))
			r.Get("/{id}", controllers.GetOrder(orderService, logg))
			r.Put("/{id}", controllers.UpdateOrder(orderService, logg))
			r.Delete("/{id}", controllers.DeleteOrder(orderService, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(inventoryService, logg))
			r.Get("/low-stock", controllers.ListLowStock(inventoryService, logg))
			r.Put("/{productId}", controllers.UpdateInventory(inventoryService, logg))
		})

		r.Route("/integrations", func(r chi.Router) {
			r.Get("/", controllers.ListIntegrations(integrationService, logg))
			r.With(idempotent).Post("/", controllers.CreateIntegration(integrationService, logg))
			r.Put("/{id}", controllers.UpdateIntegration(integrationService, logg))
			r.Post("/{id}/sync", controllers.SyncIntegration(integrationService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.With(idempotent).Post("/", controllers.CreateUser(userService, logg))
			r.Get("/{id}", controllers.GetUser(userService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(adminPolicy, redisStore, logg))
			r.Delete("/clear-data", controllers.AdminClearData(seedService, logg))
			r.Post("/seed-data", controllers.AdminSeedData(seedService, logg))
		})
	})

	return r
}
