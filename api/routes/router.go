package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neonmart/neonmart-backend/api/controllers"
	"github.com/neonmart/neonmart-backend/api/middleware"
	"github.com/neonmart/neonmart-backend/internal/cart"
	"github.com/neonmart/neonmart-backend/internal/catalog"
	"github.com/neonmart/neonmart-backend/internal/media"
	"github.com/neonmart/neonmart-backend/internal/orders"
	"github.com/neonmart/neonmart-backend/internal/session"
	"github.com/neonmart/neonmart-backend/internal/team"
	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/neonmart/neonmart-backend/pkg/kv"
	"github.com/neonmart/neonmart-backend/pkg/logger"
	"github.com/neonmart/neonmart-backend/pkg/metrics"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Store    kv.Pinger
	Registry *prometheus.Registry
	Requests *metrics.RequestMetrics

	Catalog  catalog.Service
	Cart     cart.Service
	Orders   orders.Service
	Team     team.Service
	Sessions session.Service
	Images   *media.Resolver
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.Requests),
		middleware.CORS(deps.Config.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.Store))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, deps.Logger))
			r.Get("/{productId}", controllers.GetProduct(deps.Catalog, deps.Logger))
		})
		r.Get("/categories", controllers.ListCategories(deps.Catalog, deps.Logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartView(deps.Cart, deps.Logger))
			r.Post("/items", controllers.CartAdd(deps.Cart, deps.Logger))
			r.Delete("/items/{index}", controllers.CartRemove(deps.Cart, deps.Logger))
		})
		r.Post("/checkout", controllers.Checkout(deps.Cart, deps.Logger))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(deps.Sessions, deps.Logger))
			r.Post("/logout", controllers.AuthLogout(deps.Sessions, deps.Logger))
			r.Get("/session", controllers.AuthSession(deps.Sessions, deps.Logger))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.RequireActor(deps.Sessions, deps.Logger))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AddProduct(deps.Catalog, deps.Images, deps.Logger))
			r.Delete("/{productId}", controllers.DeleteProduct(deps.Catalog, deps.Logger))
		})
		r.Post("/categories", controllers.AddCategory(deps.Catalog, deps.Logger))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.Orders, deps.Logger))
			r.Post("/{orderId}/complete", controllers.CompleteOrder(deps.Orders, deps.Logger))
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", controllers.ListTeam(deps.Team, deps.Logger))
			r.Post("/", controllers.AddTeamMember(deps.Team, deps.Logger))
			r.Delete("/{memberId}", controllers.DeleteTeamMember(deps.Team, deps.Logger))
		})
	})

	return r
}
