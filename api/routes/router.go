package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nettoria/storefront-backend/api/controllers"
	"github.com/nettoria/storefront-backend/api/middleware"
	cartsvc "github.com/nettoria/storefront-backend/internal/cart"
	"github.com/nettoria/storefront-backend/internal/catalog"
	checkoutsvc "github.com/nettoria/storefront-backend/internal/checkout"
	"github.com/nettoria/storefront-backend/pkg/config"
	"github.com/nettoria/storefront-backend/pkg/logger"
	"github.com/nettoria/storefront-backend/pkg/redis"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    controllers.Pinger
	RedisClient *redis.Client
	Catalog     catalog.Service
	Carts       cartsvc.Service
	Checkout    checkoutsvc.Service
}

// NewRouter assembles the storefront HTTP surface.
func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	mutationPolicy := middleware.NewRateLimitPolicy(
		"cart_mutation",
		cfg.Cart.RateLimitWindow,
		cfg.Cart.RateLimitMax,
	)

	session := middleware.CartSession(middleware.CartSessionOptions{
		CookieName: cfg.Cart.CookieName,
		TTL:        cfg.Cart.TTL,
		Secure:     cfg.App.IsProd(),
	}, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DBPinger, deps.RedisClient, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(session)

		r.Route("/catalog/services", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(deps.Catalog, logg))
			r.Get("/{code}", controllers.CatalogGet(deps.Catalog, logg))
			r.Post("/{code}/select", controllers.CatalogSelect(deps.Catalog, deps.Carts, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(deps.Carts, logg))
			r.Get("/summary", controllers.CheckoutSummary(deps.Checkout, logg))
			r.Get("/selected", controllers.CartSelectedGet(deps.Carts, logg))
			r.Get("/editing", controllers.CartEditingGet(deps.Carts, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(mutationPolicy, deps.RedisClient, logg))
				r.Post("/items", controllers.CartAddItem(deps.Carts, logg))
				r.Patch("/items/{code}", controllers.CartUpdateItem(deps.Carts, logg))
				r.Delete("/items/{code}", controllers.CartRemoveItem(deps.Carts, logg))
				r.Post("/items/{code}/edit", controllers.CartEditItem(deps.Carts, logg))
				r.Delete("/", controllers.CartClear(deps.Carts, logg))
				r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.Checkout, logg))
			r.Get("/{id}", controllers.OrderGet(deps.Checkout, logg))
		})
	})

	return r
}
