package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

// RouterConfig holds the router's tunables.
type RouterConfig struct {
	ServiceName    string
	CORS           middleware.CORSConfig
	RequestTimeout time.Duration
	// PageCacheSeconds is the Cache-Control max-age of static pages and assets.
	PageCacheSeconds int
	// StaticDir is served under /images and /styles when set.
	StaticDir    string
	PprofCIDRs   []string
	TokenChecker middleware.TokenValidator
	// APIRateLimit applies per client to the /api routes. Reads and product
	// creation keep separate buckets.
	APIRateLimit middleware.RateLimitConfig
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	cfg RouterConfig,
	pages *PageHandler,
	api *APIHandler,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))

	// Operational endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())
	middleware.RegisterPprof(r, cfg.PprofCIDRs, logger)

	// Pages
	r.Get("/", pages.Home)
	r.Get("/products", pages.Products)
	r.Get("/product/{id}", pages.Product)
	r.Get("/products/{id}", pages.RedirectProduct)
	r.Get("/shop", http.RedirectHandler("/products", http.StatusMovedPermanently).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.CacheControl(cfg.PageCacheSeconds))
		r.Get("/about", pages.About)
		r.Get("/contact", pages.Contact)

		if cfg.StaticDir != "" {
			static := http.FileServer(http.Dir(cfg.StaticDir))
			r.Handle("/images/*", static)
			r.Handle("/styles/*", static)
		}
	})

	// Catalog API
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.APIRateLimit, logger))
			r.Get("/products", api.ListProducts)
			r.Get("/categories", api.ListCategories)
		})

		// Every rejection on the create route uses its {"error": message} body.
		createLimit := cfg.APIRateLimit
		createLimit.OnLimit = writeCreateError
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(createLimit, logger))
			r.Use(middleware.Auth(cfg.TokenChecker, writeCreateError))
			r.Use(middleware.RequireRole(writeCreateError, domain.RoleAdmin))
			r.Post("/products", api.CreateProduct)
		})
	})

	r.NotFound(pages.NotFound)

	return r
}
