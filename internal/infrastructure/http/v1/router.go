package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taproom/internal/domain/catalogs/beer"
	"taproom/internal/domain/catalogs/customer"
	"taproom/internal/infrastructure/http/v1/handlers"
	"taproom/internal/infrastructure/http/v1/middleware"
	"taproom/internal/infrastructure/storage/postgres"
	"taproom/internal/infrastructure/storage/postgres/catalog_repo"
	"taproom/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Health is probed by /health/ready and /health/info
	Health handlers.Database

	// TxManager backs every repository
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// DefaultPageSize applies to searches that omit size
	DefaultPageSize int

	// TaggedResults switches mutating endpoints to the result envelope
	TaggedResults bool

	// Gzip compresses responses for clients that accept it
	Gzip bool
}

// NewRouter creates and configures the gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// ErrorHandler sits outside Recovery so a recovered panic is still rendered.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(cfg.Health)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v2")
	registerResourceRoutes(api, cfg)

	return router
}

// NewHandler returns the router wrapped with response compression when enabled.
func NewHandler(cfg RouterConfig) http.Handler {
	router := NewRouter(cfg)
	if !cfg.Gzip {
		return router
	}
	return gzhttp.GzipHandler(router)
}

func registerResourceRoutes(api *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()

	beerService := beer.NewService(catalog_repo.NewBeerRepo(cfg.TxManager), cfg.DefaultPageSize)
	RegisterResourceRoutes(api.Group("/beer"), handlers.NewBeerHandler(base, beerService, cfg.TaggedResults))

	customerService := customer.NewService(catalog_repo.NewCustomerRepo(cfg.TxManager), cfg.DefaultPageSize)
	RegisterResourceRoutes(api.Group("/customer"), handlers.NewCustomerHandler(base, customerService, cfg.TaggedResults))
}
