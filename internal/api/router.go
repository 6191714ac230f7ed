package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/proproperty/valuation-api/internal/api/handler"
	"github.com/proproperty/valuation-api/internal/api/middleware"
	"github.com/proproperty/valuation-api/internal/core/model"
	"github.com/proproperty/valuation-api/internal/core/service"
	mongodb "github.com/proproperty/valuation-api/internal/infrastructure/db/mongo"
	redisdb "github.com/proproperty/valuation-api/internal/infrastructure/db/redis"
	"github.com/proproperty/valuation-api/internal/infrastructure/geo"
	"github.com/proproperty/valuation-api/internal/infrastructure/media"
	"github.com/proproperty/valuation-api/internal/pkg/config"
)

// Deps carries everything the router needs to assemble the handler graph.
// Redis and the model artifact are optional: a nil client disables the geo
// cache, a nil artifact makes valuations return 503 until one is loaded.
type Deps struct {
	Config   *config.Config
	DB       *mongo.Database
	Redis    *redis.Client
	Artifact *model.Artifact
	Media    *media.Store
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("proproperty"))

	// --- Dependencies ---
	var cache geo.Cache
	if deps.Redis != nil {
		cache = redisdb.NewGeoCache(deps.Redis, deps.Logger)
	}
	remote := geo.NewRemoteClient(geo.RemoteConfig{
		PostalBaseURL:    deps.Config.Geo.PostalBaseURL,
		NominatimBaseURL: deps.Config.Geo.NominatimBaseURL,
		UserAgent:        deps.Config.Geo.UserAgent,
		PostalTimeout:    deps.Config.Geo.PostalTimeout,
		GeocodeTimeout:   deps.Config.Geo.GeocodeTimeout,
	})
	resolver := geo.NewResolver(remote, cache, deps.Logger)

	authRepo := mongodb.NewAuthRepository(deps.DB)
	authService := service.NewAuthService(authRepo, deps.Config.JWTSecret, deps.Config.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	predictionRepo := mongodb.NewPredictionRepository(deps.DB)
	valuationService := service.NewValuationService(predictionRepo, resolver, deps.Artifact, deps.Logger)
	valuationHandler := handler.NewValuationHandler(valuationService, deps.Media)
	predictionHandler := handler.NewPredictionHandler(valuationService)
	locationHandler := handler.NewLocationHandler(resolver)

	authMiddleware := middleware.Auth(deps.Config.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis, deps.Artifact != nil)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected API ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/valuations", valuationHandler.Create)
	v1.GET("/predictions", predictionHandler.List)
	v1.GET("/predictions/summary", predictionHandler.Summary)
	v1.GET("/predictions/map", predictionHandler.Map)
	v1.GET("/locations/pincode/:code", locationHandler.Pincode)
	v1.GET("/locations/geocode", locationHandler.Geocode)

	// Country list feeds the client's form dropdowns; no auth needed.
	e.GET("/v1/locations/countries", locationHandler.Countries)

	return e
}
