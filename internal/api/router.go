package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/demostore/catalog-api/docs"
	"github.com/demostore/catalog-api/internal/api/handler"
	"github.com/demostore/catalog-api/internal/api/middleware"
	"github.com/demostore/catalog-api/internal/api/session"
	"github.com/demostore/catalog-api/internal/core/ports"
	"github.com/demostore/catalog-api/internal/core/service"
	"github.com/demostore/catalog-api/internal/infrastructure/config"
	mongodb "github.com/demostore/catalog-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	cookies := session.NewCookieManager(cfg.CookieName, codec.TTL(), cfg.IsProduction())

	var verifier ports.CredentialVerifier
	if cfg.AuthBackend == "mongo" {
		verifier = service.NewUserStoreVerifier(mongodb.NewUserRepository(db))
	} else {
		verifier = service.NewDemoVerifier(cfg.DemoEmail, cfg.DemoPassword)
	}

	authService := service.NewAuthService(verifier, codec, log)
	authHandler := handler.NewAuthHandler(authService, cookies)

	productRepo := mongodb.NewProductRepository(db)
	productService := service.NewProductService(productRepo, log)
	productHandler := handler.NewProductHandler(productService)

	authGate := middleware.Auth(cookies, codec)

	// --- Root & operational routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API is running")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authGate)

	// --- Catalog routes (all behind the auth gate) ---
	products := e.Group("/products", authGate)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.PATCH("/:id/status", productHandler.UpdateStatus)
	products.DELETE("/:id", productHandler.Delete)

	return e
}
