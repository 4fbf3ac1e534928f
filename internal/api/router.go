package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/api-productos/products-api/docs"
	"github.com/api-productos/products-api/internal/api/handler"
	"github.com/api-productos/products-api/internal/api/middleware"
	"github.com/api-productos/products-api/internal/auth"
	"github.com/api-productos/products-api/internal/core/domain"
	"github.com/api-productos/products-api/internal/core/service"
	"github.com/api-productos/products-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, codec *auth.TokenCodec, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("products_api"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	authService := service.NewAuthService(userRepo, codec, logger)
	productService := service.NewProductService(productRepo, logger)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	authenticate := middleware.Authenticate(codec, logger)

	// --- Versioned API ---
	v1 := e.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/profile", authHandler.Profile, authenticate)

	products := v1.Group("/products")
	products.POST("", productHandler.Create, authenticate)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update, authenticate)
	products.DELETE("/:id", productHandler.Delete, authenticate)
	products.DELETE("/:id/permanent", productHandler.PermanentDelete,
		authenticate, middleware.Authorize(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
