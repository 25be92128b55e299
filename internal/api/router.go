package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/maisonbelle/booking-api/docs"
	"github.com/maisonbelle/booking-api/internal/api/handler"
	"github.com/maisonbelle/booking-api/internal/api/middleware"
	"github.com/maisonbelle/booking-api/internal/core/service"
	mongodb "github.com/maisonbelle/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/maisonbelle/booking-api/internal/infrastructure/db/redis"
	"github.com/maisonbelle/booking-api/internal/infrastructure/queue"
	"github.com/maisonbelle/booking-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered and returns it
// together with the loyalty dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("salon"))

	// --- Repositories ---
	bookingRepo := mongodb.NewBookingRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	loyaltyRepo := mongodb.NewLoyaltyRepository(db)

	// --- Services ---
	authService := service.NewAuthService(adminRepo, customerRepo, cfg.JWTSecret, cfg.TokenTTL)
	loyaltyService := service.NewLoyaltyService(loyaltyRepo, customerRepo, redisdb.NewAccrualDedup(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.AccrualWorkers, loyaltyService, log)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, dispatcher, log)
	catalogService := service.NewCatalogService(serviceRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	loyaltyHandler := handler.NewLoyaltyHandler(loyaltyService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.AdminOnly()

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.GET("/services", catalogHandler.List)
	apiGroup.GET("/availability", bookingHandler.Slots)
	apiGroup.POST("/bookings", bookingHandler.Create, middleware.OptionalAuth(cfg.JWTSecret))
	apiGroup.POST("/auth/login", authHandler.CustomerLogin)
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/admin/login", authHandler.AdminLogin)

	// --- Token-gated routes (any verified account type) ---
	// Booking mutations deliberately accept customer tokens too: customers
	// cancel and reschedule their own bookings through the same endpoints
	// the dashboard uses.
	apiGroup.PATCH("/admin/bookings/:id/cancel", bookingHandler.Cancel, authRequired)
	apiGroup.PATCH("/admin/bookings/:id/status/:value", bookingHandler.SetStatus, authRequired)

	// --- Admin-gated routes ---
	adminGroup := apiGroup.Group("/admin", authRequired, adminOnly)
	adminGroup.GET("/me", authHandler.Me)
	adminGroup.GET("/bookings", bookingHandler.List)
	adminGroup.GET("/loyalty", loyaltyHandler.List)
	adminGroup.POST("/services", catalogHandler.Create)
	adminGroup.PUT("/services/:id", catalogHandler.Update)
	adminGroup.DELETE("/services/:id", catalogHandler.Delete)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
