package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/internal/admin"
	"github.com/NihalDR/Lingam-Aabharanam/internal/handler"
	mid "github.com/NihalDR/Lingam-Aabharanam/internal/middleware"
	"github.com/NihalDR/Lingam-Aabharanam/internal/notify"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/config"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/jwtutil"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
	"github.com/NihalDR/Lingam-Aabharanam/pkg/storage"
	"github.com/NihalDR/Lingam-Aabharanam/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Open the embedded store. A failed open degrades to empty reads and
	// no-op writes rather than stopping the service.
	store := storage.Open(appConfig.Store.Path)
	defer store.Close()
	log.Info("Store opened",
		zap.String("path", appConfig.Store.Path),
		zap.Bool("persistent", store.Available()))

	// Repositories and services
	products := repository.NewProductRepository(store)
	appointments := repository.NewAppointmentRepository(store)
	testimonials := repository.NewTestimonialRepository(store)
	cart := repository.NewCartRepository(store)
	adminSvc := admin.NewService(store, products, appointments, testimonials)

	info := notify.StoreInfo{
		Name:           appConfig.Storefront.Name,
		Email:          appConfig.Storefront.Email,
		Website:        appConfig.Storefront.Website,
		WhatsAppNumber: appConfig.Storefront.WhatsAppNumber,
		TaxRate:        appConfig.Storefront.TaxRate,
	}

	authH := handler.NewAuthHandler(appConfig.Admin.Email)
	productH := handler.NewProductHandler(products)
	appointmentH := handler.NewAppointmentHandler(appointments, info)
	testimonialH := handler.NewTestimonialHandler(testimonials)
	cartH := handler.NewCartHandler(cart, info)
	adminH := handler.NewAdminHandler(adminSvc)
	healthH := handler.NewHealthHandler(store)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware(log))

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", healthH.HealthCheck)
	e.GET("/", handler.Hello)

	// Public storefront routes
	api := e.Group("/api")
	api.POST("/auth/login", authH.Login)
	api.GET("/products", productH.ListProducts)
	api.GET("/products/:id", productH.GetProduct)
	api.GET("/testimonials", testimonialH.ListApproved)
	api.GET("/testimonials/homepage", testimonialH.ListHomepage)
	api.POST("/testimonials", testimonialH.CreateTestimonial)
	api.GET("/appointments/slots", appointmentH.AvailableSlots)
	api.POST("/appointments", appointmentH.CreateAppointment)

	// Cart routes (session cart, no auth required)
	api.GET("/cart", cartH.GetCart)
	api.POST("/cart/items", cartH.AddItem)
	api.PATCH("/cart/items/:id", cartH.UpdateQuantity)
	api.DELETE("/cart/items/:id", cartH.RemoveItem)
	api.DELETE("/cart", cartH.ClearCart)
	api.POST("/cart/checkout", cartH.Checkout)

	// Admin routes - JWT and admin role required
	adminAPI := e.Group("/api/admin", mid.AuthMiddleware, mid.RequireAdmin)
	adminAPI.GET("/stats", adminH.GetStats)
	adminAPI.GET("/activity", adminH.GetRecentActivity)
	adminAPI.GET("/health", adminH.SystemHealth)
	adminAPI.POST("/products", productH.CreateProduct)
	adminAPI.PUT("/products/:id", productH.UpdateProduct)
	adminAPI.DELETE("/products/:id", productH.DeleteProduct)
	adminAPI.DELETE("/products", productH.ClearProducts)
	adminAPI.POST("/products/bulk", adminH.BulkUpdateProducts)
	adminAPI.GET("/appointments", appointmentH.ListAppointments)
	adminAPI.GET("/appointments/:id", appointmentH.GetAppointment)
	adminAPI.PATCH("/appointments/:id/status", appointmentH.UpdateAppointmentStatus)
	adminAPI.DELETE("/appointments/:id", appointmentH.DeleteAppointment)
	adminAPI.GET("/testimonials", testimonialH.ListTestimonials)
	adminAPI.PATCH("/testimonials/:id/approval", testimonialH.ToggleApproval)
	adminAPI.PATCH("/testimonials/:id/homepage", testimonialH.ToggleHomepage)
	adminAPI.DELETE("/testimonials/:id", testimonialH.DeleteTestimonial)
	adminAPI.DELETE("/testimonials", testimonialH.ClearTestimonials)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
