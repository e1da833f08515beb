package server

import (
	"seafood-exporter-api/internal/handler"
	"seafood-exporter-api/internal/middleware"
	"seafood-exporter-api/internal/service"
	"seafood-exporter-api/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const AppName = "Seafood Exporter API v1.0"

// Deps are the wired services the HTTP layer needs.
type Deps struct {
	Catalog service.CatalogService
	Inquiry service.InquiryService
	System  *handler.SystemHandler
	Hub     *ws.Hub

	JWTSecret        []byte
	InquiryRateLimit int
	LimiterStorage   fiber.Storage // nil keeps limiter state in memory
	DisableAccessLog bool
}

// NewApp builds the Fiber app with middleware and every route.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      AppName,
		ErrorHandler: handler.ErrorHandler,
	})

	if !d.DisableAccessLog {
		app.Use(logger.New()) // Logging request
	}
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS, all origins

	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	inquiryHandler := handler.NewInquiryHandler(d.Inquiry)

	// ============ PUBLIC ROUTES ============
	app.Get("/", d.System.Root)
	app.Get("/test", d.System.Diagnostics)

	api := app.Group("/api")
	api.Get("/products", catalogHandler.GetProducts)
	api.Post("/inquiries", middleware.InquiryLimiter(d.InquiryRateLimit, d.LimiterStorage), inquiryHandler.CreateInquiry)

	// ============ ADMIN ROUTES ============
	admin := api.Group("/admin", middleware.RequireAdmin(d.JWTSecret))
	admin.Get("/inquiries", inquiryHandler.GetInquiries)

	if d.Hub != nil {
		app.Use("/ws", handler.RequireUpgrade, middleware.RequireAdmin(d.JWTSecret))
		app.Get("/ws", handler.NewWebSocketHandler(d.Hub))
	}

	return app
}
