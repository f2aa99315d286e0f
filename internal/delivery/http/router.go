package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/herculesarena/turfbooking/config"
	_ "github.com/herculesarena/turfbooking/docs" // Swagger docs
	authHandler "github.com/herculesarena/turfbooking/internal/domains/auth/handler"
	bookingHandler "github.com/herculesarena/turfbooking/internal/domains/bookings/handler"
	slotHandler "github.com/herculesarena/turfbooking/internal/domains/slots/handler"
	turfHandler "github.com/herculesarena/turfbooking/internal/domains/turfs/handler"

	"github.com/herculesarena/turfbooking/internal/delivery/http/middleware"
	"github.com/herculesarena/turfbooking/pkg/logger"
)

type Handlers struct {
	Auth    *authHandler.Handler
	Turf    *turfHandler.Handler
	Slot    *slotHandler.Handler
	Booking *bookingHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title hercules arena API
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/v1")
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.Turf.RegisterRoutes(apiV1Group)
		handlers.Slot.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
