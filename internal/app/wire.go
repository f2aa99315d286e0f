//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/delivery/http"

	authHandler "github.com/herculesarena/turfbooking/internal/domains/auth/handler"
	authService "github.com/herculesarena/turfbooking/internal/domains/auth/service"

	turfHandler "github.com/herculesarena/turfbooking/internal/domains/turfs/handler"
	turfService "github.com/herculesarena/turfbooking/internal/domains/turfs/service"

	slotHandler "github.com/herculesarena/turfbooking/internal/domains/slots/handler"
	slotService "github.com/herculesarena/turfbooking/internal/domains/slots/service"

	bookingHandler "github.com/herculesarena/turfbooking/internal/domains/bookings/handler"
	bookingService "github.com/herculesarena/turfbooking/internal/domains/bookings/service"
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var turfDomain = wire.NewSet(
	turfService.New,
	turfHandler.New,
)

var slotDomain = wire.NewSet(
	slotService.New,
	slotHandler.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
	bookingHandler.New,
)

var domains = wire.NewSet(
	authDomain,
	turfDomain,
	slotDomain,
	bookingDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideBookingStore,
		provideTurfCatalog,
		provideGateway,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
