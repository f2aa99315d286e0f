package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/delivery/http"

	bookingRepository "github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	"github.com/herculesarena/turfbooking/internal/domains/payments/gateway"
	turfRepository "github.com/herculesarena/turfbooking/internal/domains/turfs/repository"

	"github.com/herculesarena/turfbooking/pkg/httpserver"
	"github.com/herculesarena/turfbooking/pkg/jwt"
	"github.com/herculesarena/turfbooking/pkg/logger"
	"github.com/herculesarena/turfbooking/pkg/redis"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	Redis      *redis.Redis
	JWT        *jwt.JWT
	Store      bookingRepository.Store
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, jwt.ParseDuration(cfg.JWT.AccessTokenExpiry), jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry))

	return jwt.GetInstance()
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideBookingStore(r *redis.Redis) bookingRepository.Store {
	return bookingRepository.NewRedisStore(r.Client)
}

func provideTurfCatalog() (turfRepository.Querier, error) {
	return turfRepository.New()
}

func provideGateway(cfg *config.Config) gateway.Gateway {
	return gateway.New(cfg)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	h http.Handlers,
) *fiber.App {
	app := fiber.New()

	http.NewRouter(
		app,
		cfg,
		l,
		h,
	)

	return app
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}
