package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App      App
		CORS     CORS
		Cache    Cache
		HTTP     HTTP
		Log      Log
		Redis    Redis
		Swagger  Swagger
		Schedule Schedule
		JWT      JWT
		Admin    Admin
		Payment  Payment
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Kolkata"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		Duration int `env:"CACHE_DURATIONS,required"`
	}

	HTTP struct {
		Port string `env:"HTTP_PORT,required"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required" envDefault:"info"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST,required"`
		Port     int    `env:"REDIS_PORT,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Schedule struct {
		BookingsCompletion string `env:"SCHEDULE_BOOKINGS_COMPLETION,required"`
	}

	JWT struct {
		Secret             string `env:"JWT_SECRET,required"`
		AccessTokenExpiry  string `env:"JWT_ACCESS_TOKEN_EXPIRY"  envDefault:"24h"`
		RefreshTokenExpiry string `env:"JWT_REFRESH_TOKEN_EXPIRY" envDefault:"7d"`
	}

	Admin struct {
		Email        string `env:"ADMIN_EMAIL,required"`
		PasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`
	}

	Payment struct {
		Driver        string `env:"PAYMENT_DRIVER" envDefault:"simulated"`
		ProcessingMs  int    `env:"PAYMENT_PROCESSING_MS" envDefault:"2000"`
		XenditAPIKey  string `env:"XENDIT_API_KEY"`
		XenditSuccess string `env:"XENDIT_SUCCESS_URL"`
		XenditFailure string `env:"XENDIT_FAILURE_URL"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}
