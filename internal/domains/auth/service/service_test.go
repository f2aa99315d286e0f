package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/domains/auth/dto"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/jwt"
	log "github.com/herculesarena/turfbooking/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	jwt.Initialize("test-app", "test-secret-key", time.Hour, time.Hour*24)
}

func testConfig(t *testing.T, password string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	cfg := &config.Config{}
	cfg.Admin.Email = "admin@herculesarena.com"
	cfg.Admin.PasswordHash = string(hash)

	return cfg
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLogger := log.NewMockInterface(ctrl)
		service := New(testConfig(t, "password123"), mockLogger)

		res, err := service.Login(ctx, dto.LoginRequest{
			Email:    "admin@herculesarena.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})

	t.Run("error: unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		service := New(testConfig(t, "password123"), mockLogger)

		res, err := service.Login(ctx, dto.LoginRequest{
			Email:    "someone@else.com",
			Password: "password123",
		})

		assert.Error(t, err)
		assert.Empty(t, res.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		service := New(testConfig(t, "password123"), mockLogger)

		res, err := service.Login(ctx, dto.LoginRequest{
			Email:    "admin@herculesarena.com",
			Password: "not-the-password",
		})

		assert.Error(t, err)
		assert.Empty(t, res.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLogger := log.NewMockInterface(ctrl)
		cfg := testConfig(t, "password123")
		service := New(cfg, mockLogger)

		login, err := service.Login(ctx, dto.LoginRequest{
			Email:    "admin@herculesarena.com",
			Password: "password123",
		})
		assert.NoError(t, err)

		res, err := service.Refresh(ctx, dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("error: access token is not a refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		cfg := testConfig(t, "password123")
		service := New(cfg, mockLogger)

		login, err := service.Login(ctx, dto.LoginRequest{
			Email:    "admin@herculesarena.com",
			Password: "password123",
		})
		assert.NoError(t, err)

		_, err = service.Refresh(ctx, dto.RefreshTokenRequest{RefreshToken: login.AccessToken})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: garbage token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		service := New(testConfig(t, "password123"), mockLogger)

		_, err := service.Refresh(ctx, dto.RefreshTokenRequest{RefreshToken: "not-a-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
