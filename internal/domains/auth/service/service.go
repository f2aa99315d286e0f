package service

import (
	"context"

	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/domains/auth/dto"
	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/jwt"
	"github.com/herculesarena/turfbooking/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go -package=mock github.com/herculesarena/turfbooking/internal/domains/auth/service AuthService

// AuthService signs in the single operator account configured from the
// environment. There is no user store; staff credentials live in config.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
}

type authService struct {
	cfg    *config.Config
	logger logger.Interface
}

func New(cfg *config.Config, l logger.Interface) AuthService {
	return &authService{
		cfg:    cfg,
		logger: l,
	}
}

const (
	identifier = "service - auth - %s"

	adminSubject = "admin"
)

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	if req.Email != s.cfg.Admin.Email {
		err = failure.Unauthorized("invalid email or password")
		s.logger.Error(identifier, "login - unknown email: %s", req.Email)

		return res, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		err = failure.Unauthorized("invalid email or password")
		s.logger.Error(identifier, "login - password mismatch for %s", req.Email)

		return res, err
	}

	return s.issueTokens(req.Email)
}

func (s *authService) Refresh(_ context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	claims, err := jwt.ValidateToken(req.RefreshToken)
	if err != nil {
		err = failure.Unauthorized("invalid refresh token")
		s.logger.Error(identifier, "refresh - validate error: %w", err)

		return res, err
	}

	if claims.TokenType != constant.JwtTokenTypeRefresh {
		err = failure.Unauthorized("not a refresh token")
		s.logger.Error(identifier, "refresh - wrong token type: %s", claims.TokenType)

		return res, err
	}

	return s.issueTokens(claims.Email)
}

func (s *authService) issueTokens(email string) (res dto.LoginResponse, err error) {
	accessToken, err := jwt.GenerateAccessToken(adminSubject, email, constant.UserRoleAdmin)
	if err != nil {
		s.logger.Error(identifier, "issue - failed to generate access token: %w", err)

		return res, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(adminSubject, email, constant.UserRoleAdmin)
	if err != nil {
		s.logger.Error(identifier, "issue - failed to generate refresh token: %w", err)

		return res, err
	}

	return dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
