package service

import (
	"context"
	"fmt"

	"github.com/herculesarena/turfbooking/internal/domains/turfs/dto"
	"github.com/herculesarena/turfbooking/internal/domains/turfs/repository"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go -package=mock github.com/herculesarena/turfbooking/internal/domains/turfs/service TurfService

type TurfService interface {
	Get(ctx context.Context, id string) (dto.TurfResponse, error)
	GetAll(ctx context.Context) (dto.GetTurfsResponse, error)
}

// The catalog is embedded and immutable, so there is nothing to cache or
// invalidate here.
type turfService struct {
	repo   repository.Querier
	logger logger.Interface
}

func New(repo repository.Querier, l logger.Interface) TurfService {
	return &turfService{
		repo:   repo,
		logger: l,
	}
}

const (
	identifier = "service - turf - %s"
)

func (s *turfService) Get(_ context.Context, id string) (res dto.TurfResponse, err error) {
	turf, ok := s.repo.GetTurfByID(id)
	if !ok {
		err = failure.NotFound(fmt.Sprintf("turf %s - not found", id))
		s.logger.Error(identifier, "get - turf not found: %w", err)

		return res, err
	}

	return res.FromModel(turf), nil
}

func (s *turfService) GetAll(_ context.Context) (res dto.GetTurfsResponse, err error) {
	res.FromModel(s.repo.GetTurfs())

	return res, nil
}
