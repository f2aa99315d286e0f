package service

import (
	"context"
	"fmt"

	"github.com/herculesarena/turfbooking/config"
	bookingRepo "github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	"github.com/herculesarena/turfbooking/internal/domains/slots/dto"
	"github.com/herculesarena/turfbooking/internal/domains/slots/engine"
	turfRepo "github.com/herculesarena/turfbooking/internal/domains/turfs/repository"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/helper"
	"github.com/herculesarena/turfbooking/pkg/logger"
	"github.com/herculesarena/turfbooking/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go -package=mock github.com/herculesarena/turfbooking/internal/domains/slots/service SlotService

type SlotService interface {
	GetSlots(ctx context.Context, turfID, date string) (dto.GetSlotsResponse, error)
}

type slotService struct {
	turfRepo turfRepo.Querier
	store    bookingRepo.Store
	cache    redis.IRedisCache
	cfg      *config.Config
	logger   logger.Interface
}

func New(turfs turfRepo.Querier, store bookingRepo.Store, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) SlotService {
	return &slotService{
		turfRepo: turfs,
		store:    store,
		cache:    cache,
		cfg:      cfg,
		logger:   l,
	}
}

const (
	// cacheGetSlotsKey prefixes every cached sheet; booking writes clear it.
	cacheGetSlotsKey = "slots"

	identifier = "service - slot - %s"
)

func (s *slotService) GetSlots(ctx context.Context, turfID, date string) (res dto.GetSlotsResponse, err error) {
	turf, ok := s.turfRepo.GetTurfByID(turfID)
	if !ok {
		err = failure.NotFound(fmt.Sprintf("turf %s - not found", turfID))
		s.logger.Error(identifier, "getSlots - turf not found: %w", err)

		return res, err
	}

	keyArgs := map[string]string{}
	keyArgs["turf_id"] = turfID
	keyArgs["date"] = date
	cacheKey := helper.BuildCacheKey(cacheGetSlotsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetSlotsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getSlots - cache hit for turf %s on %s", turfID, date)

		return cacheRes, nil
	}

	bookings, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(identifier, "getSlots - failed to list bookings: %w", err)

		return res, failure.StorageUnavailable(err)
	}

	slots := engine.Generate(turf, date, bookings)

	res = dto.GetSlotsResponse{
		TurfID:     turfID,
		Date:       date,
		Slots:      slots,
		TotalItems: len(slots),
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "getSlots - failed to save cache: %w", err)
		}
	}()

	return res, nil
}
