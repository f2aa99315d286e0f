package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/dto"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	"github.com/herculesarena/turfbooking/internal/domains/payments/gateway"
	"github.com/herculesarena/turfbooking/internal/domains/slots/engine"
	turfRepo "github.com/herculesarena/turfbooking/internal/domains/turfs/repository"
	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/gdto"
	"github.com/herculesarena/turfbooking/pkg/helper"
	"github.com/herculesarena/turfbooking/pkg/logger"
	"github.com/herculesarena/turfbooking/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go -package=mock github.com/herculesarena/turfbooking/internal/domains/bookings/service BookingService

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetBookingByID(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	UpdateBookingStatus(ctx context.Context, id, status string) (dto.BookingResponse, error)
	GetStats(ctx context.Context) (dto.StatsResponse, error)
}

type bookingService struct {
	store    repository.Store
	turfRepo turfRepo.Querier
	gateway  gateway.Gateway
	cache    redis.IRedisCache
	cfg      *config.Config
	logger   logger.Interface
}

func New(
	store repository.Store,
	turfs turfRepo.Querier,
	gw gateway.Gateway,
	cache redis.IRedisCache,
	cfg *config.Config,
	l logger.Interface,
) BookingService {
	return &bookingService{
		store:    store,
		turfRepo: turfs,
		gateway:  gw,
		cache:    cache,
		cfg:      cfg,
		logger:   l,
	}
}

const (
	cacheGetBookingsKey = "bookings"
	cacheGetBookingKey  = "booking"
	cacheStatsKey       = "stats"

	// must match the slot service cache prefix, booking writes invalidate the
	// slot sheets.
	cacheGetSlotsKey = "slots"

	identifier = "service - booking - %s"

	bookingIDPrefix = "BK-"
)

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	turf, ok := s.turfRepo.GetTurfByID(req.TurfID)
	if !ok {
		err = failure.NotFound(fmt.Sprintf("turf %s - not found", req.TurfID))
		s.logger.Error(identifier, "create - turf not found: %w", err)

		return res, err
	}

	bookings, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(identifier, "create - failed to list bookings: %w", err)

		return res, failure.StorageUnavailable(err)
	}

	sheet := engine.Generate(turf, req.Date, bookings)
	selection := engine.NewSelection(sheet)

	for _, label := range req.Slots {
		if !selection.Toggle(label) {
			err = failure.Conflict(fmt.Sprintf("slot %s is not available", label))
			s.logger.Error(identifier, "create - slot taken: %w", err)

			return res, err
		}
	}

	commit, err := selection.Commit()
	if err != nil {
		if errors.Is(err, engine.ErrNonContiguousSelection) {
			err = failure.BadRequestFromString("selected slots must be contiguous")
		} else {
			err = failure.BadRequestFromString(err.Error())
		}

		s.logger.Error(identifier, "create - invalid selection: %w", err)

		return res, err
	}

	valid, err := helper.IsBookingTimeValid(req.Date, commit.StartTime)
	if err != nil {
		err = failure.BadRequestFromString(err.Error())
		s.logger.Error(identifier, "create - invalid booking time: %w", err)

		return res, err
	}

	if !valid {
		err = failure.BadRequestFromString("booking time cannot be in the past")
		s.logger.Error(identifier, "create - booking in the past: %w", err)

		return res, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = constant.PaymentMethodOnline
	}

	amountCharged := commit.TotalAmount
	if req.PaymentMode == constant.PaymentModeAdvance {
		amountCharged = helper.CalculateAdvance(commit.TotalAmount)
	}

	bookingID := bookingIDPrefix + uuid.NewString()

	paymentStatus := constant.PaymentStatusPending

	var receipt gateway.Receipt

	if method == constant.PaymentMethodOnline {
		receipt, err = s.gateway.Charge(ctx, gateway.Charge{
			OrderID:     bookingID,
			Amount:      amountCharged,
			PayerName:   req.CustomerName,
			PayerPhone:  req.CustomerPhone,
			Description: fmt.Sprintf("%s on %s at %s", turf.Name, req.Date, commit.StartTime),
		})
		if err != nil {
			s.logger.Error(identifier, "create - payment failed: %w", err)

			return res, failure.InternalError(fmt.Errorf("payment failed: %w", err))
		}

		paymentStatus = constant.PaymentStatusPaid
		if req.PaymentMode == constant.PaymentModeAdvance {
			paymentStatus = constant.PaymentStatusPartial
		}
	}

	booking := repository.Booking{
		ID:              bookingID,
		TurfID:          req.TurfID,
		Date:            req.Date,
		StartTime:       commit.StartTime,
		DurationMinutes: commit.DurationMinutes,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		TotalAmount:     commit.TotalAmount,
		Status:          constant.BookingStatusConfirmed,
		PaymentStatus:   paymentStatus,
		PaymentMethod:   method,
		CreatedAt:       time.Now().UnixMilli(),
	}

	if err = s.store.Append(ctx, booking); err != nil {
		s.logger.Error(identifier, "create - failed to append booking: %w", err)

		return res, failure.StorageUnavailable(err)
	}

	s.invalidateCaches(ctx, "create")

	booked := dto.BookingResponse{}.FromModel(booking)
	booked.TurfName = turf.Name

	return dto.CreateBookingResponse{
		Booking:       booked,
		AmountCharged: amountCharged,
		TransactionID: receipt.TransactionID,
		PaymentURL:    receipt.PaymentURL,
	}, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetBookingKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	bookings, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(identifier, "get - failed to list bookings: %w", err)

		return res, failure.StorageUnavailable(err)
	}

	for _, booking := range bookings {
		if booking.ID != id {
			continue
		}

		res = dto.BookingResponse{}.FromModel(booking)
		if turf, ok := s.turfRepo.GetTurfByID(booking.TurfID); ok {
			res.TurfName = turf.Name
		}

		go func() {
			if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
				s.logger.Error(identifier, "get - failed to save cache: %w", err)
			}
		}()

		return res, nil
	}

	err = failure.NotFound(fmt.Sprintf("booking %s - not found", id))
	s.logger.Error(identifier, "get - booking not found: %w", err)

	return res, err
}

func (s *bookingService) GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	bookings, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to list bookings: %w", err)

		return res, failure.StorageUnavailable(err)
	}

	filtered := filterBookings(bookings, req.Filter)

	// newest first
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt > filtered[j].CreatedAt
	})

	totalItems := len(filtered)
	offset := helper.CalculateOffset(page, limit)

	pageItems := []repository.Booking{}
	if offset < totalItems {
		end := offset + limit
		if end > totalItems {
			end = totalItems
		}

		pageItems = filtered[offset:end]
	}

	res.FromModel(pageItems, totalItems, limit)

	for i := range res.Bookings {
		if turf, ok := s.turfRepo.GetTurfByID(res.Bookings[i].TurfID); ok {
			res.Bookings[i].TurfName = turf.Name
		}
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "getAll - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id, status string) (res dto.BookingResponse, err error) {
	bookings, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(identifier, "updateStatus - failed to list bookings: %w", err)

		return res, failure.StorageUnavailable(err)
	}

	var existing *repository.Booking

	for i := range bookings {
		if bookings[i].ID == id {
			existing = &bookings[i]

			break
		}
	}

	if existing == nil {
		err = failure.NotFound(fmt.Sprintf("booking %s - not found", id))
		s.logger.Error(identifier, "updateStatus - booking not found: %w", err)

		return res, err
	}

	if existing.Status != constant.BookingStatusConfirmed {
		err = failure.Conflict(fmt.Sprintf("booking %s is %s and can no longer change", id, existing.Status))
		s.logger.Error(identifier, "updateStatus - invalid transition: %w", err)

		return res, err
	}

	if err = s.store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			err = failure.NotFound(fmt.Sprintf("booking %s - not found", id))
		} else {
			err = failure.StorageUnavailable(err)
		}

		s.logger.Error(identifier, "updateStatus - failed to update booking: %w", err)

		return res, err
	}

	s.invalidateCaches(ctx, "updateStatus")

	existing.Status = status
	res = dto.BookingResponse{}.FromModel(*existing)

	if turf, ok := s.turfRepo.GetTurfByID(existing.TurfID); ok {
		res.TurfName = turf.Name
	}

	return res, nil
}

func (s *bookingService) GetStats(ctx context.Context) (res dto.StatsResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheStatsKey, "summary")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	bookings, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(identifier, "stats - failed to list bookings: %w", err)

		return res, failure.StorageUnavailable(err)
	}

	today := helper.NowInAppTimezone().Format(constant.DateFormat)

	for _, booking := range bookings {
		res.TotalBookings++

		if booking.Status != constant.BookingStatusCancelled {
			res.TotalRevenue += booking.TotalAmount
		}

		if booking.Date == today {
			res.TodayBookings++
		}
	}

	res.ActiveTurfs = len(s.turfRepo.GetTurfs())

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "stats - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

// invalidateCaches drops every read model a booking write can stale: the slot
// sheets, the admin listings, single bookings and the stats summary.
func (s *bookingService) invalidateCaches(ctx context.Context, op string) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		for _, prefix := range []string{cacheGetSlotsKey, cacheGetBookingsKey, cacheGetBookingKey, cacheStatsKey} {
			if err := s.cache.Clear(ctx, helper.BuildCacheKey(prefix, "*")); err != nil {
				s.logger.Error(identifier, op+" - failed to clear cache: %w", err)
			}
		}
	}()
}

func filterBookings(bookings []repository.Booking, filter string) []repository.Booking {
	filtered := make([]repository.Booking, 0, len(bookings))

	switch {
	case filter == "" || strings.EqualFold(filter, constant.BookingFilterAll):
		filtered = append(filtered, bookings...)
	case strings.EqualFold(filter, constant.BookingFilterToday):
		today := helper.NowInAppTimezone().Format(constant.DateFormat)
		for _, booking := range bookings {
			if booking.Date == today {
				filtered = append(filtered, booking)
			}
		}
	default:
		for _, booking := range bookings {
			if strings.EqualFold(booking.Status, filter) {
				filtered = append(filtered, booking)
			}
		}
	}

	return filtered
}
