package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/dto"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	storeMock "github.com/herculesarena/turfbooking/internal/domains/bookings/repository/mock"
	"github.com/herculesarena/turfbooking/internal/domains/payments/gateway"
	gatewayMock "github.com/herculesarena/turfbooking/internal/domains/payments/gateway/mock"
	turfRepo "github.com/herculesarena/turfbooking/internal/domains/turfs/repository"
	turfMock "github.com/herculesarena/turfbooking/internal/domains/turfs/repository/mock"
	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/gdto"
	log "github.com/herculesarena/turfbooking/pkg/logger/mock"
	cacheMock "github.com/herculesarena/turfbooking/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	errCacheMiss = errors.New("cache miss")
	errStoreDown = errors.New("connection refused")
)

const futureDate = "2030-06-01"

type bookingMocks struct {
	store   *storeMock.MockStore
	turfs   *turfMock.MockQuerier
	gateway *gatewayMock.MockGateway
	cache   *cacheMock.MockIRedisCache
	logger  *log.MockInterface
}

func newBookingService(t *testing.T) (BookingService, bookingMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := bookingMocks{
		store:   storeMock.NewMockStore(ctrl),
		turfs:   turfMock.NewMockQuerier(ctrl),
		gateway: gatewayMock.NewMockGateway(ctrl),
		cache:   cacheMock.NewMockIRedisCache(ctrl),
		logger:  log.NewMockInterface(ctrl),
	}

	m.logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.Duration = 60

	return New(m.store, m.turfs, m.gateway, m.cache, cfg, m.logger), m
}

var testTurf = turfRepo.Turf{
	ID:               "turf-1",
	Name:             "Hercules Cricket Ground",
	Type:             constant.TurfTypeCricket,
	BasePricePerHour: 1200,
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	baseReq := dto.CreateBookingRequest{
		TurfID:        "turf-1",
		Date:          futureDate,
		Slots:         []string{"18:00", "18:30"},
		CustomerName:  "Rahul Sharma",
		CustomerPhone: "+919876543210",
		PaymentMode:   constant.PaymentModeFull,
		PaymentMethod: constant.PaymentMethodOnline,
	}

	t.Run("success: full online payment", func(t *testing.T) {
		service, m := newBookingService(t)

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{}, nil)
		m.gateway.EXPECT().
			Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req gateway.Charge) (gateway.Receipt, error) {
				// two peak slots at 1200*1.2/2 each
				assert.Equal(t, float64(1440), req.Amount)

				return gateway.Receipt{TransactionID: "txn-1"}, nil
			})
		m.store.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking repository.Booking) error {
				assert.Equal(t, "18:00", booking.StartTime)
				assert.Equal(t, 60, booking.DurationMinutes)
				assert.Equal(t, float64(1440), booking.TotalAmount)
				assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)
				assert.Equal(t, constant.PaymentStatusPaid, booking.PaymentStatus)

				return nil
			})

		res, err := service.CreateBooking(ctx, baseReq)

		assert.NoError(t, err)
		assert.Equal(t, float64(1440), res.AmountCharged)
		assert.Equal(t, "txn-1", res.TransactionID)
		assert.Equal(t, "Hercules Cricket Ground", res.Booking.TurfName)
		assert.Equal(t, "19:00", res.Booking.EndTime)
	})

	t.Run("success: advance charges 30 percent rounded up", func(t *testing.T) {
		service, m := newBookingService(t)

		req := baseReq
		req.PaymentMode = constant.PaymentModeAdvance

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{}, nil)
		m.gateway.EXPECT().
			Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, charge gateway.Charge) (gateway.Receipt, error) {
				assert.Equal(t, float64(432), charge.Amount)

				return gateway.Receipt{TransactionID: "txn-2"}, nil
			})
		m.store.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking repository.Booking) error {
				assert.Equal(t, constant.PaymentStatusPartial, booking.PaymentStatus)
				assert.Equal(t, float64(1440), booking.TotalAmount)

				return nil
			})

		res, err := service.CreateBooking(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, float64(432), res.AmountCharged)
	})

	t.Run("success: cash skips the gateway and stays pending", func(t *testing.T) {
		service, m := newBookingService(t)

		req := baseReq
		req.PaymentMethod = constant.PaymentMethodCash

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{}, nil)
		m.store.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking repository.Booking) error {
				assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
				assert.Equal(t, constant.PaymentMethodCash, booking.PaymentMethod)

				return nil
			})

		res, err := service.CreateBooking(ctx, req)

		assert.NoError(t, err)
		assert.Empty(t, res.TransactionID)
	})

	t.Run("error: slot already taken", func(t *testing.T) {
		service, m := newBookingService(t)

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{
			{
				ID:              "BK-1",
				TurfID:          "turf-1",
				Date:            futureDate,
				StartTime:       "18:00",
				DurationMinutes: 30,
				Status:          constant.BookingStatusConfirmed,
			},
		}, nil)

		_, err := service.CreateBooking(ctx, baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: cancelled booking does not block", func(t *testing.T) {
		service, m := newBookingService(t)

		req := baseReq
		req.PaymentMethod = constant.PaymentMethodCash

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{
			{
				ID:              "BK-1",
				TurfID:          "turf-1",
				Date:            futureDate,
				StartTime:       "18:00",
				DurationMinutes: 30,
				Status:          constant.BookingStatusCancelled,
			},
		}, nil)
		m.store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.CreateBooking(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("error: non-contiguous selection", func(t *testing.T) {
		service, m := newBookingService(t)

		req := baseReq
		req.Slots = []string{"18:00", "19:00"}

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{}, nil)

		_, err := service.CreateBooking(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: booking in the past", func(t *testing.T) {
		service, m := newBookingService(t)

		req := baseReq
		req.Date = "2020-01-01"

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{}, nil)

		_, err := service.CreateBooking(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: unknown turf", func(t *testing.T) {
		service, m := newBookingService(t)

		req := baseReq
		req.TurfID = "turf-99"

		m.turfs.EXPECT().GetTurfByID("turf-99").Return(turfRepo.Turf{}, false)

		_, err := service.CreateBooking(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: gateway failure leaves nothing persisted", func(t *testing.T) {
		service, m := newBookingService(t)

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{}, nil)
		m.gateway.EXPECT().
			Charge(gomock.Any(), gomock.Any()).
			Return(gateway.Receipt{}, errors.New("declined"))

		_, err := service.CreateBooking(ctx, baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: store unavailable", func(t *testing.T) {
		service, m := newBookingService(t)

		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)
		m.store.EXPECT().List(gomock.Any()).Return(nil, errStoreDown)

		_, err := service.CreateBooking(ctx, baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestBookingService_GetBookingByID(t *testing.T) {
	ctx := context.Background()

	stored := []repository.Booking{
		{
			ID:              "BK-1",
			TurfID:          "turf-1",
			Date:            futureDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          constant.BookingStatusConfirmed,
		},
	}

	t.Run("success", func(t *testing.T) {
		service, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		m.store.EXPECT().List(gomock.Any()).Return(stored, nil)
		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)

		res, err := service.GetBookingByID(ctx, "BK-1")

		assert.NoError(t, err)
		assert.Equal(t, "BK-1", res.ID)
		assert.Equal(t, "11:00", res.EndTime)
		assert.Equal(t, "Hercules Cricket Ground", res.TurfName)
	})

	t.Run("error: not found", func(t *testing.T) {
		service, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		m.store.EXPECT().List(gomock.Any()).Return(stored, nil)

		_, err := service.GetBookingByID(ctx, "BK-404")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_GetAllBookings(t *testing.T) {
	ctx := context.Background()

	stored := []repository.Booking{
		{ID: "BK-1", TurfID: "turf-1", Date: "2026-01-10", Status: constant.BookingStatusConfirmed, CreatedAt: 1},
		{ID: "BK-2", TurfID: "turf-1", Date: "2026-01-11", Status: constant.BookingStatusCancelled, CreatedAt: 2},
		{ID: "BK-3", TurfID: "turf-1", Date: "2026-01-12", Status: constant.BookingStatusConfirmed, CreatedAt: 3},
	}

	t.Run("success: all, newest first", func(t *testing.T) {
		service, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		m.store.EXPECT().List(gomock.Any()).Return(stored, nil)
		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true).AnyTimes()

		res, err := service.GetAllBookings(ctx, gdto.PaginationRequest{Filter: constant.BookingFilterAll})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalItems)
		assert.Equal(t, "BK-3", res.Bookings[0].ID)
	})

	t.Run("success: filter by status", func(t *testing.T) {
		service, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		m.store.EXPECT().List(gomock.Any()).Return(stored, nil)
		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true).AnyTimes()

		res, err := service.GetAllBookings(ctx, gdto.PaginationRequest{Filter: "cancelled"})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalItems)
		assert.Equal(t, "BK-2", res.Bookings[0].ID)
	})

	t.Run("success: pagination windows the list", func(t *testing.T) {
		service, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		m.store.EXPECT().List(gomock.Any()).Return(stored, nil)
		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true).AnyTimes()

		res, err := service.GetAllBookings(ctx, gdto.PaginationRequest{Page: 2, Limit: 2})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalItems)
		assert.Equal(t, 2, res.TotalPages)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("error: store unavailable", func(t *testing.T) {
		service, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		m.store.EXPECT().List(gomock.Any()).Return(nil, errStoreDown)

		_, err := service.GetAllBookings(ctx, gdto.PaginationRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: confirmed to cancelled", func(t *testing.T) {
		service, m := newBookingService(t)

		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{
			{ID: "BK-1", TurfID: "turf-1", StartTime: "10:00", Status: constant.BookingStatusConfirmed},
		}, nil)
		m.store.EXPECT().UpdateStatus(gomock.Any(), "BK-1", constant.BookingStatusCancelled).Return(nil)
		m.turfs.EXPECT().GetTurfByID("turf-1").Return(testTurf, true)

		res, err := service.UpdateBookingStatus(ctx, "BK-1", constant.BookingStatusCancelled)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusCancelled, res.Status)
	})

	t.Run("error: already completed", func(t *testing.T) {
		service, m := newBookingService(t)

		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{
			{ID: "BK-1", Status: constant.BookingStatusCompleted},
		}, nil)

		_, err := service.UpdateBookingStatus(ctx, "BK-1", constant.BookingStatusCancelled)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: not found", func(t *testing.T) {
		service, m := newBookingService(t)

		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{}, nil)

		_, err := service.UpdateBookingStatus(ctx, "BK-404", constant.BookingStatusCancelled)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("success: cancelled bookings excluded from revenue", func(t *testing.T) {
		service, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		m.store.EXPECT().List(gomock.Any()).Return([]repository.Booking{
			{ID: "BK-1", TotalAmount: 1440, Status: constant.BookingStatusConfirmed},
			{ID: "BK-2", TotalAmount: 600, Status: constant.BookingStatusCancelled},
			{ID: "BK-3", TotalAmount: 900, Status: constant.BookingStatusCompleted},
		}, nil)
		m.turfs.EXPECT().GetTurfs().Return([]turfRepo.Turf{testTurf, {ID: "turf-2"}})

		res, err := service.GetStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, float64(2340), res.TotalRevenue)
		assert.Equal(t, 3, res.TotalBookings)
		assert.Equal(t, 2, res.ActiveTurfs)
	})
}
