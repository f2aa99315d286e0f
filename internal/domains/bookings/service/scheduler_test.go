package service

import (
	"context"
	"testing"

	"github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	storeMock "github.com/herculesarena/turfbooking/internal/domains/bookings/repository/mock"
	"github.com/herculesarena/turfbooking/pkg/constant"
	log "github.com/herculesarena/turfbooking/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSchedulerService_CompleteFinishedBookings(t *testing.T) {
	ctx := context.Background()

	newScheduler := func(t *testing.T) (*SchedulerService, *storeMock.MockStore) {
		t.Helper()

		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		store := storeMock.NewMockStore(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		return NewSchedulerService(store, mockLogger), store
	}

	t.Run("completes only finished confirmed bookings", func(t *testing.T) {
		scheduler, store := newScheduler(t)

		store.EXPECT().List(gomock.Any()).Return([]repository.Booking{
			// long past, confirmed: should complete
			{ID: "BK-1", Date: "2020-01-01", StartTime: "10:00", DurationMinutes: 60, Status: constant.BookingStatusConfirmed},
			// long past but cancelled: untouched
			{ID: "BK-2", Date: "2020-01-01", StartTime: "10:00", DurationMinutes: 60, Status: constant.BookingStatusCancelled},
			// far future: untouched
			{ID: "BK-3", Date: "2099-01-01", StartTime: "10:00", DurationMinutes: 60, Status: constant.BookingStatusConfirmed},
		}, nil)
		store.EXPECT().UpdateStatus(gomock.Any(), "BK-1", constant.BookingStatusCompleted).Return(nil)

		err := scheduler.CompleteFinishedBookings(ctx)

		assert.NoError(t, err)
	})

	t.Run("after-midnight booking ends on the next calendar day", func(t *testing.T) {
		scheduler, store := newScheduler(t)

		// 01:00 on the operating day of 2020-01-01 is the small hours of
		// 2020-01-02, long past either way.
		store.EXPECT().List(gomock.Any()).Return([]repository.Booking{
			{ID: "BK-1", Date: "2020-01-01", StartTime: "01:00", DurationMinutes: 30, Status: constant.BookingStatusConfirmed},
		}, nil)
		store.EXPECT().UpdateStatus(gomock.Any(), "BK-1", constant.BookingStatusCompleted).Return(nil)

		err := scheduler.CompleteFinishedBookings(ctx)

		assert.NoError(t, err)
	})

	t.Run("propagates a store read failure", func(t *testing.T) {
		scheduler, store := newScheduler(t)

		store.EXPECT().List(gomock.Any()).Return(nil, errStoreDown)

		err := scheduler.CompleteFinishedBookings(ctx)

		assert.Error(t, err)
	})
}
