package service

import (
	"context"

	"github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/herculesarena/turfbooking/pkg/helper"
	"github.com/herculesarena/turfbooking/pkg/logger"
)

// SchedulerService sweeps confirmed bookings whose playing time has fully
// elapsed and marks them completed. It runs from cron, not from a request.
type SchedulerService struct {
	store  repository.Store
	logger logger.Interface
}

func NewSchedulerService(store repository.Store, l logger.Interface) *SchedulerService {
	return &SchedulerService{
		store:  store,
		logger: l,
	}
}

const schedulerIdentifier = "service - booking scheduler - %s"

func (s *SchedulerService) CompleteFinishedBookings(ctx context.Context) error {
	bookings, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(schedulerIdentifier, "sweep - failed to list bookings: %w", err)

		return err
	}

	now := helper.NowInAppTimezone()
	completed := 0

	for _, booking := range bookings {
		if booking.Status != constant.BookingStatusConfirmed {
			continue
		}

		start, err := helper.OperatingDayMinute(booking.StartTime)
		if err != nil {
			s.logger.Error(schedulerIdentifier, "sweep - booking %s has bad start time: %w", booking.ID, err)

			continue
		}

		end, err := helper.OperatingDayTime(booking.Date, start+booking.DurationMinutes)
		if err != nil {
			s.logger.Error(schedulerIdentifier, "sweep - booking %s has bad date: %w", booking.ID, err)

			continue
		}

		if !end.Before(now) {
			continue
		}

		if err := s.store.UpdateStatus(ctx, booking.ID, constant.BookingStatusCompleted); err != nil {
			s.logger.Error(schedulerIdentifier, "sweep - failed to complete booking %s: %w", booking.ID, err)

			continue
		}

		completed++
	}

	if completed > 0 {
		s.logger.Info(schedulerIdentifier, "sweep - completed %d finished bookings", completed)
	}

	return nil
}
