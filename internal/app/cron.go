package app

import (
	"context"

	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/service"
	"github.com/herculesarena/turfbooking/pkg/logger"
	"github.com/robfig/cron/v3"
)

func Cron(store repository.Store, cfg *config.Config, l logger.Interface) {
	schedulerService := service.NewSchedulerService(store, l)

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.BookingsCompletion, func() {
		ctx := context.WithoutCancel(context.Background())

		if err := schedulerService.CompleteFinishedBookings(ctx); err != nil {
			l.Error("Cron job - CompleteFinishedBookings failed: %v", err)
		}
	})
	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return
	}

	c.Start()
}
