// Package engine computes the slot sheet for one turf on one bookable day.
// It is pure: identical inputs always produce identical output, and no input
// that type-checks is an error.
package engine

import (
	bookingRepo "github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	turfRepo "github.com/herculesarena/turfbooking/internal/domains/turfs/repository"
	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/herculesarena/turfbooking/pkg/helper"
)

// Slot is one 30-minute unit of the bookable day, derived on every query and
// never stored.
type Slot struct {
	Time      string  `json:"time"`
	Available bool    `json:"available"`
	IsPeak    bool    `json:"is_peak"`
	Price     float64 `json:"price"`
}

const (
	peakStartHour  = 18
	peakEndHour    = 23
	peakMultiplier = 1.2

	// SlotsPerDay is the fixed length of every generated sheet.
	SlotsPerDay = (helper.OperatingDayEndMinute - helper.OperatingDayStartMinute) / helper.SlotDurationMinutes
)

// Generate returns the fixed 40-slot sheet for the turf on the given date, in
// chronological operating-day order 06:00 through 01:30. The bookings slice
// may contain any turf and any date; filtering happens here. A slot is
// unavailable iff a non-cancelled booking for the same turf and date overlaps
// it, and an unavailable slot reports price 0.
func Generate(turf turfRepo.Turf, date string, bookings []bookingRepo.Booking) []Slot {
	slots := make([]Slot, 0, SlotsPerDay)

	for m := helper.OperatingDayStartMinute; m < helper.OperatingDayEndMinute; m += helper.SlotDurationMinutes {
		label := helper.TimeLabel(m)

		hour := (m / constant.MinutesPerHour) % 24
		peak := hour >= peakStartHour && hour <= peakEndHour

		hourly := turf.BasePricePerHour
		if peak {
			hourly = turf.BasePricePerHour * peakMultiplier
		}

		booked := false

		for _, b := range bookings {
			if b.TurfID != turf.ID || b.Date != date || b.Status == constant.BookingStatusCancelled {
				continue
			}

			if Overlaps(label, helper.SlotDurationMinutes, b.StartTime, b.DurationMinutes) {
				booked = true

				break
			}
		}

		price := hourly / 2
		if booked {
			price = 0
		}

		slots = append(slots, Slot{
			Time:      label,
			Available: !booked,
			IsPeak:    peak,
			Price:     price,
		})
	}

	return slots
}

// Overlaps reports whether the half-open intervals [slotStart, slotStart+slotDuration)
// and [bookingStart, bookingStart+bookingDuration) intersect, both taken as
// wall-clock minutes of day. Touching boundaries (end == start) do not overlap.
// A label that fails to parse never overlaps anything.
func Overlaps(slotStart string, slotDuration int, bookingStart string, bookingDuration int) bool {
	s1, err := helper.ParseTimeLabel(slotStart)
	if err != nil {
		return false
	}

	s2, err := helper.ParseTimeLabel(bookingStart)
	if err != nil {
		return false
	}

	e1 := s1 + slotDuration
	e2 := s2 + bookingDuration

	return s1 < e2 && e1 > s2
}
