package engine

import (
	"testing"

	bookingRepo "github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	turfRepo "github.com/herculesarena/turfbooking/internal/domains/turfs/repository"
	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/stretchr/testify/assert"
)

var cricketGround = turfRepo.Turf{
	ID:               "turf-1",
	Name:             "Hercules Cricket Ground",
	Type:             constant.TurfTypeCricket,
	BasePricePerHour: 1200,
}

const testDate = "2026-09-05"

func TestGenerate_EmptySheet(t *testing.T) {
	slots := Generate(cricketGround, testDate, nil)

	assert.Len(t, slots, SlotsPerDay)
	assert.Equal(t, 40, len(slots))

	for _, slot := range slots {
		assert.True(t, slot.Available, slot.Time)
		assert.Positive(t, slot.Price, slot.Time)
	}
}

func TestGenerate_Order(t *testing.T) {
	slots := Generate(cricketGround, testDate, nil)

	assert.Equal(t, "06:00", slots[0].Time)
	assert.Equal(t, "23:30", slots[35].Time)
	assert.Equal(t, "00:00", slots[36].Time)
	assert.Equal(t, "01:30", slots[39].Time)
}

func TestGenerate_PeakWindowAndPrices(t *testing.T) {
	slots := Generate(cricketGround, testDate, nil)

	for _, slot := range slots {
		switch slot.Time {
		case "17:30":
			assert.False(t, slot.IsPeak)
			assert.Equal(t, float64(600), slot.Price)
		case "18:00", "20:30", "23:30":
			assert.True(t, slot.IsPeak, slot.Time)
			assert.Equal(t, float64(720), slot.Price, slot.Time)
		case "00:00", "01:30":
			// after midnight the peak window is over
			assert.False(t, slot.IsPeak, slot.Time)
			assert.Equal(t, float64(600), slot.Price, slot.Time)
		}
	}
}

func TestGenerate_BookingBlocksItsSlots(t *testing.T) {
	bookings := []bookingRepo.Booking{
		{
			ID:              "BK-1",
			TurfID:          "turf-1",
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 90,
			Status:          constant.BookingStatusConfirmed,
		},
	}

	slots := Generate(cricketGround, testDate, bookings)

	blocked := map[string]bool{"10:00": true, "10:30": true, "11:00": true}

	for _, slot := range slots {
		if blocked[slot.Time] {
			assert.False(t, slot.Available, slot.Time)
			assert.Zero(t, slot.Price, slot.Time)

			continue
		}

		assert.True(t, slot.Available, slot.Time)
		assert.Positive(t, slot.Price, slot.Time)
	}
}

func TestGenerate_CancelledBookingDoesNotBlock(t *testing.T) {
	bookings := []bookingRepo.Booking{
		{
			ID:              "BK-1",
			TurfID:          "turf-1",
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 90,
			Status:          constant.BookingStatusCancelled,
		},
	}

	slots := Generate(cricketGround, testDate, bookings)

	for _, slot := range slots {
		assert.True(t, slot.Available, slot.Time)
	}
}

func TestGenerate_OtherTurfAndDateIgnored(t *testing.T) {
	bookings := []bookingRepo.Booking{
		{
			ID:              "BK-1",
			TurfID:          "turf-2",
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          constant.BookingStatusConfirmed,
		},
		{
			ID:              "BK-2",
			TurfID:          "turf-1",
			Date:            "2026-09-06",
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          constant.BookingStatusConfirmed,
		},
	}

	slots := Generate(cricketGround, testDate, bookings)

	for _, slot := range slots {
		assert.True(t, slot.Available, slot.Time)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	bookings := []bookingRepo.Booking{
		{
			ID:              "BK-1",
			TurfID:          "turf-1",
			Date:            testDate,
			StartTime:       "18:00",
			DurationMinutes: 60,
			Status:          constant.BookingStatusConfirmed,
		},
	}

	first := Generate(cricketGround, testDate, bookings)
	second := Generate(cricketGround, testDate, bookings)

	assert.Equal(t, first, second)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name            string
		slotStart       string
		slotDuration    int
		bookingStart    string
		bookingDuration int
		want            bool
	}{
		{"touching boundaries do not overlap", "09:30", 30, "10:00", 60, false},
		{"slot ends inside booking", "09:45", 30, "10:00", 60, true},
		{"slot inside booking", "10:30", 30, "10:00", 90, true},
		{"booking inside slot window", "10:00", 30, "10:00", 30, true},
		{"booking ends at slot start", "11:00", 30, "10:00", 60, false},
		{"disjoint", "06:00", 30, "20:00", 60, false},
		{"bad slot label", "junk", 30, "10:00", 60, false},
		{"bad booking label", "10:00", 30, "junk", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.slotStart, tt.slotDuration, tt.bookingStart, tt.bookingDuration)

			assert.Equal(t, tt.want, got)
		})
	}
}
