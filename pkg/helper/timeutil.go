package helper

import (
	"fmt"
	"time"

	"github.com/herculesarena/turfbooking/pkg/constant"
)

// The bookable day runs 06:00 through 02:00 of the next calendar day. Minutes
// are counted from midnight of the booking date and widened past 1440 for the
// after-midnight hours, so 01:30 is minute 1530, not 90. This keeps the
// operating day a single contiguous range with no wrap arithmetic.
const (
	OperatingDayStartMinute = 6 * constant.MinutesPerHour  // 06:00
	OperatingDayEndMinute   = 26 * constant.MinutesPerHour // 02:00 next day
	SlotDurationMinutes     = 30
)

// ParseTimeLabel converts an "HH:MM" label to its wall-clock minute of day.
func ParseTimeLabel(label string) (int, error) {
	t, err := time.Parse(constant.HoursFormat, label)
	if err != nil {
		return 0, fmt.Errorf("invalid time label %q: %w", label, err)
	}

	return t.Hour()*constant.MinutesPerHour + t.Minute(), nil
}

// TimeLabel formats a widened operating-day minute back to its "HH:MM"
// wall-clock label.
func TimeLabel(minute int) string {
	wrapped := minute % constant.MinutesPerDay

	return fmt.Sprintf("%02d:%02d", wrapped/constant.MinutesPerHour, wrapped%constant.MinutesPerHour)
}

// OperatingDayMinute converts an "HH:MM" label to its position in the widened
// operating day: labels before 06:00 belong to the tail of the previous
// calendar day's window and land past 1440.
func OperatingDayMinute(label string) (int, error) {
	m, err := ParseTimeLabel(label)
	if err != nil {
		return 0, err
	}

	if m < OperatingDayStartMinute {
		m += constant.MinutesPerDay
	}

	return m, nil
}

// OperatingDayTime resolves a widened operating-day minute of a booking date
// to an absolute instant in the application timezone. After-midnight minutes
// land on the day following the booking date.
func OperatingDayTime(bookingDate string, minute int) (time.Time, error) {
	dateObj, err := time.Parse(constant.DateFormat, bookingDate)
	if err != nil {
		return time.Time{}, err
	}

	timezone := time.UTC
	if AppTimezone != nil {
		timezone = AppTimezone
	}

	midnight := time.Date(dateObj.Year(), dateObj.Month(), dateObj.Day(), 0, 0, 0, 0, timezone)

	return midnight.Add(time.Duration(minute) * time.Minute), nil
}

// IsBookingTimeValid checks that the booking's wall-clock start is not in the
// past.
func IsBookingTimeValid(bookingDate, startLabel string) (bool, error) {
	minute, err := OperatingDayMinute(startLabel)
	if err != nil {
		return false, err
	}

	start, err := OperatingDayTime(bookingDate, minute)
	if err != nil {
		return false, err
	}

	return start.After(NowInAppTimezone()), nil
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone
func InitTimezone(timezone string) error {
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		AppTimezone = time.UTC

		return nil
	}

	AppTimezone = loc

	return nil
}

// NowInAppTimezone returns the current time in the application's timezone
func NowInAppTimezone() time.Time {
	if AppTimezone == nil {
		return time.Now().UTC()
	}

	return time.Now().In(AppTimezone)
}

// ToAppTimezone converts a time to the application's timezone
func ToAppTimezone(t time.Time) time.Time {
	if AppTimezone == nil {
		return t.UTC()
	}

	return t.In(AppTimezone)
}
