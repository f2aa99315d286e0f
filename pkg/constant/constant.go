package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "turfbooking"
)

const (
	RequestParamID = "id"

	RequestValidateUUID = "required,uuid"
	RequestValidateDate = "required,datetime=2006-01-02"
)

const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

const (
	PaymentStatusPaid    = "PAID"
	PaymentStatusPartial = "PARTIAL"
	PaymentStatusPending = "PENDING"

	PaymentMethodOnline = "ONLINE"
	PaymentMethodCash   = "CASH"

	PaymentModeFull    = "FULL"
	PaymentModeAdvance = "ADVANCE"

	PaymentCurrencyINR = "INR"
)

const (
	TurfTypeCricket    = "CRICKET"
	TurfTypePickleball = "PICKLEBALL"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

const (
	UserRoleAdmin = "9"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldLevel = "level"

	JwtTokenTypeAccess  = "access_token"
	JwtTokenTypeRefresh = "refresh_token"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

const (
	BookingFilterAll   = "all"
	BookingFilterToday = "today"
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
