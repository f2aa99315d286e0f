package dto

import (
	"time"

	"github.com/herculesarena/turfbooking/internal/domains/bookings/repository"
	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/herculesarena/turfbooking/pkg/helper"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	TurfID          string  `json:"turf_id"`
	TurfName        string  `json:"turf_name,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentMethod   string  `json:"payment_method"`
	CreatedAt       string  `json:"created_at"`
}

func (r BookingResponse) FromModel(booking repository.Booking) BookingResponse {
	endTime := ""

	if start, err := helper.OperatingDayMinute(booking.StartTime); err == nil {
		endTime = helper.TimeLabel(start + booking.DurationMinutes)
	}

	return BookingResponse{
		ID:              booking.ID,
		TurfID:          booking.TurfID,
		Date:            booking.Date,
		StartTime:       booking.StartTime,
		EndTime:         endTime,
		DurationMinutes: booking.DurationMinutes,
		CustomerName:    booking.CustomerName,
		CustomerPhone:   booking.CustomerPhone,
		TotalAmount:     booking.TotalAmount,
		Status:          booking.Status,
		PaymentStatus:   booking.PaymentStatus,
		PaymentMethod:   booking.PaymentMethod,
		CreatedAt:       helper.ToAppTimezone(time.UnixMilli(booking.CreatedAt)).Format(constant.FullDateFormat),
	}
}

type CreateBookingResponse struct {
	Booking       BookingResponse `json:"booking"`
	AmountCharged float64         `json:"amount_charged"`
	TransactionID string          `json:"transaction_id,omitempty"`
	PaymentURL    string          `json:"payment_url,omitempty"`
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

func (r *GetBookingsResponse) FromModel(bookings []repository.Booking, totalItems, limit int) {
	r.Bookings = make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		r.Bookings = append(r.Bookings, BookingResponse{}.FromModel(booking))
	}

	r.TotalItems = totalItems
	r.TotalPages = helper.CalculateTotalPages(totalItems, limit)
}

type StatsResponse struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalBookings int     `json:"total_bookings"`
	TodayBookings int     `json:"today_bookings"`
	ActiveTurfs   int     `json:"active_turfs"`
}
