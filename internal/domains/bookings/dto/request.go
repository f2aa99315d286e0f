package dto

type CreateBookingRequest struct {
	TurfID        string   `json:"turf_id" validate:"required" example:"turf-1"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02" example:"2026-09-05"`
	Slots         []string `json:"slots" validate:"required,min=1,dive,datetime=15:04" example:"18:00,18:30"`
	CustomerName  string   `json:"customer_name" validate:"required,min=2,max=255" example:"Rahul Sharma"`
	CustomerPhone string   `json:"customer_phone" validate:"required,min=8,max=20" example:"+919876543210"`
	PaymentMode   string   `json:"payment_mode" validate:"required,oneof=FULL ADVANCE" example:"FULL"`
	PaymentMethod string   `json:"payment_method" validate:"omitempty,oneof=ONLINE CASH" example:"ONLINE"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CANCELLED COMPLETED" example:"COMPLETED"`
}
