package dto

import (
	"github.com/herculesarena/turfbooking/internal/domains/slots/engine"
)

type GetSlotsRequest struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02" example:"2026-09-01"`
}

type GetSlotsResponse struct {
	TurfID     string        `json:"turf_id"`
	Date       string        `json:"date"`
	Slots      []engine.Slot `json:"slots"`
	TotalItems int           `json:"total_items"`
}
