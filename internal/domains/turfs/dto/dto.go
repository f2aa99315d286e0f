package dto

import (
	"github.com/herculesarena/turfbooking/internal/domains/turfs/repository"
)

type TurfResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	BasePricePerHour float64  `json:"base_price_per_hour"`
	Image            string   `json:"image,omitempty"`
	Description      string   `json:"description,omitempty"`
	Features         []string `json:"features,omitempty"`
}

func (r TurfResponse) FromModel(turf repository.Turf) TurfResponse {
	return TurfResponse{
		ID:               turf.ID,
		Name:             turf.Name,
		Type:             turf.Type,
		BasePricePerHour: turf.BasePricePerHour,
		Image:            turf.Image,
		Description:      turf.Description,
		Features:         turf.Features,
	}
}

type GetTurfsResponse struct {
	Turfs      []TurfResponse `json:"turfs"`
	TotalItems int            `json:"total_items"`
}

func (r *GetTurfsResponse) FromModel(turfs []repository.Turf) {
	r.Turfs = make([]TurfResponse, 0, len(turfs))
	for _, turf := range turfs {
		r.Turfs = append(r.Turfs, TurfResponse{}.FromModel(turf))
	}

	r.TotalItems = len(r.Turfs)
}
