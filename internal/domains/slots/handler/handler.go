package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/herculesarena/turfbooking/internal/delivery/http/response"
	"github.com/herculesarena/turfbooking/internal/domains/slots/dto"
	"github.com/herculesarena/turfbooking/internal/domains/slots/service"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/logger"
)

type Handler struct {
	service   service.SlotService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.SlotService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Group("/turfs").Get("/:id/slots", h.GetSlots)
}

// GetSlots godoc
// @Summary Get slot sheet
// @Description Get the 40-slot availability sheet for a turf on a date
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Turf ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /turfs/{id}/slots [get]
func (h *Handler) GetSlots(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		h.logger.Error("http - slot - get slots - id is empty")

		return response.WithError(ctx, failure.BadRequestFromString("id is required"))
	}

	var req dto.GetSlotsRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - slot - get slots - query parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error("http - slot - get slots - validate error: " + validationErr)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.GetSlots(ctx.UserContext(), id, req.Date)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - slot - get slots - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
