package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/herculesarena/turfbooking/internal/delivery/http/response"
	"github.com/herculesarena/turfbooking/internal/domains/turfs/service"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/logger"
)

type Handler struct {
	service   service.TurfService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.TurfService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	turf := r.Group("/turfs")

	turf.Get("/", h.GetAll)
	turf.Get("/:id", h.Get)
}

// GetAll Turf godoc
// @Summary List turfs
// @Description Get the full turf catalog
// @Tags turfs
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetTurfsResponse]
// @Failure 500 {object} response.Error
// @Router /turfs/ [get]
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	data, err := h.service.GetAll(ctx.UserContext())
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - turf - get all - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Get Turf godoc
// @Summary Get turf by ID
// @Description Get turf by ID
// @Tags turfs
// @Accept json
// @Produce json
// @Param id path string true "Turf ID"
// @Success 200 {object} response.Data[dto.TurfResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /turfs/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		h.logger.Error("http - turf - get - id is empty")

		return response.WithError(ctx, failure.BadRequestFromString("id is required"))
	}

	data, err := h.service.Get(ctx.UserContext(), id)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - turf - get - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
