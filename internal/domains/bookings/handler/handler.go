package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/herculesarena/turfbooking/internal/delivery/http/middleware"
	"github.com/herculesarena/turfbooking/internal/delivery/http/response"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/dto"
	"github.com/herculesarena/turfbooking/internal/domains/bookings/service"
	"github.com/herculesarena/turfbooking/pkg/failure"
	"github.com/herculesarena/turfbooking/pkg/gdto"
	"github.com/herculesarena/turfbooking/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	booking := r.Group("/bookings")

	booking.Post("/", h.Create)
	booking.Get("/:id", h.Get)

	admin := r.Group("/admin", middleware.AdminOnly())

	admin.Get("/bookings", h.GetAll)
	admin.Put("/bookings/:id/status", h.UpdateStatus)
	admin.Get("/stats", h.Stats)
}

// Create Booking godoc
// @Summary Create a booking
// @Description Reserve a contiguous block of slots and take payment
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking create request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /bookings/ [post]
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - booking - create - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error("http - booking - create - validate error: " + validationErr)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.CreateBooking(ctx.UserContext(), req)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - booking - create - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Get Booking godoc
// @Summary Get booking by ID
// @Description Get booking by ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /bookings/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		h.logger.Error("http - booking - get - id is empty")

		return response.WithError(ctx, failure.BadRequestFromString("id is required"))
	}

	data, err := h.service.GetBookingByID(ctx.UserContext(), id)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - booking - get - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GetAll Bookings godoc
// @Summary List bookings
// @Description List bookings with optional filter: all, today, or a status
// @Tags admin
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /admin/bookings [get]
// @Security BearerAuth
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - booking - get all - query parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - get all - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	data, err := h.service.GetAllBookings(ctx.UserContext(), req)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - booking - get all - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// UpdateStatus Booking godoc
// @Summary Update booking status
// @Description Cancel or complete a confirmed booking
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param status body dto.UpdateBookingStatusRequest true "Status update request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /admin/bookings/{id}/status [put]
// @Security BearerAuth
func (h *Handler) UpdateStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		h.logger.Error("http - booking - update status - id is empty")

		return response.WithError(ctx, failure.BadRequestFromString("id is required"))
	}

	var req dto.UpdateBookingStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - booking - update status - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error("http - booking - update status - validate error: " + validationErr)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.UpdateBookingStatus(ctx.UserContext(), id, req.Status)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - booking - update status - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Stats godoc
// @Summary Booking stats
// @Description Revenue and booking counters for the admin dashboard
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /admin/stats [get]
// @Security BearerAuth
func (h *Handler) Stats(ctx *fiber.Ctx) error {
	data, err := h.service.GetStats(ctx.UserContext())
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - booking - stats - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
