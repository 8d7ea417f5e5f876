package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/escanor68/turnosya-backend/internal/delivery/http/middleware"
	"github.com/escanor68/turnosya-backend/internal/delivery/http/response"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/service"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/gdto"
	"github.com/escanor68/turnosya-backend/pkg/logger"
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

const (
	identifier = "http - booking - %s"

	routepath = "/bookings"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routepath)

	bookings.Get("/recurrence-options", h.GetRecurrenceOptions)
	bookings.Post("/quote", h.QuoteBooking)
	bookings.Post("/slots", h.GetBookedSlots)
	bookings.Post("/", middleware.Jwt(), h.CreateBooking)
	bookings.Get("/group/:group_id", middleware.Jwt(), h.GetBookingsByGroup)
	bookings.Get("/:id", h.GetBookingByID)
	bookings.Put("/:id/cancel", middleware.Jwt(), h.CancelUserBooking)

	r.Get("/users/bookings", middleware.Jwt(), h.GetUserBookings)
	r.Get("/admin/bookings", middleware.AdminOnly(), h.GetAllBookings)
}

// CreateBooking godoc
// @Summary Create new booking
// @Description Create a booking, expanding recurrence into one row per occurrence
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/ [post]
// @Security BearerAuth
func (h *Handler) CreateBooking(ctx *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "create - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	user, email, err := h.authenticatedUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	res, err := h.service.CreateBooking(ctx.Context(), req, user, email)
	if err != nil {
		h.logger.Error(identifier, "error creating booking: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// QuoteBooking godoc
// @Summary Quote a booking
// @Description Compute the occurrence dates and price breakdown without booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param quote body dto.QuoteBookingRequest true "Quote booking request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/quote [post]
func (h *Handler) QuoteBooking(ctx *fiber.Ctx) error {
	var req dto.QuoteBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "quote - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.QuoteBooking(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error quoting booking: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetRecurrenceOptions godoc
// @Summary Get recurrence options
// @Description Get the recurrence discount catalog
// @Tags bookings
// @Produce json
// @Success 200 {object} response.Data[dto.GetRecurrenceOptionsResponse]
// @Router /bookings/recurrence-options [get]
func (h *Handler) GetRecurrenceOptions(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, h.service.GetRecurrenceOptions())
}

// GetBookingByID godoc
// @Summary Get booking by ID
// @Description Get booking by ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [get]
// @Security BearerAuth
func (h *Handler) GetBookingByID(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid booking id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetBookingByID(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting booking by id: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetBookingsByGroup godoc
// @Summary Get bookings by group
// @Description Get every occurrence of a recurring booking group
// @Tags bookings
// @Produce json
// @Param group_id path string true "Booking group ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/group/{group_id} [get]
// @Security BearerAuth
func (h *Handler) GetBookingsByGroup(ctx *fiber.Ctx) error {
	groupID := ctx.Params("group_id")
	if err := h.validator.Var(groupID, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid group id format")

		h.logger.Error(identifier, "get group - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetBookingsByGroup(ctx.Context(), groupID)
	if err != nil {
		h.logger.Error(identifier, "error getting bookings by group: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetUserBookings godoc
// @Summary Get user bookings
// @Description Get bookings for the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/bookings [get]
func (h *Handler) GetUserBookings(ctx *fiber.Ctx) error {
	user, _, err := h.authenticatedUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetUserBookings(ctx.Context(), user, req)
	if err != nil {
		h.logger.Error(identifier, "error getting user bookings: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetAllBookings godoc
// @Summary Get all bookings
// @Description Get all bookings. Admin only.
// @Tags bookings
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/bookings [get]
// @Security BearerAuth
func (h *Handler) GetAllBookings(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAllBookings(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting all bookings: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetBookedSlots godoc
// @Summary Get booked slots
// @Description Get booked slots for a specific date and field
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.GetBookedSlotsRequest true "Get booked slots request"
// @Success 200 {object} response.Data[dto.GetBookedSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/slots [post]
func (h *Handler) GetBookedSlots(ctx *fiber.Ctx) error {
	var req dto.GetBookedSlotsRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "get booked slots - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.GetBookedSlots(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting booked slots: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// CancelUserBooking godoc
// @Summary Cancel user booking
// @Description Cancel a booking for the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id}/cancel [put]
// @Security BearerAuth
func (h *Handler) CancelUserBooking(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid booking id format")

		h.logger.Error(identifier, "cancel - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	user, _, err := h.authenticatedUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	req := dto.CancelUserBookingRequest{
		BookingID: id,
		UserID:    user,
	}

	if err := h.service.CancelUserBooking(ctx.Context(), req); err != nil {
		h.logger.Error(identifier, "error canceling booking: %w", err)

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Booking %s cancelled", id)

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

func (h *Handler) authenticatedUser(ctx *fiber.Ctx) (user, email string, err error) {
	userRaw := ctx.Locals(constant.JwtFieldUser)
	if userRaw == nil {
		h.logger.Error(identifier, "user not found in context")

		return "", "", failure.Unauthorized("user not authenticated")
	}

	user, ok := userRaw.(string)
	if !ok {
		h.logger.Error(identifier, "invalid user type in context")

		return "", "", constant.ErrInvalidContextUserType
	}

	emailRaw := ctx.Locals(constant.JwtFieldEmail)
	if emailRaw != nil {
		if email, ok = emailRaw.(string); !ok {
			h.logger.Error(identifier, "invalid email type in context")

			return "", "", constant.ErrInvalidContextUserType
		}
	}

	return user, email, nil
}
