package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/escanor68/turnosya-backend/internal/delivery/http/middleware"
	"github.com/escanor68/turnosya-backend/internal/delivery/http/response"
	"github.com/escanor68/turnosya-backend/internal/domains/payments/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/payments/service"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/logger"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - payments - %s"

	routepath = "/payments"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	payments := r.Group(routepath)

	payments.Post("/callbacks", h.Callbacks)
	payments.Get("/:group_id", middleware.Jwt(), h.GetPaymentByGroup)
	payments.Put("/:group_id/confirm", middleware.Jwt(), middleware.CheckRole(constant.UserRoleOwner, constant.UserRoleAdmin), h.ConfirmTransfer)
}

// Callbacks godoc
// @Summary Payment callbacks
// @Description Handle payment gateway callbacks
// @Tags payments
// @Accept json
// @Produce json
// @Param callback body dto.PaymentCallbackRequest true "Payment callback request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/callbacks [post]
func (h *Handler) Callbacks(ctx *fiber.Ctx) error {
	var req dto.PaymentCallbackRequest

	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "callbacks - body parser error: %v", err)

		return response.WithError(ctx, err)
	}

	token := ctx.Get(constant.RequestHeaderCallback)

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "callbacks - validation error: %v", transformErr)

		return response.WithError(ctx, transformErr)
	}

	if err := h.service.Callbacks(ctx.Context(), req, token); err != nil {
		h.logger.Error(identifier, "callbacks - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "payment callback processed successfully")
}

// GetPaymentByGroup godoc
// @Summary Get payment
// @Description Get the payment attached to a booking group
// @Tags payments
// @Produce json
// @Param group_id path string true "Booking group ID"
// @Success 200 {object} response.Data[dto.PaymentResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /payments/{group_id} [get]
func (h *Handler) GetPaymentByGroup(ctx *fiber.Ctx) error {
	groupID := ctx.Params("group_id")

	if err := h.validator.Var(groupID, constant.RequestValidateUUID); err != nil {
		transformErr := failure.BadRequestFromString("invalid group id")

		h.logger.Error(identifier, "get payment - validation error: %v", err)

		return response.WithError(ctx, transformErr)
	}

	res, err := h.service.GetPaymentByGroup(ctx.Context(), groupID)
	if err != nil {
		h.logger.Error(identifier, "get payment - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// ConfirmTransfer godoc
// @Summary Confirm bank transfer
// @Description Mark a pending bank transfer payment as paid. Owner or admin only.
// @Tags payments
// @Produce json
// @Param group_id path string true "Booking group ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /payments/{group_id}/confirm [put]
func (h *Handler) ConfirmTransfer(ctx *fiber.Ctx) error {
	groupID := ctx.Params("group_id")

	if err := h.validator.Var(groupID, constant.RequestValidateUUID); err != nil {
		transformErr := failure.BadRequestFromString("invalid group id")

		h.logger.Error(identifier, "confirm transfer - validation error: %v", err)

		return response.WithError(ctx, transformErr)
	}

	if err := h.service.ConfirmTransfer(ctx.Context(), groupID); err != nil {
		h.logger.Error(identifier, "confirm transfer - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "transfer confirmed")
}
