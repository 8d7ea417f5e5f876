package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/escanor68/turnosya-backend/internal/delivery/http/middleware"
	"github.com/escanor68/turnosya-backend/internal/delivery/http/response"
	"github.com/escanor68/turnosya-backend/internal/domains/wizard/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/wizard/service"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/logger"
)

type Handler struct {
	service   service.WizardService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.WizardService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - wizard - %s"

	routepath = "/wizard"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	wizard := r.Group(routepath, middleware.Jwt())

	wizard.Post("/", h.Start)
	wizard.Get("/:id", h.Get)
	wizard.Patch("/:id", h.Update)
	wizard.Post("/:id/next", h.Next)
	wizard.Post("/:id/prev", h.Prev)
	wizard.Post("/:id/quote", h.Quote)
	wizard.Post("/:id/submit", h.Submit)
}

// Start godoc
// @Summary Start booking wizard
// @Description Create a new wizard draft for a field, prefilled from the user profile
// @Tags wizard
// @Accept json
// @Produce json
// @Param wizard body dto.StartWizardRequest true "Start wizard request"
// @Success 201 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /wizard/ [post]
// @Security BearerAuth
func (h *Handler) Start(ctx *fiber.Ctx) error {
	var req dto.StartWizardRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "start - error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "start - validate error: "+err.Error())

		return response.WithError(ctx, transformErr)
	}

	user, email, err := h.authenticatedUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	res, err := h.service.Start(ctx.Context(), req, user, email)
	if err != nil {
		h.logger.Error(identifier, "start - service error: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// Get godoc
// @Summary Get wizard draft
// @Description Get the current state of a wizard draft
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /wizard/{id} [get]
// @Security BearerAuth
func (h *Handler) Get(ctx *fiber.Ctx) error {
	return h.withDraft(ctx, "get", func(id, user string) (any, error) {
		return h.service.Get(ctx.Context(), id, user)
	})
}

// Update godoc
// @Summary Update wizard draft
// @Description Patch draft fields. Returns the draft with current step errors, if any.
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param draft body dto.UpdateDraftRequest true "Partial draft update"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /wizard/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "update - error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "update - validate error: "+err.Error())

		return response.WithError(ctx, transformErr)
	}

	return h.withDraft(ctx, "update", func(id, user string) (any, error) {
		return h.service.Update(ctx.Context(), id, user, req)
	})
}

// Next godoc
// @Summary Advance wizard
// @Description Move to the next step when the current step validates; otherwise return field errors
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /wizard/{id}/next [post]
// @Security BearerAuth
func (h *Handler) Next(ctx *fiber.Ctx) error {
	return h.withDraft(ctx, "next", func(id, user string) (any, error) {
		return h.service.Next(ctx.Context(), id, user)
	})
}

// Prev godoc
// @Summary Go back one wizard step
// @Description Move to the previous step. Entered data is preserved.
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /wizard/{id}/prev [post]
// @Security BearerAuth
func (h *Handler) Prev(ctx *fiber.Ctx) error {
	return h.withDraft(ctx, "prev", func(id, user string) (any, error) {
		return h.service.Prev(ctx.Context(), id, user)
	})
}

// Quote godoc
// @Summary Quote wizard draft
// @Description Compute occurrence dates and price breakdown for the draft
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[bookingDto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /wizard/{id}/quote [post]
// @Security BearerAuth
func (h *Handler) Quote(ctx *fiber.Ctx) error {
	return h.withDraft(ctx, "quote", func(id, user string) (any, error) {
		return h.service.Quote(ctx.Context(), id, user)
	})
}

// Submit godoc
// @Summary Submit wizard draft
// @Description Create the booking from a complete draft. Only one submission may be in flight.
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} response.Data[dto.SubmitWizardResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /wizard/{id}/submit [post]
// @Security BearerAuth
func (h *Handler) Submit(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid draft id format")

		h.logger.Error(identifier, "submit - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	user, _, err := h.authenticatedUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	res, err := h.service.Submit(ctx.Context(), id, user)
	if err != nil {
		h.logger.Error(identifier, "submit - service error: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

func (h *Handler) withDraft(ctx *fiber.Ctx, op string, fn func(id, user string) (any, error)) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid draft id format")

		h.logger.Error(identifier, op+" - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	user, _, err := h.authenticatedUser(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	res, err := fn(id, user)
	if err != nil {
		h.logger.Error(identifier, op+" - service error: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
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
