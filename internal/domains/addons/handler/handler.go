package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/escanor68/turnosya-backend/internal/delivery/http/middleware"
	"github.com/escanor68/turnosya-backend/internal/delivery/http/response"
	"github.com/escanor68/turnosya-backend/internal/domains/addons/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/addons/service"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/gdto"
	"github.com/escanor68/turnosya-backend/pkg/logger"
)

type Handler struct {
	service   service.AddonService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AddonService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - addon - %s"

	routepath = "/addons"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	addons := r.Group(routepath)

	manage := middleware.CheckRole(constant.UserRoleOwner, constant.UserRoleAdmin)

	addons.Get("/", h.GetAll)
	addons.Post("/", middleware.Jwt(), manage, h.Create)
	addons.Get("/:id", h.Get)
	addons.Patch("/:id", middleware.Jwt(), manage, h.Update)
	addons.Delete("/:id", middleware.Jwt(), manage, h.Delete)
}

// Create godoc
// @Summary Create new addon
// @Description Create a new addon. Owner or admin only.
// @Tags addons
// @Accept json
// @Produce json
// @Param addon body dto.AddonCreateRequest true "Create addon request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /addons/ [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.AddonCreateRequest
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

	id, err := h.service.Create(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error creating addon: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Addon created with id %s", id)

	return response.WithMessage(ctx, fiber.StatusCreated, res)
}

// Get godoc
// @Summary Get addon by ID
// @Description Get addon by ID
// @Tags addons
// @Produce json
// @Param id path string true "Addon ID"
// @Success 200 {object} response.Data[dto.AddonResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /addons/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid addon id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Get(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting addon by id: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetAll godoc
// @Summary Get all addons
// @Description Get all addons with optional name filter
// @Tags addons
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by name"
// @Success 200 {object} response.Data[dto.GetAddonsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /addons/ [get]
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAll(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting addons: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Update godoc
// @Summary Update addon
// @Description Update an addon partially. Owner or admin only.
// @Tags addons
// @Accept json
// @Produce json
// @Param id path string true "Addon ID"
// @Param addon body dto.AddonUpdateRequest true "Update addon request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /addons/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid addon id format")

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.AddonUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "update - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	updatedID, err := h.service.Update(ctx.Context(), id, req)
	if err != nil {
		h.logger.Error(identifier, "error updating addon: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Addon %s updated", updatedID)

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

// Delete godoc
// @Summary Delete addon
// @Description Delete an addon. Owner or admin only.
// @Tags addons
// @Produce json
// @Param id path string true "Addon ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /addons/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid addon id format")

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.Context(), id); err != nil {
		h.logger.Error(identifier, "error deleting addon: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Addon %s deleted", id)

	return response.WithMessage(ctx, fiber.StatusOK, res)
}
