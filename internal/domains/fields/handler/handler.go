package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/escanor68/turnosya-backend/internal/delivery/http/middleware"
	"github.com/escanor68/turnosya-backend/internal/delivery/http/response"
	"github.com/escanor68/turnosya-backend/internal/domains/fields/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/fields/service"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/gdto"
	"github.com/escanor68/turnosya-backend/pkg/logger"
)

type Handler struct {
	service   service.FieldService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.FieldService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - field - %s"

	routepath = "/fields"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	fields := r.Group(routepath)

	manage := middleware.CheckRole(constant.UserRoleOwner, constant.UserRoleAdmin)

	fields.Get("/", h.GetAll)
	fields.Get("/city/:city", h.GetByCity)
	fields.Post("/", middleware.Jwt(), manage, h.Create)
	fields.Get("/:id", h.Get)
	fields.Patch("/:id", middleware.Jwt(), manage, h.Update)
	fields.Delete("/:id", middleware.Jwt(), manage, h.Delete)
	fields.Post("/:id/images", middleware.Jwt(), manage, h.UploadImages)
	fields.Delete("/:id/images", middleware.Jwt(), manage, h.DeleteImage)
}

// Create godoc
// @Summary Create new field
// @Description Create a new field. Owner or admin only.
// @Tags fields
// @Accept json
// @Produce json
// @Param field body dto.FieldCreateRequest true "Create field request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/ [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.FieldCreateRequest
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
		h.logger.Error(identifier, "error creating field: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Field created with id %s", id)

	return response.WithMessage(ctx, fiber.StatusCreated, res)
}

// Get godoc
// @Summary Get field by ID
// @Description Get field by ID
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Data[dto.FieldResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Get(ctx.Context(), id)
	if err != nil {
		h.logger.Error(identifier, "error getting field by id: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetAll godoc
// @Summary Get all fields
// @Description Get all fields with optional name filter
// @Tags fields
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by name"
// @Success 200 {object} response.Data[dto.GetFieldsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/ [get]
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAll(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting fields: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetByCity godoc
// @Summary Get fields by city
// @Description Get fields in a city with optional name filter
// @Tags fields
// @Produce json
// @Param city path string true "City name"
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by name"
// @Success 200 {object} response.Data[dto.GetFieldsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/city/{city} [get]
func (h *Handler) GetByCity(ctx *fiber.Ctx) error {
	city := ctx.Params("city")
	if city == "" {
		err := failure.BadRequestFromString("city is required")

		h.logger.Error(identifier, "get by city - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing query parameters: "+err.Error())

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetByCity(ctx.Context(), city, req)
	if err != nil {
		h.logger.Error(identifier, "error getting fields by city: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Update godoc
// @Summary Update field
// @Description Update a field partially. Owner or admin only.
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param field body dto.FieldUpdateRequest true "Update field request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.FieldUpdateRequest
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
		h.logger.Error(identifier, "error updating field: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Field %s updated", updatedID)

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

// Delete godoc
// @Summary Delete field
// @Description Delete a field and its stored images. Owner or admin only.
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.Context(), id); err != nil {
		h.logger.Error(identifier, "error deleting field: "+err.Error())

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Field %s deleted", id)

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

// UploadImages godoc
// @Summary Upload field images
// @Description Upload images for a field. Owner or admin only.
// @Tags fields
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Field ID"
// @Param images formData file true "Image files"
// @Success 200 {object} response.Data[[]string]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id}/images [post]
// @Security BearerAuth
func (h *Handler) UploadImages(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "upload images - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		err = failure.BadRequestFromString("invalid multipart form")

		h.logger.Error(identifier, "upload images - form error: %w", err)

		return response.WithError(ctx, err)
	}

	files := form.File["images"]

	urls, err := h.service.UploadImages(ctx.Context(), id, files)
	if err != nil {
		h.logger.Error(identifier, "error uploading images: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, urls)
}

// DeleteImage godoc
// @Summary Delete field image
// @Description Delete a single image from a field. Owner or admin only.
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param image body dto.DeleteFieldImageRequest true "Delete image request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id}/images [delete]
// @Security BearerAuth
func (h *Handler) DeleteImage(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid field id format")

		h.logger.Error(identifier, "delete image - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.DeleteFieldImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		validationErr := err.Error()
		transformErr := failure.BadRequestFromString(validationErr)

		h.logger.Error(identifier, "delete image - validate error: "+validationErr)

		return response.WithError(ctx, transformErr)
	}

	if err := h.service.DeleteImage(ctx.Context(), id, req.ImageURL); err != nil {
		h.logger.Error(identifier, "error deleting image: "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "Image deleted")
}
