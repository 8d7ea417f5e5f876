package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/escanor68/turnosya-backend/config"
	"github.com/escanor68/turnosya-backend/internal/domains/addons/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/addons/repository"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/gdto"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	"github.com/escanor68/turnosya-backend/pkg/logger"
	"github.com/escanor68/turnosya-backend/pkg/postgres"
	"github.com/escanor68/turnosya-backend/pkg/redis"
)

type AddonService interface {
	Create(ctx context.Context, req dto.AddonCreateRequest) (string, error)
	Get(ctx context.Context, id string) (dto.AddonResponse, error)
	GetAll(ctx context.Context, req gdto.PaginationRequest) (dto.GetAddonsResponse, error)
	Count(ctx context.Context, req gdto.PaginationRequest) (int, error)
	Update(ctx context.Context, id string, req dto.AddonUpdateRequest) (string, error)
	Delete(ctx context.Context, id string) error
}

type addonService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) AddonService {
	return &addonService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheGetAddonsKey   = "addons"
	cacheCountAddonsKey = "addons:count"
	cacheGetAddonKey    = "addon"

	identifier = "service - addon - %s"
)

func (s *addonService) Create(ctx context.Context, req dto.AddonCreateRequest) (res string, err error) {
	newAddon, err := s.repo.CreateAddon(ctx, s.db, repository.CreateAddonParams{
		Name:        req.Name,
		Description: helper.PgString(req.Description),
		Price:       helper.PgNumericFromFloat(req.Price),
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create addon: %w", err)

		return res, err
	}

	res = newAddon.String()

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountAddonsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetAddonsKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *addonService) Get(ctx context.Context, id string) (res dto.AddonResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetAddonKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	addon, err := s.repo.GetAddonById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("addon %s - not found", id))
			s.logger.Error(identifier, "get - addon not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed get addon: %w", err)

		return res, err
	}

	res = res.FromModel(addon)

	go func() {
		err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "get - failed save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *addonService) GetAll(ctx context.Context, req gdto.PaginationRequest) (res dto.GetAddonsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetAddonsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetAddonsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count addons: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	addons, err := s.repo.GetAddons(ctx, s.db, repository.GetAddonsParams{
		Column1: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get addons: %w", err)

		return res, nil
	}

	res.FromModel(addons, totalItems, limit)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *addonService) Count(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheCountAddonsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "count - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountAddons(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count - failed to count addons: %w", err)

		return total, err
	}

	total = int(totalItems)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, total, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "count - failed to set cache: %w", err)
		}
	}()

	return total, nil
}

func (s *addonService) Update(ctx context.Context, id string, req dto.AddonUpdateRequest) (res string, err error) {
	existingAddon, err := s.repo.GetAddonById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("addon %s - not found", id))
		}

		s.logger.Error(identifier, "update - failed get addon: %w", err)

		return res, err
	}

	if req.Name == "" && req.Description == "" && req.Price == 0 {
		s.logger.Error(identifier, "update - at least one field is required to update")

		err := failure.BadRequestFromString("at least one field is required to update")

		return res, err
	}

	if req.Name != "" {
		existingAddon.Name = req.Name
	}

	if req.Description != "" {
		existingAddon.Description = helper.PgString(req.Description)
	}

	if req.Price != 0 {
		existingAddon.Price = helper.PgNumericFromFloat(req.Price)
	}

	updatedAddon, err := s.repo.UpdateAddon(ctx, s.db, repository.UpdateAddonParams{
		ID:          helper.PgUUID(id),
		Name:        existingAddon.Name,
		Description: existingAddon.Description,
		Price:       existingAddon.Price,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update addon: %w", err)

		return res, err
	}

	res = updatedAddon.String()

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetAddonKey, id)); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountAddonsKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetAddonsKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *addonService) Delete(ctx context.Context, id string) (err error) {
	_, err = s.repo.GetAddonById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("addon %s - not found", id))
		}

		s.logger.Error(identifier, "delete - failed to get addon: %w", err)

		return err
	}

	err = s.repo.DeleteAddon(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			err = failure.Conflict("addon used by other entities")
		}

		s.logger.Error(identifier, "delete - failed to delete addon: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetAddonKey, id)); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountAddonsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetAddonsKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}
	}()

	return nil
}
