package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/escanor68/turnosya-backend/config"
	"github.com/escanor68/turnosya-backend/internal/domains/user/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	"github.com/escanor68/turnosya-backend/pkg/logger"
	"github.com/escanor68/turnosya-backend/pkg/postgres"
	"github.com/escanor68/turnosya-backend/pkg/redis"
)

type UserService interface {
	Profile(ctx context.Context, email string) (res dto.UserProfileResponse, err error)
	GetAllUsers(ctx context.Context, req dto.GetUsersRequest) (res dto.PaginatedUserResponse, err error)
	GetUserByID(ctx context.Context, id string) (res dto.UserAdminResponse, err error)
	UpdateUserRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) (res dto.UserAdminResponse, err error)
}

const (
	cacheGetUserKey     = "cache:get_user:%s"
	defaultCacheTimeout = 5 * time.Second
)

type userService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	config *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   repo,
		cache:  cache,
		config: cfg,
		logger: l,
	}
}

func (s *userService) Profile(ctx context.Context, email string) (res dto.UserProfileResponse, err error) {
	cacheKey := fmt.Sprintf(cacheGetUserKey, email)

	var cacheRes dto.UserProfileResponse
	err = s.cache.Get(ctx, cacheKey, &cacheRes)

	if err == nil {
		s.logger.Info("service - user %s - profile - cache hit", email)

		return cacheRes, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		s.logger.Error("service - user - profile - failed to get user by email", err)

		return dto.UserProfileResponse{}, failure.InternalError(err)
	}

	if user == (repository.User{}) {
		s.logger.Error("service - user - profile - user not found")

		return dto.UserProfileResponse{}, failure.NotFound("user not found")
	}

	var profileResponse dto.UserProfileResponse
	profileResponse = profileResponse.ToProfileResponse(user)

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
		defer cancel()

		cacheErr := s.cache.Save(cacheCtx, cacheKey, profileResponse, s.config.Cache.Duration)
		if cacheErr != nil {
			s.logger.Error("service - user - profile - failed to set cache", cacheErr)
		}
	}()

	return profileResponse, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req dto.GetUsersRequest) (res dto.PaginatedUserResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	totalItems, err := s.repo.CountUsers(ctx, s.db, repository.CountUsersParams{
		Column1: req.Email,
		Column2: req.FullName,
		Column3: req.Level,
	})
	if err != nil {
		s.logger.Error("service - user - getAllUsers - failed to count users: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	users, err := s.repo.GetUsers(ctx, s.db, repository.GetUsersParams{
		Column1: req.Email,
		Column2: req.FullName,
		Column3: req.Level,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error("service - user - getAllUsers - failed to get users: %w", err)

		return res, err
	}

	res.FromModel(users, int(totalItems), limit)

	return res, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (res dto.UserAdminResponse, err error) {
	user, err := s.repo.GetUserById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("user %s - not found", id))
		}

		s.logger.Error("service - user - getUserByID - failed to get user: %w", err)

		return res, err
	}

	return res.FromModel(user), nil
}

func (s *userService) UpdateUserRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) (res dto.UserAdminResponse, err error) {
	user, err := s.repo.GetUserById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("user %s - not found", id))
		}

		s.logger.Error("service - user - updateUserRole - failed to get user: %w", err)

		return res, err
	}

	err = s.repo.UpdateUserLevel(ctx, s.db, repository.UpdateUserLevelParams{
		Level: req.Level,
		ID:    user.ID,
	})
	if err != nil {
		s.logger.Error("service - user - updateUserRole - failed to update user level: %w", err)

		return res, err
	}

	user.Level = req.Level

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
		defer cancel()

		cacheKey := fmt.Sprintf(cacheGetUserKey, user.Email)
		if cacheErr := s.cache.Delete(cacheCtx, cacheKey); cacheErr != nil {
			s.logger.Error("service - user - updateUserRole - failed to delete cache", cacheErr)
		}
	}()

	return res.FromModel(user), nil
}
