package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/escanor68/turnosya-backend/config"
	"github.com/escanor68/turnosya-backend/internal/domains/addons/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/addons/mock"
	"github.com/escanor68/turnosya-backend/internal/domains/addons/repository"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/gdto"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	log "github.com/escanor68/turnosya-backend/pkg/logger/mock"
	redis "github.com/escanor68/turnosya-backend/pkg/redis/mock"
)

func addonFixture(id uuid.UUID) repository.Addon {
	return repository.Addon{
		ID:          pgtype.UUID{Bytes: id, Valid: true},
		Name:        "Paletas de pádel",
		Description: pgtype.Text{String: "Dos paletas por turno", Valid: true},
		Price:       helper.PgNumericFromFloat(1500),
		CreatedAt:   pgtype.Timestamp{Time: time.Now(), Valid: true},
		UpdatedAt:   pgtype.Timestamp{Time: time.Now(), Valid: true},
	}
}

func TestAddonService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{Cache: config.Cache{Duration: 300}}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	req := dto.AddonCreateRequest{
		Name:        "Paletas de pádel",
		Description: "Dos paletas por turno",
		Price:       1500,
	}

	t.Run("error: failed to create addon", func(t *testing.T) {
		mockQuerier.EXPECT().
			CreateAddon(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgtype.UUID{}, mockError).
			Times(1)

		res, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, res)
	})

	t.Run("success: addon created", func(t *testing.T) {
		newID := uuid.New()

		mockQuerier.EXPECT().
			CreateAddon(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateAddonParams) (pgtype.UUID, error) {
				assert.Equal(t, "Paletas de pádel", arg.Name)
				assert.Equal(t, "Dos paletas por turno", arg.Description.String)

				return pgtype.UUID{Bytes: newID, Valid: true}, nil
			}).
			Times(1)

		res, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, newID.String(), res)
	})
}

func TestAddonService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{Cache: config.Cache{Duration: 300}}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	addonID := uuid.New()
	addon := addonFixture(addonID)

	t.Run("error: addon not found", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)

		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Addon{}, pgx.ErrNoRows).
			Times(1)

		res, err := service.Get(ctx, addonID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Empty(t, res.ID)
	})

	t.Run("error: failed to get addon", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)

		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Addon{}, mockError).
			Times(1)

		_, err := service.Get(ctx, addonID.String())

		assert.Error(t, err)
	})

	t.Run("success: from database", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)

		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(addon, nil).
			Times(1)

		res, err := service.Get(ctx, addonID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Paletas de pádel", res.Name)
		assert.Equal(t, float64(1500), res.Price)
	})

	t.Run("success: from cache", func(t *testing.T) {
		cached := dto.AddonResponse{}.FromModel(addon)

		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, cached).Return(nil)

		res, err := service.Get(ctx, addonID.String())

		assert.NoError(t, err)
		assert.Equal(t, cached.Name, res.Name)
	})
}

func TestAddonService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{Cache: config.Cache{Duration: 300}}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	req := gdto.PaginationRequest{Page: 1, Limit: 10}

	t.Run("error: failed to count addons", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError).Times(2)

		mockQuerier.EXPECT().
			CountAddons(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), mockError).
			Times(1)

		res, err := service.GetAll(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, res.Addons)
	})

	t.Run("success: addons listed", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError).Times(2)

		mockQuerier.EXPECT().
			CountAddons(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(2), nil).
			Times(1)

		mockQuerier.EXPECT().
			GetAddons(gomock.Any(), gomock.Any(), repository.GetAddonsParams{Limit: 10, Offset: 0}).
			Return([]repository.Addon{addonFixture(uuid.New()), addonFixture(uuid.New())}, nil).
			Times(1)

		res, err := service.GetAll(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, res.Addons, 2)
		assert.Equal(t, 2, res.TotalItems)
		assert.Equal(t, 1, res.TotalPages)
	})
}

func TestAddonService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{Cache: config.Cache{Duration: 300}}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	addonID := uuid.New()
	addon := addonFixture(addonID)

	t.Run("error: addon not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Addon{}, pgx.ErrNoRows).
			Times(1)

		res, err := service.Update(ctx, addonID.String(), dto.AddonUpdateRequest{Name: "Pelotas"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Empty(t, res)
	})

	t.Run("error: no fields to update", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(addon, nil).
			Times(1)

		res, err := service.Update(ctx, addonID.String(), dto.AddonUpdateRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, res)
	})

	t.Run("success: partial update keeps existing values", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(addon, nil).
			Times(1)

		mockQuerier.EXPECT().
			UpdateAddon(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateAddonParams) (pgtype.UUID, error) {
				assert.Equal(t, "Pelotas", arg.Name)
				assert.Equal(t, "Dos paletas por turno", arg.Description.String)
				assert.Equal(t, float64(2000), helper.Float64FromPg(arg.Price))

				return addon.ID, nil
			}).
			Times(1)

		res, err := service.Update(ctx, addonID.String(), dto.AddonUpdateRequest{Name: "Pelotas", Price: 2000})

		assert.NoError(t, err)
		assert.Equal(t, addonID.String(), res)
	})
}

func TestAddonService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{Cache: config.Cache{Duration: 300}}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	addonID := uuid.New()
	addon := addonFixture(addonID)

	t.Run("error: addon not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Addon{}, pgx.ErrNoRows).
			Times(1)

		err := service.Delete(ctx, addonID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: addon still referenced", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(addon, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteAddon(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"}).
			Times(1)

		err := service.Delete(ctx, addonID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: addon deleted", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetAddonById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(addon, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteAddon(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		err := service.Delete(ctx, addonID.String())

		assert.NoError(t, err)
	})
}
