package service

import (
	"context"
	"errors"
	"mime/multipart"
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
	"github.com/escanor68/turnosya-backend/internal/domains/fields/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/fields/mock"
	"github.com/escanor68/turnosya-backend/internal/domains/fields/repository"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/gdto"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	log "github.com/escanor68/turnosya-backend/pkg/logger/mock"
	redis "github.com/escanor68/turnosya-backend/pkg/redis/mock"
)

func fieldFixture(id uuid.UUID) repository.Field {
	return repository.Field{
		ID:          pgtype.UUID{Bytes: id, Valid: true},
		Name:        "Cancha Principal",
		Type:        "futbol5",
		Price:       helper.PgNumericFromFloat(12000),
		Duration:    60,
		Players:     pgtype.Text{String: "5v5", Valid: true},
		Address:     pgtype.Text{String: "Av. Siempre Viva 742", Valid: true},
		City:        pgtype.Text{String: "La Plata", Valid: true},
		Province:    pgtype.Text{String: "Buenos Aires", Valid: true},
		Description: pgtype.Text{String: "Cancha techada", Valid: true},
		Images:      []string{},
		HasAddons:   pgtype.Bool{Bool: true, Valid: true},
		CreatedAt:   pgtype.Timestamp{Time: time.Now(), Valid: true},
		UpdatedAt:   pgtype.Timestamp{Time: time.Now(), Valid: true},
	}
}

func TestFieldService_Create(t *testing.T) {
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

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	hasAddons := true
	req := dto.FieldCreateRequest{
		Name:      "Cancha Principal",
		Type:      "futbol5",
		Price:     12000,
		Duration:  60,
		Address:   "Av. Siempre Viva 742",
		City:      "La Plata",
		HasAddons: &hasAddons,
	}

	t.Run("error: failed to create field", func(t *testing.T) {
		mockQuerier.EXPECT().
			CreateField(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgtype.UUID{}, mockError).
			Times(1)

		res, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, res)
	})

	t.Run("success: field created", func(t *testing.T) {
		newID := uuid.New()

		mockQuerier.EXPECT().
			CreateField(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateFieldParams) (pgtype.UUID, error) {
				assert.Equal(t, "Cancha Principal", arg.Name)
				assert.Equal(t, "futbol5", arg.Type)
				assert.Equal(t, int32(60), arg.Duration)
				assert.True(t, arg.HasAddons.Bool)
				assert.Equal(t, []string{}, arg.Images)

				return pgtype.UUID{Bytes: newID, Valid: true}, nil
			}).
			Times(1)

		res, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, newID.String(), res)
	})
}

func TestFieldService_Get(t *testing.T) {
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

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	fieldID := uuid.New()
	field := fieldFixture(fieldID)

	t.Run("error: field not found", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)

		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Field{}, pgx.ErrNoRows).
			Times(1)

		res, err := service.Get(ctx, fieldID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Empty(t, res.ID)
	})

	t.Run("success: from database", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)

		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(field, nil).
			Times(1)

		res, err := service.Get(ctx, fieldID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Cancha Principal", res.Name)
		assert.Equal(t, float64(12000), res.Price)
		assert.Equal(t, "La Plata", res.City)
	})

	t.Run("success: from cache", func(t *testing.T) {
		cached := dto.FieldResponse{}.FromModel(field)

		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, cached).Return(nil)

		res, err := service.Get(ctx, fieldID.String())

		assert.NoError(t, err)
		assert.Equal(t, cached.Name, res.Name)
	})
}

func TestFieldService_GetByCity(t *testing.T) {
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
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	req := gdto.PaginationRequest{Page: 1, Limit: 10}

	t.Run("error: failed to count fields", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError).Times(2)

		mockQuerier.EXPECT().
			CountFieldsByCity(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), mockError).
			Times(1)

		res, err := service.GetByCity(ctx, "La Plata", req)

		assert.Error(t, err)
		assert.Empty(t, res.Fields)
	})

	t.Run("success: fields listed for city", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError).Times(2)

		mockQuerier.EXPECT().
			CountFieldsByCity(gomock.Any(), gomock.Any(), repository.CountFieldsByCityParams{
				City: helper.PgString("La Plata"),
			}).
			Return(int64(1), nil).
			Times(1)

		mockQuerier.EXPECT().
			GetFieldsByCity(gomock.Any(), gomock.Any(), repository.GetFieldsByCityParams{
				City:  helper.PgString("La Plata"),
				Limit: 10,
			}).
			Return([]repository.Field{fieldFixture(uuid.New())}, nil).
			Times(1)

		res, err := service.GetByCity(ctx, "La Plata", req)

		assert.NoError(t, err)
		assert.Len(t, res.Fields, 1)
		assert.Equal(t, 1, res.TotalItems)
	})
}

func TestFieldService_Update(t *testing.T) {
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

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	fieldID := uuid.New()
	field := fieldFixture(fieldID)

	t.Run("error: field not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Field{}, pgx.ErrNoRows).
			Times(1)

		res, err := service.Update(ctx, fieldID.String(), dto.FieldUpdateRequest{Name: "Cancha Norte"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Empty(t, res)
	})

	t.Run("error: no fields to update", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(field, nil).
			Times(1)

		res, err := service.Update(ctx, fieldID.String(), dto.FieldUpdateRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, res)
	})

	t.Run("success: partial update keeps existing values", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(field, nil).
			Times(1)

		mockQuerier.EXPECT().
			UpdateField(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateFieldParams) (pgtype.UUID, error) {
				assert.Equal(t, "Cancha Norte", arg.Name)
				assert.Equal(t, float64(15000), helper.Float64FromPg(arg.Price))
				assert.Equal(t, "futbol5", arg.Type)
				assert.Equal(t, "La Plata", arg.City.String)

				return field.ID, nil
			}).
			Times(1)

		res, err := service.Update(ctx, fieldID.String(), dto.FieldUpdateRequest{Name: "Cancha Norte", Price: 15000})

		assert.NoError(t, err)
		assert.Equal(t, fieldID.String(), res)
	})
}

func TestFieldService_Delete(t *testing.T) {
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

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	fieldID := uuid.New()
	field := fieldFixture(fieldID)

	t.Run("error: field not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Field{}, pgx.ErrNoRows).
			Times(1)

		err := service.Delete(ctx, fieldID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: field still referenced by bookings", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(field, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteField(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"}).
			Times(1)

		err := service.Delete(ctx, fieldID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: field deleted", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(field, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteField(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		err := service.Delete(ctx, fieldID.String())

		assert.NoError(t, err)
	})
}

func TestFieldService_UploadImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{Cache: config.Cache{Duration: 300}}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	fieldID := uuid.New()

	t.Run("error: no files uploaded", func(t *testing.T) {
		urls, err := service.UploadImages(ctx, fieldID.String(), nil)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, urls)
	})

	t.Run("error: too many files", func(t *testing.T) {
		files := make([]*multipart.FileHeader, MaxFilesPerUpload+1)
		for i := range files {
			files[i] = &multipart.FileHeader{Filename: "court.jpg", Size: 1024}
		}

		urls, err := service.UploadImages(ctx, fieldID.String(), files)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, urls)
	})

	t.Run("error: field not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Field{}, pgx.ErrNoRows).
			Times(1)

		files := []*multipart.FileHeader{{Filename: "court.jpg", Size: 1024}}

		urls, err := service.UploadImages(ctx, fieldID.String(), files)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Empty(t, urls)
	})

	t.Run("error: file exceeds size limit", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fieldFixture(fieldID), nil).
			Times(1)

		files := []*multipart.FileHeader{{Filename: "huge.jpg", Size: MaxFileSize + 1}}

		urls, err := service.UploadImages(ctx, fieldID.String(), files)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, urls)
	})
}

func TestFieldService_DeleteImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{Cache: config.Cache{Duration: 300}}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	fieldID := uuid.New()

	t.Run("error: field not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Field{}, pgx.ErrNoRows).
			Times(1)

		err := service.DeleteImage(ctx, fieldID.String(), "https://storage.example.com/court.jpg")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: image url not attached to field", func(t *testing.T) {
		field := fieldFixture(fieldID)
		field.Images = []string{"https://storage.example.com/other.jpg"}

		mockQuerier.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(field, nil).
			Times(1)

		err := service.DeleteImage(ctx, fieldID.String(), "https://storage.example.com/court.jpg")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
