package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/escanor68/turnosya-backend/config"
	"github.com/escanor68/turnosya-backend/internal/domains/user/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/user/mock"
	"github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	log "github.com/escanor68/turnosya-backend/pkg/logger/mock"
	redis "github.com/escanor68/turnosya-backend/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	mockID := uuid.New()
	profileMock := repository.User{
		ID:           pgtype.UUID{Bytes: mockID, Valid: true},
		Email:        "string@gmail.com",
		Password:     pgtype.Text{String: "strongpassword", Valid: true},
		Level:        "user",
		GoogleID:     pgtype.Text{String: "google123", Valid: true},
		FullName:     pgtype.Text{String: "Test User", Valid: true},
		ProfileImage: pgtype.Text{String: "https://example.com/profile.jpg", Valid: true},
		IsVerified:   pgtype.Bool{Bool: true, Valid: true},
		LastLogin:    pgtype.Timestamp{Time: time.Now(), Valid: true},
		CreatedAt:    pgtype.Timestamp{Time: time.Now(), Valid: true},
		UpdatedAt:    pgtype.Timestamp{Time: time.Now(), Valid: true},
		DeletedAt:    pgtype.Timestamp{Valid: false},
	}

	t.Run("error: failure getting user by email", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "error@gmail.com").
			Return(repository.User{}, mockError).
			Times(1)

		res, err := service.Profile(ctx, "error@gmail.com")

		assert.Error(t, err)
		assert.Equal(t, dto.UserProfileResponse{}, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: user not found", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		mockLogger.EXPECT().Error(gomock.Any())

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "notfound@gmail.com").
			Return(repository.User{}, nil).
			Times(1)

		res, err := service.Profile(ctx, "notfound@gmail.com")

		assert.Error(t, err)
		assert.Equal(t, dto.UserProfileResponse{}, res)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: from database", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "string@gmail.com").
			Return(profileMock, nil).
			Times(1)

		res, err := service.Profile(ctx, "string@gmail.com")

		assert.NoError(t, err)
		assert.Equal(t, "string@gmail.com", res.Email)
		assert.Equal(t, "Test User", res.Name)
		assert.Equal(t, "https://example.com/profile.jpg", res.ProfileImage)
	})

	t.Run("success: from cache", func(t *testing.T) {
		var cachedResponse dto.UserProfileResponse
		cachedResponse = cachedResponse.ToProfileResponse(profileMock)

		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, cachedResponse).Return(nil)

		res, err := service.Profile(ctx, "string@gmail.com")

		assert.NoError(t, err)
		assert.Equal(t, "string@gmail.com", res.Email)
		assert.Equal(t, "Test User", res.Name)
		assert.Equal(t, "https://example.com/profile.jpg", res.ProfileImage)
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	req := dto.GetUsersRequest{Level: "2"}

	t.Run("error: failure counting users", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockQuerier.EXPECT().
			CountUsers(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), mockError).
			Times(1)

		_, err := service.GetAllUsers(ctx, req)

		assert.Error(t, err)
	})

	t.Run("error: failure getting users", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockQuerier.EXPECT().
			CountUsers(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(2), nil).
			Times(1)
		mockQuerier.EXPECT().
			GetUsers(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, mockError).
			Times(1)

		_, err := service.GetAllUsers(ctx, req)

		assert.Error(t, err)
	})

	t.Run("success: filtered by level", func(t *testing.T) {
		mockQuerier.EXPECT().
			CountUsers(gomock.Any(), gomock.Any(), repository.CountUsersParams{Column3: "2"}).
			Return(int64(1), nil).
			Times(1)
		mockQuerier.EXPECT().
			GetUsers(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.User{
				{
					ID:       pgtype.UUID{Bytes: uuid.New(), Valid: true},
					Email:    "owner@gmail.com",
					Level:    "2",
					FullName: pgtype.Text{String: "Owner User", Valid: true},
				},
			}, nil).
			Times(1)

		res, err := service.GetAllUsers(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalItems)
		assert.Len(t, res.Users, 1)
		assert.Equal(t, "owner@gmail.com", res.Users[0].Email)
		assert.Equal(t, "2", res.Users[0].Level)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	mockID := uuid.New()

	t.Run("error: user not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockQuerier.EXPECT().
			GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.User{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.GetUserByID(ctx, mockID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.User{
				ID:       pgtype.UUID{Bytes: mockID, Valid: true},
				Email:    "string@gmail.com",
				Level:    "1",
				FullName: pgtype.Text{String: "Test User", Valid: true},
			}, nil).
			Times(1)

		res, err := service.GetUserByID(ctx, mockID.String())

		assert.NoError(t, err)
		assert.Equal(t, mockID.String(), res.ID)
		assert.Equal(t, "string@gmail.com", res.Email)
	})
}

func TestUserService_UpdateUserRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	mockID := uuid.New()
	mockUser := repository.User{
		ID:       pgtype.UUID{Bytes: mockID, Valid: true},
		Email:    "string@gmail.com",
		Level:    "1",
		FullName: pgtype.Text{String: "Test User", Valid: true},
	}

	t.Run("error: user not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockQuerier.EXPECT().
			GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.User{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.UpdateUserRole(ctx, mockID.String(), dto.UpdateUserRoleRequest{Level: "2"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: failure updating level", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockQuerier.EXPECT().
			GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockUser, nil).
			Times(1)
		mockQuerier.EXPECT().
			UpdateUserLevel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		_, err := service.UpdateUserRole(ctx, mockID.String(), dto.UpdateUserRoleRequest{Level: "2"})

		assert.Error(t, err)
	})

	t.Run("success: promoted to owner", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockUser, nil).
			Times(1)
		mockQuerier.EXPECT().
			UpdateUserLevel(gomock.Any(), gomock.Any(), repository.UpdateUserLevelParams{
				Level: "2",
				ID:    mockUser.ID,
			}).
			Return(nil).
			Times(1)
		mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		res, err := service.UpdateUserRole(ctx, mockID.String(), dto.UpdateUserRoleRequest{Level: "2"})

		assert.NoError(t, err)
		assert.Equal(t, "2", res.Level)
	})
}
