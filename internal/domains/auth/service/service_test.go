package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/escanor68/turnosya-backend/internal/domains/user/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/user/mock"
	"github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	"github.com/escanor68/turnosya-backend/pkg/jwt"
	log "github.com/escanor68/turnosya-backend/pkg/logger/mock"
	mailmock "github.com/escanor68/turnosya-backend/pkg/mail/mock"
	cachemock "github.com/escanor68/turnosya-backend/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	jwt.Initialize("test-app", "test-secret-key", time.Hour, time.Hour*24)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	registerReq := dto.UserRegisterRequest{
		Email:    "test@gmail.com",
		Password: "password123",
		Name:     "Test User",
		Phone:    "1144556677",
	}

	mockID := uuid.New()
	mockUser := repository.User{
		ID:         pgtype.UUID{Bytes: mockID, Valid: true},
		Email:      "test@gmail.com",
		Password:   pgtype.Text{String: "hashedpassword", Valid: true},
		Level:      "1",
		FullName:   pgtype.Text{String: "Test User", Valid: true},
		Phone:      pgtype.Text{String: "1144556677", Valid: true},
		IsVerified: pgtype.Bool{Bool: false, Valid: true},
		CreatedAt:  pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	t.Run("error: transaction begin failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())
		mockPgx.ExpectBegin().WillReturnError(mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: failure getting user by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: user already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser, nil)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: failure creating user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.User{}, mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: transaction commit failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockUser, nil)

		mockPgx.ExpectCommit().WillReturnError(mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: user registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockPgx.ExpectBegin()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateUserParams) (repository.User, error) {
				assert.Equal(t, "test@gmail.com", arg.Email)
				assert.Equal(t, "1", arg.Level)
				assert.Equal(t, "1144556677", arg.Phone.String)

				return mockUser, nil
			})

		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback() // For the deferred rollback function

		res, err := service.Register(ctx, registerReq)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, mockID.String(), res.ID)
		assert.Equal(t, "test@gmail.com", res.Email)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockLogger := log.NewMockInterface(ctrl)
	mockCache := cachemock.NewMockIRedisCache(ctrl)
	mockMail := mailmock.NewMockService(ctrl)
	mockError := errors.New("error")

	service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

	loginReq := dto.UserLoginRequest{
		Email:    "test@gmail.com",
		Password: "password123",
	}

	mockID := uuid.New()
	mockUser := func(password string) repository.User {
		return repository.User{
			ID:         pgtype.UUID{Bytes: mockID, Valid: true},
			Email:      "test@gmail.com",
			Password:   pgtype.Text{String: password, Valid: true},
			Level:      "1",
			FullName:   pgtype.Text{String: "Test User", Valid: true},
			IsVerified: pgtype.Bool{Bool: true, Valid: true},
			CreatedAt:  pgtype.Timestamp{Time: time.Now(), Valid: true},
			UpdatedAt:  pgtype.Timestamp{Time: time.Now(), Valid: true},
			DeletedAt:  pgtype.Timestamp{Valid: false},
		}
	}

	t.Run("error: transaction begin failure", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin().WillReturnError(mockError)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: failure getting user by email", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, mockError)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: user not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: invalid password", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser("hashedpassword"), nil)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: transaction commit failure", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		mockUserWithValidPassword := mockUser(string(hashedPassword))

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUserWithValidPassword, nil)

		mockQuerier.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), mockUserWithValidPassword.ID).
			Return(pgtype.UUID{Bytes: mockID, Valid: true}, nil)

		mockPgx.ExpectCommit().WillReturnError(mockError)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: login", func(t *testing.T) {
		mockPgx, _ = pgxmock.NewPool()
		service = New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		mockUserWithValidPassword := mockUser(string(hashedPassword))

		mockPgx.ExpectBegin()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUserWithValidPassword, nil)

		mockQuerier.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), mockUserWithValidPassword.ID).
			Return(pgtype.UUID{Bytes: mockID, Valid: true}, nil)

		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		res, err := service.Login(ctx, loginReq)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockLogger := log.NewMockInterface(ctrl)
	mockCache := cachemock.NewMockIRedisCache(ctrl)
	mockMail := mailmock.NewMockService(ctrl)

	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

	mockID := uuid.New()
	storedUser := repository.User{
		ID:       pgtype.UUID{Bytes: mockID, Valid: true},
		Email:    "test@gmail.com",
		Level:    "1",
		FullName: pgtype.Text{String: "Test User", Valid: true},
	}

	refreshToken, err := jwt.GenerateRefreshToken(mockID.String(), "test@gmail.com", "1")
	assert.NoError(t, err)

	t.Run("error: malformed token", func(t *testing.T) {
		res, err := service.Refresh(ctx, dto.UserRefreshTokenRequest{RefreshToken: "not-a-token"})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: access token is not accepted", func(t *testing.T) {
		accessToken, err := jwt.GenerateAccessToken(mockID.String(), "test@gmail.com", "1")
		assert.NoError(t, err)

		res, err := service.Refresh(ctx, dto.UserRefreshTokenRequest{RefreshToken: accessToken})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: user no longer exists", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, pgx.ErrNoRows).
			Times(1)

		res, err := service.Refresh(ctx, dto.UserRefreshTokenRequest{RefreshToken: refreshToken})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("success: new token pair issued", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(storedUser, nil).
			Times(1)

		res, err := service.Refresh(ctx, dto.UserRefreshTokenRequest{RefreshToken: refreshToken})

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	req := dto.ForgotPasswordRequest{Email: "test@gmail.com"}

	t.Run("error: failure getting user by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, mockError)

		err := service.ForgotPassword(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: unknown email is accepted silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Info(gomock.Any())

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, pgx.ErrNoRows)

		err := service.ForgotPassword(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("error: email delivery failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockID := uuid.New()
		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{
				ID:       pgtype.UUID{Bytes: mockID, Valid: true},
				Email:    "test@gmail.com",
				FullName: pgtype.Text{String: "Test User", Valid: true},
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockMail.EXPECT().
			SendPasswordResetEmail("test@gmail.com", "Test User", gomock.Any()).
			Return(mockError)

		err := service.ForgotPassword(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: token stored and reset email sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockID := uuid.New()
		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{
				ID:       pgtype.UUID{Bytes: mockID, Valid: true},
				Email:    "test@gmail.com",
				FullName: pgtype.Text{String: "Test User", Valid: true},
			}, nil)

		var storedValue any
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				storedValue = value
				return nil
			})

		mockMail.EXPECT().
			SendPasswordResetEmail("test@gmail.com", "Test User", gomock.Any()).
			DoAndReturn(func(_, _, token string) error {
				assert.NotEmpty(t, token)
				return nil
			})

		err := service.ForgotPassword(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, mockID.String(), storedValue)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	req := dto.ResetPasswordRequest{
		Token:    uuid.NewString(),
		Password: "newpassword123",
	}

	t.Run("error: unknown or expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any())

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		err := service.ResetPassword(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: password update failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockID := uuid.New()
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, mockID.String()).
			Return(nil)

		mockQuerier.EXPECT().
			UpdateUserPassword(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		err := service.ResetPassword(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: password replaced and token invalidated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockCache := cachemock.NewMockIRedisCache(ctrl)
		mockMail := mailmock.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, mockMail, mockLogger)

		mockID := uuid.New()
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, mockID.String()).
			Return(nil)

		mockQuerier.EXPECT().
			UpdateUserPassword(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateUserPasswordParams) error {
				assert.Equal(t, helper.PgUUID(mockID.String()), arg.ID)
				assert.True(t, arg.Password.Valid)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(arg.Password.String), []byte("newpassword123")))
				return nil
			})

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := service.ResetPassword(ctx, req)

		assert.NoError(t, err)
	})
}
