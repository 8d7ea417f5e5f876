package service

import (
	"context"
	"errors"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/logger"
	"github.com/escanor68/turnosya-backend/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/escanor68/turnosya-backend/internal/domains/user/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	"github.com/escanor68/turnosya-backend/pkg/jwt"
	"github.com/escanor68/turnosya-backend/pkg/mail"
	"github.com/escanor68/turnosya-backend/pkg/redis"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenKeyPrefix = "password-reset"
	resetTokenTTL       = 900 // seconds
)

type AuthService interface {
	Register(ctx context.Context, req dto.UserRegisterRequest) (res *dto.UserRegisterResponse, err error)
	Login(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error)
	Refresh(ctx context.Context, req dto.UserRefreshTokenRequest) (*dto.UserLoginResponse, error)
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

type authService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	mail   mail.Service
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, c redis.IRedisCache, m mail.Service, l logger.Interface) AuthService {
	return &authService{
		db:     db,
		repo:   r,
		cache:  c,
		mail:   m,
		logger: l,
	}
}

func (s *authService) Register(ctx context.Context, req dto.UserRegisterRequest) (res *dto.UserRegisterResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("register - service - failed to begin transaction: %w", err)

		return nil, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("register - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	exist, err := s.repo.GetUserByEmail(ctx, tx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("register - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	if exist.Email != "" {
		s.logger.Error("register - service - user with email already exists")

		return nil, failure.BadRequestFromString("user already exists")
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register - service - failed to generate password: %w", err)

		return nil, failure.InternalError(err)
	}

	newUser, err := s.repo.CreateUser(ctx, tx, repository.CreateUserParams{
		Email: req.Email,
		Password: pgtype.Text{
			String: string(password),
			Valid:  true,
		},
		Level: "1",
		FullName: pgtype.Text{
			String: req.Name,
			Valid:  true,
		},
		Phone: pgtype.Text{
			String: req.Phone,
			Valid:  req.Phone != "",
		},
		IsVerified: pgtype.Bool{
			Bool:  false,
			Valid: true,
		},
	})
	if err != nil {
		s.logger.Error("register - service - failed to create user: %w", err)

		return nil, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("register - service - failed to commit transaction: %w", err)

		return nil, failure.InternalError(err)
	}

	res = new(dto.UserRegisterResponse).ToRegisterResponse(newUser)

	return res, nil
}

func (s *authService) Login(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("login - service - failed to begin transaction: %w", err)

		return nil, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("login - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	user, err := s.repo.GetUserByEmail(ctx, tx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("login - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	if user.Email == "" {
		s.logger.Error("login - service - user not found")

		return nil, failure.NotFound("user not found")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(req.Password)); err != nil {
		s.logger.Error("login - service - unauthorized")

		return nil, failure.Unauthorized("unauthorized")
	}

	_, err = s.repo.UpdateLastLogin(ctx, tx, user.ID)
	if err != nil {
		s.logger.Error("login - service - failed to update last login: %w", err)

		return nil, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("login - service - failed to commit transaction: %w", err)

		return nil, failure.InternalError(err)
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID.String(), user.Email, user.Level)
	if err != nil {
		s.logger.Error("login - service - failed to generate access token: %w", err)

		return nil, failure.InternalError(err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.ID.String(), user.Email, user.Level)
	if err != nil {
		s.logger.Error("login - service - failed to generate refresh token: %w", err)

		return nil, failure.InternalError(err)
	}

	return &dto.UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ForgotPassword issues a reset token for the account and mails it. A request
// for an unknown email returns nil so the endpoint does not reveal whether an
// account exists.
func (s *authService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	user, err := s.repo.GetUserByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Info("forgot password - service - unknown email, skipping")

			return nil
		}

		s.logger.Error("forgot password - service - failed to get user by email: %w", err)

		return failure.InternalError(err)
	}

	if user.Email == "" {
		s.logger.Info("forgot password - service - unknown email, skipping")

		return nil
	}

	token := uuid.NewString()
	cacheKey := helper.BuildCacheKey(resetTokenKeyPrefix, token)

	if err = s.cache.Save(ctx, cacheKey, user.ID.String(), resetTokenTTL); err != nil {
		s.logger.Error("forgot password - service - failed to store reset token: %w", err)

		return failure.InternalError(err)
	}

	if err = s.mail.SendPasswordResetEmail(user.Email, user.FullName.String, token); err != nil {
		s.logger.Error("forgot password - service - failed to send reset email: %w", err)

		return failure.InternalError(err)
	}

	return nil
}

// ResetPassword consumes a reset token issued by ForgotPassword and replaces
// the account password. The token is single-use.
func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	cacheKey := helper.BuildCacheKey(resetTokenKeyPrefix, req.Token)

	var userID string
	if err := s.cache.Get(ctx, cacheKey, &userID); err != nil || userID == "" {
		s.logger.Error("reset password - service - invalid or expired token")

		return failure.Unauthorized("invalid or expired token")
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("reset password - service - failed to generate password: %w", err)

		return failure.InternalError(err)
	}

	err = s.repo.UpdateUserPassword(ctx, s.db, repository.UpdateUserPasswordParams{
		Password: pgtype.Text{
			String: string(password),
			Valid:  true,
		},
		ID: helper.PgUUID(userID),
	})
	if err != nil {
		s.logger.Error("reset password - service - failed to update password: %w", err)

		return failure.InternalError(err)
	}

	if err = s.cache.Delete(ctx, cacheKey); err != nil {
		s.logger.Error("reset password - service - failed to invalidate token: %w", err)
	}

	return nil
}

func (s *authService) Refresh(ctx context.Context, req dto.UserRefreshTokenRequest) (*dto.UserLoginResponse, error) {
	claims, err := jwt.ValidateToken(req.RefreshToken)
	if err != nil {
		s.logger.Error("refresh - service - invalid refresh token: %w", err)

		return nil, failure.Unauthorized("invalid refresh token")
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		s.logger.Error("refresh - service - wrong token type")

		return nil, failure.Unauthorized("invalid refresh token")
	}

	user, err := s.repo.GetUserByEmail(ctx, s.db, claims.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("refresh - service - user not found")

			return nil, failure.Unauthorized("invalid refresh token")
		}

		s.logger.Error("refresh - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID.String(), user.Email, user.Level)
	if err != nil {
		s.logger.Error("refresh - service - failed to generate access token: %w", err)

		return nil, failure.InternalError(err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.ID.String(), user.Email, user.Level)
	if err != nil {
		s.logger.Error("refresh - service - failed to generate refresh token: %w", err)

		return nil, failure.InternalError(err)
	}

	return &dto.UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
