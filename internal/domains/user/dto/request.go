package dto

import "github.com/escanor68/turnosya-backend/pkg/gdto"

type UserRegisterRequest struct {
	Email    string `example:"string@gmail.com" json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,min=8,max=20"`
}

type UserLoginRequest struct {
	Email    string `example:"string@gmail.com" json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserRefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `example:"string@gmail.com" json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type GetUsersRequest struct {
	gdto.PaginationRequest
	Email    string `query:"email" json:"email"`
	FullName string `query:"full_name" json:"full_name"`
	Level    string `query:"level" json:"level"`
}

type UpdateUserRoleRequest struct {
	Level string `json:"level" validate:"required,oneof=1 2 9"`
}
