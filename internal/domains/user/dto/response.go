package dto

import (
	"github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/helper"
)

type UserRegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type UserLoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type OauthGetURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type UserProfileResponse struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profile_image"`
}

func (u *UserRegisterResponse) ToRegisterResponse(user repository.User) *UserRegisterResponse {
	return &UserRegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}

func (u *UserLoginResponse) ToLoginResponse(accessToken, refreshToken string) *UserLoginResponse {
	return &UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

func (u UserProfileResponse) ToProfileResponse(user repository.User) UserProfileResponse {
	var name, phone, profileImage string
	if user.FullName.Valid {
		name = user.FullName.String
	}

	if user.Phone.Valid {
		phone = user.Phone.String
	}

	if user.ProfileImage.Valid {
		profileImage = user.ProfileImage.String
	}

	return UserProfileResponse{
		Email:        user.Email,
		Name:         name,
		Phone:        phone,
		ProfileImage: profileImage,
	}
}

type UserAdminResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Level      string `json:"level"`
	IsVerified bool   `json:"is_verified"`
	LastLogin  string `json:"last_login,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (u UserAdminResponse) FromModel(user repository.User) UserAdminResponse {
	var lastLogin string
	if user.LastLogin.Valid {
		lastLogin = user.LastLogin.Time.Format(constant.DateFormat)
	}

	return UserAdminResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.FullName.String,
		Phone:      user.Phone.String,
		Level:      user.Level,
		IsVerified: helper.BoolFromPg(user.IsVerified),
		LastLogin:  lastLogin,
		CreatedAt:  user.CreatedAt.Time.Format(constant.DateFormat),
		UpdatedAt:  user.UpdatedAt.Time.Format(constant.DateFormat),
	}
}

type PaginatedUserResponse struct {
	Users      []UserAdminResponse `json:"users"`
	TotalItems int                 `json:"total_items"`
	TotalPages int                 `json:"total_pages"`
}

func (p *PaginatedUserResponse) FromModel(users []repository.User, totalItems, limit int) {
	p.TotalItems = totalItems
	p.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(users) == 0 {
		p.Users = []UserAdminResponse{}

		return
	}

	p.Users = make([]UserAdminResponse, len(users))

	for i, user := range users {
		p.Users[i] = UserAdminResponse{}.FromModel(user)
	}
}
