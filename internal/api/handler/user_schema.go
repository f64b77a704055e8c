package handler

import "github.com/storefront/commerce-api/internal/core/domain"

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type rotatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
	Count int            `json:"count"`
}

type rotatePasswordResponse struct {
	Message string `json:"msg"`
	Token   string `json:"token"`
}
