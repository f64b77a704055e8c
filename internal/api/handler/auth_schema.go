package handler

import "github.com/storefront/commerce-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"msg"`
}

// errorResponse documents the error envelope rendered by the central error
// handler; it is referenced by the swagger annotations only.
type errorResponse struct {
	Error string `json:"error"`
}
