package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront/commerce-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	tokenTTL    time.Duration
}

func NewUserHandler(userService ports.UserService, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{userService: userService, tokenTTL: tokenTTL}
}

// List returns all customer accounts.
//
// @Summary      List customer accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users, Count: len(users)})
}

// Get returns a single account, admin or owner only.
//
// @Summary      Get an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Me echoes the current principal.
//
// @Summary      Show the current principal
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]domain.Principal
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": principal})
}

// UpdateProfile changes the caller's name and email and reissues the session
// token so the cached identity view matches the committed state.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "New profile fields"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /users/me [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.userService.UpdateProfile(c.Request().Context(), principal, req.Name, req.Email)
	if err != nil {
		return err
	}

	bindSessionCookie(c, token, h.tokenTTL)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// RotatePassword verifies the old credential and commits a new one. All
// previously issued tokens are revoked; the response carries a fresh one.
//
// @Summary      Rotate password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rotatePasswordRequest  true  "Old and new password"
// @Success      200   {object}  rotatePasswordResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/me/password [patch]
func (h *UserHandler) RotatePassword(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req rotatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.userService.RotatePassword(c.Request().Context(), principal, req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}

	bindSessionCookie(c, token, h.tokenTTL)
	return c.JSON(http.StatusOK, rotatePasswordResponse{Message: "password updated", Token: token})
}
