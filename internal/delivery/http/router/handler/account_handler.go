// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"warden/internal/delivery/http/response"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChangePasswordInput carries the new credential for a password change request.
type ChangePasswordInput struct {
	Password string `json:"password" validate:"required"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC  usecase.AccountUsecase
	passwordUC usecase.PasswordUsecase
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(
	accountUC usecase.AccountUsecase,
	passwordUC usecase.PasswordUsecase,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountUC:  accountUC,
		passwordUC: passwordUC,
		hasher:     hasher,
		logger:     logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing or malformed registration fields")
	}

	output, err := h.accountUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Account registered successfully")
}

// Login handles the account login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing or malformed login fields")
	}

	output, err := h.accountUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":      output.AccessToken,
		"refreshToken":     output.RefreshToken,
		"refreshExpiresAt": output.RefreshExpiresAt,
		"user":             output.User,
	}, "Login successful")
}

// GetAccount handles the request to fetch a single account by username.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Username is required")
	}

	user, err := h.accountUC.GetAccount(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account retrieved successfully")
}

// ChangePassword handles the password change request. The new password is
// hashed here so the plaintext never crosses into the usecase layer; the
// usecase reports its single outcome through a sink, which is bridged back
// to the synchronous HTTP response.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Username is required")
	}

	var input *ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Password is required")
	}

	if err := h.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return errors.WithStack(err)
	}

	hash, err := h.hasher.Hash(input.Password)
	if err != nil {
		return errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	change := &entity.PasswordChange{
		Username:     username,
		PasswordHash: hash,
	}

	done := make(chan error, 1)
	h.passwordUC.ChangePassword(c.Request().Context(), change, func(err error) {
		done <- err
	})

	if err := <-done; err != nil {
		// The usecase forwards store failures untouched; translate the
		// persistence sentinel into an HTTP-mapped error here.
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("password change target not found")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"username": username}, "Password changed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
