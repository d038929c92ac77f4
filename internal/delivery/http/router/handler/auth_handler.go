// Package handler contains the HTTP handlers for the stub API.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signupRequest mirrors the backend's signup body. Role is accepted for
// seeding admin accounts in development; it defaults to the shopper role.
type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for the signup and login endpoints.
type AuthHandler struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	issuer   service.TokenIssuer
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	issuer service.TokenIssuer,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input signupRequest
	if err := c.Bind(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid signup input")
	}

	hash, err := h.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleFromString(input.Role),
	}
	if err := h.accounts.Create(c.Request().Context(), account); err != nil {
		if errors.Is(err, repository.ErrAccountAlreadyExists) {
			return response.Detail(c, http.StatusBadRequest, "User exists")
		}

		return errors.Wrap(err, "failed to create account")
	}

	h.logger.Info("Account registered", "email", input.Email, "role", account.Role.String())

	return response.Msg(c, http.StatusOK, "User created")
}

// Login handles the credential exchange request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.Detail(c, http.StatusBadRequest, "Invalid login input")
	}

	account, err := h.accounts.FindByEmail(c.Request().Context(), input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return response.Detail(c, http.StatusUnauthorized, "Invalid login")
		}

		return errors.Wrap(err, "failed to look up account")
	}

	if !h.hasher.Check(input.Password, account.PasswordHash) {
		return response.Detail(c, http.StatusUnauthorized, "Invalid login")
	}

	token, err := h.issuer.Issue(account.Email, account.Role)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	return response.Token(c, http.StatusOK, token)
}
