package handler

import (
	"fmt"

	"jobtrail/internal/delivery/http/middleware"
	"jobtrail/internal/pkg/response"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/google", h.BeginLogin)
	r.Get("/callback", h.Callback)
	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me", h.Me)
}

func (h *AuthHandler) BeginLogin(c fiber.Ctx) error {
	loginURL, err := h.uc.LoginURL()
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return c.Redirect().To(loginURL)
}

// Callback completes the code exchange. Any failure along the way maps to a
// 400 with the underlying reason, matching the provider-error contract.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	state := c.Query("state")
	code := c.Query("code")

	usr, token, err := h.uc.CompleteLogin(c.Context(), state, code)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, fmt.Sprintf("Authentication failed: %v", err), err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"user":          usr,
		"session_token": token,
		"message":       "Authentication successful",
	})
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}
	return response.JSON(c, fiber.StatusOK, usr)
}

// Logout is idempotent and does not require a valid session; an absent or
// unknown token still yields a 200.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if token, ok := middleware.BearerFromHeader(c.Get("Authorization")); ok {
		if err := h.uc.Logout(c.Context(), token); err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
		}
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"message": "Logged out successfully"})
}
