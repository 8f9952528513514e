package middleware

import (
	"errors"
	"strings"

	"jobtrail/internal/domain/user"
	"jobtrail/internal/pkg/response"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const CtxUserKey = "current_user"

type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Middleware resolves the bearer session token and stashes the user in the
// request context. The three 401 details are distinct on purpose: missing
// credentials, unknown token, expired token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
		}

		usr, err := m.auth.Authenticate(c.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrSessionExpired):
				return NewAppError(fiber.StatusUnauthorized, response.DetailSessionExpired, err)
			case errors.Is(err, usecase.ErrInvalidSession), errors.Is(err, usecase.ErrNotAuthenticated):
				return NewAppError(fiber.StatusUnauthorized, response.DetailInvalidSession, err)
			default:
				return NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
			}
		}

		c.Locals(CtxUserKey, usr)
		return c.Next()
	}
}

// UserFromCtx returns the authenticated user placed by the middleware.
func UserFromCtx(c fiber.Ctx) (user.User, bool) {
	usr, ok := c.Locals(CtxUserKey).(user.User)
	return usr, ok
}

func BearerFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
