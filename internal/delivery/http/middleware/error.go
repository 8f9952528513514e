package middleware

import (
	"errors"
	"log"

	"jobtrail/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Detail     string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Detail + ": " + e.Cause.Error()
	}
	return e.Detail
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, detail string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Detail: detail, Cause: cause}
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Detail(c, fiber.StatusInternalServerError, response.DetailInternalError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, detail := normalizeError(err)
		return response.Detail(c, status, detail)
	}
}

// An AppError keeps its detail even on 500s: generation failures surface the
// upstream error text to the caller. Everything unrecognized is masked.
func normalizeError(err error) (int, string) {
	if err == nil {
		return fiber.StatusInternalServerError, response.DetailInternalError
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return status, appErr.Detail
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return fiber.StatusInternalServerError, response.DetailInternalError
		}
		return status, fiberErr.Message
	}

	return fiber.StatusInternalServerError, response.DetailInternalError
}
