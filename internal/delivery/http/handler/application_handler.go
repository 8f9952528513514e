package handler

import (
	"errors"

	"jobtrail/internal/delivery/http/middleware"
	"jobtrail/internal/domain/application"
	"jobtrail/internal/pkg/response"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const detailApplicationNotFound = "Application not found"

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	apps, err := h.uc.List(c.Context(), usr.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return response.JSON(c, fiber.StatusOK, apps)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	var req usecase.ApplicationCreateInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	app, err := h.uc.Create(c.Context(), usr.ID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid application payload", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return response.JSON(c, fiber.StatusOK, app)
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, detailApplicationNotFound, err)
	}

	var patch application.Patch
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	app, err := h.uc.Update(c.Context(), usr.ID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, detailApplicationNotFound, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid application payload", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
		}
	}
	return response.JSON(c, fiber.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, detailApplicationNotFound, err)
	}

	if err := h.uc.Delete(c.Context(), usr.ID, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, detailApplicationNotFound, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"message": "Application deleted successfully"})
}
