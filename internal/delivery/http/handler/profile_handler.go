package handler

import (
	"jobtrail/internal/delivery/http/middleware"
	"jobtrail/internal/domain/user"
	"jobtrail/internal/pkg/response"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Get)
	r.Post("/", h.Upsert)
}

// Get returns null, not 404, when no profile exists yet.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	profile, err := h.uc.Get(c.Context(), usr.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return response.JSON(c, fiber.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	var patch user.ProfilePatch
	if err := c.Bind().Body(&patch); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	profile, err := h.uc.Upsert(c.Context(), usr.ID, patch)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return response.JSON(c, fiber.StatusOK, profile)
}
