package handler

import (
	"jobtrail/internal/delivery/http/middleware"
	"jobtrail/internal/pkg/response"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.StatsUsecase
}

func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Get)
}

func (h *StatsHandler) Get(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	stats, err := h.uc.GetStats(c.Context(), usr.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return response.JSON(c, fiber.StatusOK, stats)
}
