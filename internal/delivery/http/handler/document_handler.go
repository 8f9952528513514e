package handler

import (
	"errors"
	"fmt"

	"jobtrail/internal/delivery/http/middleware"
	"jobtrail/internal/domain/application"
	"jobtrail/internal/domain/document"
	"jobtrail/internal/pkg/response"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	uc usecase.DocumentUsecase
}

type documentGenerateRequest struct {
	ApplicationID  string `json:"application_id"`
	Type           string `json:"type"`
	JobDescription string `json:"job_description"`
	Tone           string `json:"tone"`
}

func NewDocumentHandler(uc usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/generate", h.Generate)
	r.Get("/:application_id", h.List)
}

func (h *DocumentHandler) Generate(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	var req documentGenerateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, detailApplicationNotFound, err)
	}

	doc, err := h.uc.Generate(c.Context(), usr, usecase.DocumentGenerateInput{
		ApplicationID:  appID,
		Type:           req.Type,
		JobDescription: req.JobDescription,
		Tone:           req.Tone,
	})
	if err != nil {
		var genErr *usecase.GenerationError
		switch {
		case errors.Is(err, application.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, detailApplicationNotFound, err)
		case errors.Is(err, document.ErrInvalidType):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid document type", err)
		case errors.As(err, &genErr):
			return middleware.NewAppError(fiber.StatusInternalServerError,
				fmt.Sprintf("Failed to generate document: %v", genErr.Cause), err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
		}
	}
	return response.JSON(c, fiber.StatusOK, doc)
}

func (h *DocumentHandler) List(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailNotAuthenticated, nil)
	}

	appID, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, detailApplicationNotFound, err)
	}

	docs, err := h.uc.List(c.Context(), usr.ID, appID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalError, err)
	}
	return response.JSON(c, fiber.StatusOK, docs)
}
