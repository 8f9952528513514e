package routes

import (
	"jobtrail/internal/delivery/http/handler"
	"jobtrail/internal/delivery/http/middleware"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	applications *handler.ApplicationHandler
	documents    *handler.DocumentHandler
	profile      *handler.ProfileHandler
	stats        *handler.StatsHandler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	authUC usecase.AuthUsecase,
	appUC usecase.ApplicationUsecase,
	docUC usecase.DocumentUsecase,
	profileUC usecase.ProfileUsecase,
	statsUC usecase.StatsUsecase,
) *Registry {
	return &Registry{
		health:       handler.NewHealthHandler(),
		auth:         handler.NewAuthHandler(authUC),
		applications: handler.NewApplicationHandler(appUC),
		documents:    handler.NewDocumentHandler(docUC),
		profile:      handler.NewProfileHandler(profileUC),
		stats:        handler.NewStatsHandler(statsUC),
		authMw:       middleware.NewAuthMiddleware(authUC),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	r.auth.RegisterPublicRoutes(authGroup)

	protected := api.Group("", r.authMw.Middleware())
	r.auth.RegisterProtectedRoutes(protected.Group("/auth"))
	r.applications.RegisterRoutes(protected.Group("/applications"))
	r.documents.RegisterRoutes(protected.Group("/documents"))
	r.profile.RegisterRoutes(protected.Group("/profile"))
	r.stats.RegisterRoutes(protected.Group("/stats"))
}
