package app

import (
	"fmt"
	"strings"

	"jobtrail/internal/config"
	"jobtrail/internal/delivery/http/middleware"
	"jobtrail/internal/delivery/http/routes"
	"jobtrail/internal/infrastructure/llm"
	"jobtrail/internal/infrastructure/oauth"
	"jobtrail/internal/repository"
	"jobtrail/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	userRepo := repository.NewPostgresUserRepository(container.DB)
	profileRepo := repository.NewPostgresProfileRepository(container.DB)
	appRepo := repository.NewPostgresApplicationRepository(container.DB)
	docRepo := repository.NewPostgresDocumentRepository(container.DB)

	provider := oauth.NewGoogleProvider(oauth.GoogleConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})
	states := oauth.NewStateSigner(cfg.Google.StateSecret, 0)
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, container.Logger)

	authUC := usecase.NewAuthService(userRepo, container.Sessions, provider, states, cfg.Session.TTL)
	appUC := usecase.NewApplicationService(appRepo)
	docUC := usecase.NewDocumentService(appRepo, docRepo, profileRepo, llmClient)
	profileUC := usecase.NewProfileService(profileRepo)
	statsUC := usecase.NewStatsService(appRepo)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, container)

	registry := routes.NewRegistry(authUC, appUC, docUC, profileUC, statsUC)
	registry.Register(f)

	return &App{Fiber: f}, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, container *Container) {
	if app == nil {
		return
	}

	corsCfg := cors.Config{AllowOrigins: cfg.App.CORSOrigins}
	if len(cfg.App.CORSOrigins) != 1 || cfg.App.CORSOrigins[0] != "*" {
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))

	accessLog := middleware.NewAccessLogMiddleware(container.Logger)
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
