package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlaserp/backend/internal/config"
	"github.com/atlaserp/backend/internal/core/ports"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
	"github.com/atlaserp/backend/internal/transport/http/handlers"
	httpmw "github.com/atlaserp/backend/internal/transport/http/middleware"
)

type RouterConfig struct {
	Logger     *logger.Logger
	Config     *config.Config
	Identity   ports.IdentityService
	Registry   ports.TaskRegistry
	Dispatcher ports.Dispatcher
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	cookieName := cfg.Config.Auth.CookieName

	authHandler := handlers.NewAuthHandler(handlers.AuthHandlerConfig{
		Identity:     cfg.Identity,
		Logger:       cfg.Logger,
		CookieName:   cookieName,
		CookieSecure: cfg.Config.Auth.CookieSecure,
	})
	userHandler := handlers.NewUserHandler(cfg.Identity, cfg.Logger)
	runHandler := handlers.NewRunHandler(cfg.Registry, cfg.Dispatcher, cfg.Logger)
	pageHandler := handlers.NewPageHandler(cfg.Identity, cookieName, cfg.Config.Static.Dir)

	sessionAuth := httpmw.SessionAuth(cfg.Identity, cookieName)

	// Demo UI
	app.Get("/", pageHandler.Root)
	app.Static("/static", cfg.Config.Static.Dir)

	// API routes
	api := app.Group("/api")
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/me", sessionAuth, authHandler.Me)
	api.Post("/users", sessionAuth, httpmw.AdminOnly(), userHandler.CreateUser)
	api.Put("/users/:username/modules", sessionAuth, httpmw.AdminOnly(), userHandler.GrantModules)
	api.Post("/run", sessionAuth, runHandler.RunBatch)

	// Protected pages; must come after the API group so /api/* never falls
	// through to the page gate.
	app.Get("/*", pageHandler.ServePage)
}
