package server

import (
	"context"
	"strings"

	"company-profile-be/internal/bootstrap"
	"company-profile-be/internal/config"
	"company-profile-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	verbose := cfg.App.VerboseErrors && !cfg.IsProduction()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxSizeBytes)*10 + 1024*1024,
		// Errors raised before the middleware chain (routing, body limit).
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return serverutils.WriteError(ctx, err, container.Logger, verbose)
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CorsOrigins(), ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))
	app.Use(otelfiber.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger, verbose))

	if cfg.Upload.Driver == "local" {
		app.Static(cfg.Upload.PublicPrefix, cfg.Upload.Dir)
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"environment": cfg.App.Environment}))
	})

	RegisterRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Server is running", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// RegisterRoutes mounts the public API under /api and the back office under
// /api/admin.
func RegisterRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")
	auth := serverutils.NewJwtMiddleware(c.Config.Auth.JwtSecret)

	c.AuthController.RegisterRoutes(api, auth)
	c.NotificationHandler.RegisterRoutes(api)

	for _, rc := range c.ResourceControllers {
		rc.RegisterPublicRoutes(api)
	}

	admin := api.Group("/admin", auth)
	c.UserController.RegisterRoutes(admin)
	for _, rc := range c.ResourceControllers {
		rc.RegisterAdminRoutes(admin)
	}
}
