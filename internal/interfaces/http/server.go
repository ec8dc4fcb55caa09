package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/panel-admin/pkg/logger"
)

// AppConfig opciones del servidor HTTP.
type AppConfig struct {
	Name          string
	SwaggerFile   string // vacío o inexistente = sin /docs
	CheckInterval time.Duration
}

// NewApp arma la aplicación Fiber: vistas, límite de errores, middlewares, /health, /docs y
// las páginas del panel.
func NewApp(cfg AppConfig, log *logger.Logger, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		Views:        NewViews(ViewConfig{AppName: cfg.Name, CheckInterval: cfg.CheckInterval}),
		ViewsLayout:  ViewsLayout,
		ErrorHandler: ErrorHandler(deps.Cookies),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	}))
	app.Use(RequestContext(log))
	app.Use(compress.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	// Swagger UI: http://localhost:<port>/docs. El middleware falla si el archivo no existe.
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    cfg.Name,
			}))
		} else {
			log.Warn().Str("file", cfg.SwaggerFile).Msg("swagger no disponible")
		}
	}

	Router(app, deps)
	return app
}
