package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	ServiceName  = "insight-agent"
	requestIDKey = "requestid"
)

type RouterConfig struct {
	AllowOrigins string
	AccessLog    bool
}

func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "Insight-Agent API",
		ErrorHandler: errorHandler,
	})
}

func SetupRouter(app *fiber.App, handler *AnalysisHandler, cfg RouterConfig) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", handler.HandleRoot)
	app.Get("/health", handler.HandleHealth)

	// Endpoints
	app.Post("/analyze", BearerGate(), handler.HandleAnalyze)
}

// errorHandler keeps fiber's status for routing errors and hides everything else.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		msg = e.Message
	} else {
		slog.Error("unhandled error", "error", err, "path", c.Path(), "request_id", requestID(c))
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
