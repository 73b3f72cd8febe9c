package api

import (
	"errors"
	"log/slog"

	"insight-agent/internal/domain/entity"
	"insight-agent/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AnalysisHandler struct {
	orchestrator *usecase.Orchestrator
	version      string
}

func NewAnalysisHandler(orch *usecase.Orchestrator, version string) *AnalysisHandler {
	return &AnalysisHandler{orchestrator: orch, version: version}
}

func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req entity.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": entity.ErrInvalidRequest.Error(),
			"details": []entity.FieldError{
				{Field: "body", Rule: "json"},
			},
		})
	}

	// The Delivery layer maps the business error to HTTP status codes
	resp, err := h.orchestrator.Execute(c.UserContext(), bearerToken(c), req)
	if err != nil {
		var verr *entity.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   entity.ErrInvalidRequest.Error(),
				"details": verr.Fields,
			})
		case errors.Is(err, entity.ErrInvalidRequest):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, entity.ErrRateLimitExceeded):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		}
		slog.Error("analyze request failed", "error", err, "request_id", requestID(c))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AnalysisHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"service": ServiceName,
	})
}

func (h *AnalysisHandler) HandleRoot(c *fiber.Ctx) error {
	base := c.BaseURL()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Insight-Agent API is running!",
		"status":  "healthy",
		"version": h.version,
		"try_these": fiber.Map{
			"health_check":     base + "/health",
			"analyze_endpoint": "POST " + base + "/analyze",
		},
	})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
