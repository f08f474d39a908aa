package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports whether the service and its store are reachable.
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler creates a HealthHandler. A nil ping means there is no external store to check.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// RegisterRoutes registers the health route.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth answers 200 when the store answers a ping and 503 otherwise.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status, database, code := "healthy", "up", fiber.StatusOK
	if h.ping == nil {
		database = "memory"
	} else {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			status, database, code = "unhealthy", "down", fiber.StatusServiceUnavailable
		}
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"database": database,
		"time":     time.Now().Format(time.RFC3339),
	})
}
