package handler

import (
	"horror-oracle/internal/domain"
	"horror-oracle/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

// HealthHandler reports component health.
type HealthHandler struct {
	cache domain.Cache
	db    *sqlx.DB
}

// NewHealthHandler creates a health handler. db may be nil when the engine
// runs on the in-memory profile store.
func NewHealthHandler(cache domain.Cache, db *sqlx.DB) *HealthHandler {
	return &HealthHandler{cache: cache, db: db}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	checks := map[string]string{}
	status := fiber.StatusOK

	if err := h.cache.Ping(c.Context()); err != nil {
		checks["cache"] = "unreachable"
		status = fiber.StatusServiceUnavailable
	} else {
		checks["cache"] = "ok"
	}

	if h.db != nil {
		if err := h.db.PingContext(c.Context()); err != nil {
			checks["storage"] = "unreachable"
			status = fiber.StatusServiceUnavailable
		} else {
			checks["storage"] = "ok"
		}
	} else {
		checks["storage"] = "in-memory"
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}
	return c.Status(status).JSON(dto.HealthResponse{
		Status: overall,
		Checks: checks,
	})
}
